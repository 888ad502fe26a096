package domain

import (
	"iter"
	"strings"

	"go.trai.ch/zerr"
)

// Rule ties a marker to the build program that handles it.
type Rule struct {
	Name    string
	Marker  Marker
	Program string
	Args    []string
	// Terminal rules end the process with the child's exit code.
	Terminal bool
	// Stub, when set and its marker holds, replaces execution with a message.
	Stub *Stub
}

// Stub short-circuits a matched rule: the message is printed and the process
// ends with ExitCode, nothing is executed.
type Stub struct {
	When     Marker
	Message  string
	ExitCode int
}

// Invocation builds the invocation of the rule with userArgs appended after the fixed args.
func (r Rule) Invocation(userArgs []string) Invocation {
	args := make([]string, 0, len(r.Args)+len(userArgs))
	args = append(args, r.Args...)
	args = append(args, userArgs...)
	return Invocation{Program: r.Program, Args: args}
}

// String renders the rule as a single table row.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteString(r.Name)
	b.WriteString(": ")
	b.WriteString(r.Marker.String())
	b.WriteString(" -> ")
	b.WriteString(strings.Join(append([]string{r.Program}, r.Args...), " "))
	if !r.Terminal {
		b.WriteString(" (non-terminal)")
	}
	if r.Stub != nil {
		b.WriteString(" [stub when ")
		b.WriteString(r.Stub.When.String())
		b.WriteString("]")
	}
	return b.String()
}

// Advisory is an informational message printed when its marker holds.
// Advisories never affect dispatch.
type Advisory struct {
	Marker  Marker
	Message string
}

// RuleTable is the ordered dispatch table. Priority is positional.
type RuleTable struct {
	advisories []Advisory
	rules      []Rule
	names      map[string]struct{}
}

// NewRuleTable creates a new empty RuleTable.
func NewRuleTable() *RuleTable {
	return &RuleTable{
		names: make(map[string]struct{}),
	}
}

// AddRule appends a rule with the lowest priority so far.
// It returns an error if a rule with the same name already exists.
func (t *RuleTable) AddRule(r *Rule) error {
	if _, exists := t.names[r.Name]; exists {
		return zerr.With(ErrRuleAlreadyExists, "rule_name", r.Name)
	}
	t.names[r.Name] = struct{}{}

	rule := *r
	rule.Args = append([]string(nil), r.Args...)
	if r.Stub != nil {
		stub := *r.Stub
		rule.Stub = &stub
	}
	t.rules = append(t.rules, rule)
	return nil
}

// AddAdvisory appends an advisory.
func (t *RuleTable) AddAdvisory(a Advisory) {
	t.advisories = append(t.advisories, a)
}

// Len returns the number of rules.
func (t *RuleTable) Len() int {
	return len(t.rules)
}

// Rules returns an iterator that yields rules in priority order.
func (t *RuleTable) Rules() iter.Seq[Rule] {
	return func(yield func(Rule) bool) {
		for _, r := range t.rules {
			if !yield(r) {
				return
			}
		}
	}
}

// Advisories returns an iterator over the advisories in declaration order.
func (t *RuleTable) Advisories() iter.Seq[Advisory] {
	return func(yield func(Advisory) bool) {
		for _, a := range t.advisories {
			if !yield(a) {
				return
			}
		}
	}
}
