// Package dispatcher evaluates the rule table and delegates to the matching build program.
package dispatcher

import (
	"context"

	"go.trai.ch/anybuild/internal/core/domain"
	"go.trai.ch/anybuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// OutcomeKind describes how a dispatch ended.
type OutcomeKind string

const (
	// OutcomeExecuted means a terminal rule ran its program.
	OutcomeExecuted OutcomeKind = "Executed"
	// OutcomeStubbed means a rule matched but its stub replaced execution.
	OutcomeStubbed OutcomeKind = "Stubbed"
	// OutcomeFallback means no terminal rule matched.
	OutcomeFallback OutcomeKind = "Fallback"
)

// Outcome is the result of a dispatch.
type Outcome struct {
	Kind OutcomeKind
	// Rule is the name of the rule that ended the dispatch, empty on fallback.
	Rule string
	// ExitCode is the code the process should exit with.
	ExitCode int
}

// Dispatcher walks a rule table against a Probe and runs the first match.
type Dispatcher struct {
	probe    ports.Probe
	executor ports.Executor
	logger   ports.Logger
}

// New creates a new Dispatcher. Programs run in the current working directory.
func New(probe ports.Probe, executor ports.Executor, log ports.Logger) *Dispatcher {
	return &Dispatcher{
		probe:    probe,
		executor: executor,
		logger:   log,
	}
}

// Run emits the advisories that apply, then evaluates rules in priority order.
//
// The first matching terminal rule ends the dispatch with the child's exit
// code. A matching non-terminal rule runs and evaluation continues with the
// next rule. When nothing ends the dispatch the fallback message is printed
// and ExitSuccess is returned.
func (d *Dispatcher) Run(ctx context.Context, table *domain.RuleTable, userArgs []string) (Outcome, error) {
	for advisory := range table.Advisories() {
		if d.holds(advisory.Marker) {
			d.logger.Info(advisory.Message)
		}
	}

	for rule := range table.Rules() {
		if !d.holds(rule.Marker) {
			continue
		}

		if rule.Stub != nil && d.holds(rule.Stub.When) {
			d.logger.Info(rule.Stub.Message)
			return Outcome{Kind: OutcomeStubbed, Rule: rule.Name, ExitCode: rule.Stub.ExitCode}, nil
		}

		code, err := d.Exec(ctx, rule.Invocation(userArgs))
		if err != nil {
			return Outcome{Kind: OutcomeExecuted, Rule: rule.Name, ExitCode: domain.ExitFatal},
				zerr.With(err, "rule", rule.Name)
		}

		if rule.Terminal {
			return Outcome{Kind: OutcomeExecuted, Rule: rule.Name, ExitCode: code}, nil
		}
	}

	d.logger.Info(domain.FallbackMessage)
	return Outcome{Kind: OutcomeFallback, ExitCode: domain.ExitSuccess}, nil
}

// Exec traces and runs a single invocation and returns the child's exit code
// to the caller.
func (d *Dispatcher) Exec(ctx context.Context, inv domain.Invocation) (int, error) {
	d.logger.Info(inv.Trace())
	return d.executor.Execute(ctx, inv)
}

func (d *Dispatcher) holds(m domain.Marker) bool {
	switch m.Kind {
	case domain.MarkerFile:
		return d.probe.IsFile(m.Path)
	case domain.MarkerDir:
		return d.probe.IsDir(m.Path)
	case domain.MarkerExecutable:
		return d.probe.IsExecutable(m.Path)
	default:
		return false
	}
}
