package config

// Rulefile represents the structure of the rule table document.
type Rulefile struct {
	Version    string        `yaml:"version"`
	Advisories []AdvisoryDTO `yaml:"advisories"`
	Rules      []RuleDTO     `yaml:"rules"`
}

// MarkerDTO represents a marker. Exactly one field must be set.
type MarkerDTO struct {
	File       string `yaml:"file"`
	Dir        string `yaml:"dir"`
	Executable string `yaml:"executable"`
}

// AdvisoryDTO represents an advisory definition.
type AdvisoryDTO struct {
	When    MarkerDTO `yaml:"when"`
	Message string    `yaml:"message"`
}

// RuleDTO represents a rule definition. Terminal defaults to true.
type RuleDTO struct {
	Name     string    `yaml:"name"`
	When     MarkerDTO `yaml:"when"`
	Run      string    `yaml:"run"`
	Args     []string  `yaml:"args"`
	Terminal *bool     `yaml:"terminal"`
	Stub     *StubDTO  `yaml:"stub"`
}

// StubDTO represents a stub that replaces execution of a matched rule.
type StubDTO struct {
	When     MarkerDTO `yaml:"when"`
	Message  string    `yaml:"message"`
	ExitCode int       `yaml:"exitCode"`
}
