package ports

import "go.trai.ch/anybuild/internal/core/domain"

// RuleLoader defines the interface for loading the dispatch table.
//
//go:generate go run go.uber.org/mock/mockgen -source=rule_loader.go -destination=mocks/mock_rule_loader.go -package=mocks
type RuleLoader interface {
	// Load returns the rule table. It is called once per process.
	Load() (*domain.RuleTable, error)
}
