// Package config loads the dispatch rule table.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"io"

	"go.trai.ch/anybuild/internal/core/domain"
	"go.trai.ch/anybuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var defaultRules []byte

var _ ports.RuleLoader = (*Loader)(nil)

// Loader implements ports.RuleLoader from a YAML document.
type Loader struct {
	data []byte
}

// NewLoader creates a Loader for the built-in rule table.
func NewLoader() *Loader {
	return &Loader{data: defaultRules}
}

// Load decodes and validates the document into a domain.RuleTable.
func (l *Loader) Load() (*domain.RuleTable, error) {
	return Parse(l.data)
}

// Parse decodes a rule table document. Unknown fields are rejected.
func Parse(data []byte) (*domain.RuleTable, error) {
	var rulefile Rulefile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&rulefile); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.Wrap(err, domain.ErrRulesParseFailed.Error())
	}

	table := domain.NewRuleTable()

	for i, dto := range rulefile.Advisories {
		marker, err := dto.When.toDomain()
		if err != nil {
			return nil, zerr.With(err, "advisory", i)
		}
		if dto.Message == "" {
			return nil, zerr.With(zerr.Wrap(zerr.New("advisory message is empty"), domain.ErrInvalidRule.Error()), "advisory", i)
		}
		table.AddAdvisory(domain.Advisory{Marker: marker, Message: dto.Message})
	}

	for _, dto := range rulefile.Rules {
		rule, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		if err := table.AddRule(rule); err != nil {
			return nil, err
		}
	}

	return table, nil
}

func (dto RuleDTO) toDomain() (*domain.Rule, error) {
	if dto.Name == "" {
		return nil, zerr.Wrap(zerr.New("rule name is empty"), domain.ErrInvalidRule.Error())
	}
	if dto.Run == "" {
		return nil, zerr.With(zerr.Wrap(zerr.New("rule program is empty"), domain.ErrInvalidRule.Error()), "rule_name", dto.Name)
	}

	marker, err := dto.When.toDomain()
	if err != nil {
		return nil, zerr.With(err, "rule_name", dto.Name)
	}

	rule := &domain.Rule{
		Name:     dto.Name,
		Marker:   marker,
		Program:  dto.Run,
		Args:     dto.Args,
		Terminal: dto.Terminal == nil || *dto.Terminal,
	}

	if dto.Stub != nil {
		when, err := dto.Stub.When.toDomain()
		if err != nil {
			return nil, zerr.With(err, "rule_name", dto.Name)
		}
		rule.Stub = &domain.Stub{
			When:     when,
			Message:  dto.Stub.Message,
			ExitCode: dto.Stub.ExitCode,
		}
	}

	return rule, nil
}

func (dto MarkerDTO) toDomain() (domain.Marker, error) {
	var markers []domain.Marker
	if dto.File != "" {
		markers = append(markers, domain.FileMarker(dto.File))
	}
	if dto.Dir != "" {
		markers = append(markers, domain.DirMarker(dto.Dir))
	}
	if dto.Executable != "" {
		markers = append(markers, domain.ExecutableMarker(dto.Executable))
	}

	if len(markers) != 1 {
		return domain.Marker{}, zerr.With(domain.ErrInvalidMarker, "markers_set", len(markers))
	}
	return markers[0], nil
}
