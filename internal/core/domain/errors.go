package domain

import "go.trai.ch/zerr"

// Exit codes reported by the process itself, as opposed to those of a delegated build tool.
const (
	// ExitSuccess is used for the fallback and stub paths.
	ExitSuccess = 0
	// ExitFatal is used when a build tool cannot be spawned or the rule table is broken.
	ExitFatal = 1
)

// FallbackMessage is printed when no rule matched.
const FallbackMessage = "I don't know how to build this project!"

var (
	// ErrRuleAlreadyExists is returned when a rule name is declared twice.
	ErrRuleAlreadyExists = zerr.New("rule already exists")

	// ErrInvalidRule is returned when a rule definition is incomplete.
	ErrInvalidRule = zerr.New("invalid rule")

	// ErrInvalidMarker is returned when a marker does not name exactly one of file, dir or executable.
	ErrInvalidMarker = zerr.New("marker must set exactly one of file, dir or executable")

	// ErrRulesParseFailed is returned when the rule table document cannot be decoded.
	ErrRulesParseFailed = zerr.New("failed to parse rule table")

	// ErrProgramNotFound is returned when a build program cannot be resolved.
	ErrProgramNotFound = zerr.New("could not find program")

	// ErrSpawnFailed is returned when a build program cannot be started.
	ErrSpawnFailed = zerr.New("could not run program")

	// ErrDispatchCanceled is returned when the context is done before a program is spawned.
	ErrDispatchCanceled = zerr.New("dispatch canceled")
)
