// Package ports defines the core interfaces for the application.
package ports

// Probe answers existence questions about marker paths.
// Implementations never fail: a missing or unreadable path is simply false.
//
//go:generate go run go.uber.org/mock/mockgen -source=probe.go -destination=mocks/mock_probe.go -package=mocks
type Probe interface {
	// IsFile reports whether path names an existing regular file, following symlinks.
	IsFile(path string) bool
	// IsDir reports whether path names an existing directory, following symlinks.
	IsDir(path string) bool
	// IsExecutable reports whether path can be executed. Paths containing a
	// separator are checked in place, bare names are looked up on the search path.
	IsExecutable(path string) bool
}
