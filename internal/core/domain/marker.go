// Package domain contains the core domain models for build-system detection and dispatch.
package domain

import "fmt"

// MarkerKind identifies how a marker path is tested.
type MarkerKind int

const (
	// MarkerFile holds when the path names an existing regular file.
	MarkerFile MarkerKind = iota
	// MarkerDir holds when the path names an existing directory.
	MarkerDir
	// MarkerExecutable holds when the path names something that can be executed.
	MarkerExecutable
)

// String returns the configuration name of the kind.
func (k MarkerKind) String() string {
	switch k {
	case MarkerFile:
		return "file"
	case MarkerDir:
		return "dir"
	case MarkerExecutable:
		return "executable"
	default:
		return fmt.Sprintf("MarkerKind(%d)", int(k))
	}
}

// Marker is a filesystem condition whose presence signals a build system.
type Marker struct {
	Kind MarkerKind
	Path string
}

// FileMarker returns a marker that holds for an existing regular file.
func FileMarker(path string) Marker {
	return Marker{Kind: MarkerFile, Path: path}
}

// DirMarker returns a marker that holds for an existing directory.
func DirMarker(path string) Marker {
	return Marker{Kind: MarkerDir, Path: path}
}

// ExecutableMarker returns a marker that holds for an executable program.
func ExecutableMarker(path string) Marker {
	return Marker{Kind: MarkerExecutable, Path: path}
}

// String renders the marker as "kind:path".
func (m Marker) String() string {
	return m.Kind.String() + ":" + m.Path
}
