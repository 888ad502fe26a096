// Package fs implements filesystem predicates for marker detection.
package fs

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/anybuild/internal/core/ports"
)

var _ ports.Probe = (*Probe)(nil)

// Probe implements ports.Probe against a root directory.
type Probe struct {
	root string
}

// NewProbe creates a new Probe. Relative marker paths are resolved against root.
func NewProbe(root string) *Probe {
	return &Probe{root: root}
}

// IsFile reports whether path names an existing regular file.
func (p *Probe) IsFile(path string) bool {
	info, err := os.Stat(p.resolve(path))
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether path names an existing directory.
func (p *Probe) IsDir(path string) bool {
	info, err := os.Stat(p.resolve(path))
	return err == nil && info.IsDir()
}

// IsExecutable reports whether path can be executed.
// Local paths such as "./build.sh" are checked in place and never looked up on PATH.
func (p *Probe) IsExecutable(path string) bool {
	if !isLocalPath(path) {
		_, err := exec.LookPath(path)
		return err == nil
	}
	return findExecutable(p.resolve(path)) == nil
}

func (p *Probe) resolve(path string) string {
	if filepath.IsAbs(path) || p.root == "" {
		return path
	}
	return filepath.Join(p.root, path)
}

func isLocalPath(path string) bool {
	return strings.ContainsRune(path, '/') || strings.ContainsRune(path, filepath.Separator)
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
