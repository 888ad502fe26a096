// Package output creates termenv outputs with consistent color handling.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// New creates a new termenv.Output writing to w, or to stderr when w is nil.
//
// Colors follow w itself: a writer that is not a terminal gets plain text,
// NO_COLOR disables colors and CLICOLOR_FORCE enables them.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, opts...)
}
