// export_test.go exports private functions for white-box testing.
package logger

import "io"

// NewLogger exports newLogger so tests can pick the writer and format.
func NewLogger(w io.Writer, jsonMode bool) *Logger {
	return newLogger(w, jsonMode)
}

// JSONMode reports whether the logger renders records as JSON.
func (l *Logger) JSONMode() bool {
	return l.jsonMode
}
