//go:build !unix

package shell

import "os"

var forwardedSignals = []os.Signal{os.Interrupt}

// Interrupt cannot be sent to another process here.
var cancelSignal = os.Kill

func terminatingSignal(_ *os.ProcessState) (int, bool) {
	return 0, false
}
