//go:build unix

package shell

import (
	"os"
	"syscall"
)

// forwardedSignals are relayed to the running child.
var forwardedSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT}

// cancelSignal is sent to the child when the context is canceled.
var cancelSignal os.Signal = syscall.SIGTERM

func terminatingSignal(state *os.ProcessState) (int, bool) {
	status, ok := state.Sys().(syscall.WaitStatus)
	if !ok || !status.Signaled() {
		return 0, false
	}
	return int(status.Signal()), true
}
