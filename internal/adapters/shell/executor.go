// Package shell provides the executor that delegates to build programs.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"time"

	"go.trai.ch/anybuild/internal/core/domain"
	"go.trai.ch/anybuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

const (
	// signalExitBase is added to the signal number when the child was killed by a signal.
	signalExitBase = 128
	// waitDelay bounds how long Wait blocks on the child's streams after it was canceled.
	waitDelay = 5 * time.Second
)

// Executor implements ports.Executor using os/exec.
// The child's standard streams are connected to the given ones unmodified.
type Executor struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewExecutor creates a new Executor wired to the given streams.
func NewExecutor(stdin io.Reader, stdout, stderr io.Writer) *Executor {
	return &Executor{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

// NewStdioExecutor creates an Executor wired to the process's own streams.
func NewStdioExecutor() *Executor {
	return NewExecutor(os.Stdin, os.Stdout, os.Stderr)
}

// Execute runs the invocation synchronously and returns the child's exit code.
//
// Bare program names are resolved on the ambient PATH. Names containing a path
// separator are used as is, relative to the working directory. While the child
// runs, interrupt and termination signals delivered to this process are
// forwarded to it, and canceling ctx sends it the cancel signal. In both cases
// the child's own exit status is what gets reported.
func (e *Executor) Execute(ctx context.Context, inv domain.Invocation) (int, error) {
	if err := ctx.Err(); err != nil {
		return domain.ExitFatal, zerr.With(zerr.Wrap(err, domain.ErrDispatchCanceled.Error()), "program", inv.Program)
	}

	executable := inv.Program
	if !strings.ContainsAny(inv.Program, `/\`) {
		lp, err := exec.LookPath(inv.Program)
		if err != nil {
			return domain.ExitFatal, zerr.With(zerr.Wrap(err, domain.ErrProgramNotFound.Error()), "program", inv.Program)
		}
		executable = lp
	}

	cmd := exec.CommandContext(ctx, executable, inv.Args...) //nolint:gosec // program comes from the rule table

	// Keep the name as it was requested rather than the resolved path.
	cmd.Args[0] = inv.Program

	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr
	cmd.Cancel = func() error {
		return cmd.Process.Signal(cancelSignal)
	}
	cmd.WaitDelay = waitDelay

	// Registered before Start so no signal falls back to the default
	// disposition while the child exists.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, forwardedSignals...)
	defer signal.Stop(sigs)

	if err := cmd.Start(); err != nil {
		return domain.ExitFatal, zerr.With(zerr.Wrap(err, domain.ErrSpawnFailed.Error()), "program", inv.Program)
	}

	done := make(chan struct{})
	defer close(done)
	go forward(cmd.Process, sigs, done)

	err := cmd.Wait()
	if err == nil {
		return domain.ExitSuccess, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitCode(exitErr.ProcessState), nil
	}

	// A child that exits cleanly after cancellation still reports its own status.
	if ctx.Err() != nil && cmd.ProcessState != nil {
		return exitCode(cmd.ProcessState), nil
	}

	return domain.ExitFatal, zerr.With(zerr.Wrap(err, domain.ErrSpawnFailed.Error()), "program", inv.Program)
}

// forward relays every signal received on sigs to p until done is closed.
func forward(p *os.Process, sigs <-chan os.Signal, done <-chan struct{}) {
	for {
		select {
		case sig := <-sigs:
			// The child may already be gone, nothing to report then.
			_ = p.Signal(sig)
		case <-done:
			return
		}
	}
}

func exitCode(state *os.ProcessState) int {
	if code := state.ExitCode(); code >= 0 {
		return code
	}
	if sig, ok := terminatingSignal(state); ok {
		return signalExitBase + sig
	}
	return domain.ExitFatal
}
