// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync/atomic"

	"botlaunch/internal/config"

	"github.com/charmbracelet/log"
)

const (
	// StateValidating indicates the launcher has not yet attempted a handoff.
	StateValidating State = iota
	// StateLaunched indicates a successful handoff (terminal state).
	StateLaunched
	// StateFailed indicates a validation or handoff error (terminal state).
	StateFailed
)

// ErrLaunch is the sentinel error wrapped by LaunchError.
var ErrLaunch = errors.New("cannot start bot process")

type (
	// State represents the lifecycle state of a Launcher. A Launcher is
	// single-use: it starts in StateValidating and moves to exactly one of
	// the terminal states.
	State int32

	// Spec describes the child process to hand off to: the target executable
	// name or path, its arguments, and the full child environment.
	Spec struct {
		Path string
		Args []string
		Env  []string
	}

	// ExecFunc transfers control to the target process. The production
	// implementation replaces the current process image and never returns on
	// success; tests inject a recording double.
	ExecFunc func(path string, argv, env []string) error

	// LaunchError reports a failed handoff to the target executable.
	LaunchError struct {
		Target string
		Cause  error
	}

	// Launcher performs the terminal transfer of control to the bot process.
	Launcher struct {
		exec     ExecFunc
		lookPath func(file string) (string, error)
		logger   *log.Logger
		state    atomic.Int32
	}

	// Option configures a Launcher.
	Option func(*Launcher)
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateValidating:
		return "validating"
	case StateLaunched:
		return "launched"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("unknown(%d)", int32(s))
	}
}

// Error implements the error interface.
func (e *LaunchError) Error() string {
	return fmt.Sprintf("cannot start bot process %q: %v", e.Target, e.Cause)
}

// Unwrap exposes both the ErrLaunch sentinel and the underlying cause, so
// callers can use errors.Is(err, ErrLaunch) as well as match the cause
// (e.g. exec.ErrNotFound).
func (e *LaunchError) Unwrap() []error {
	return []error{ErrLaunch, e.Cause}
}

// ExitCode maps the failure to a shell-conventional exit code: 127 when the
// target could not be found, 126 otherwise.
func (e *LaunchError) ExitCode() ExitCode {
	if errors.Is(e.Cause, exec.ErrNotFound) {
		return ExitNotFound
	}
	return ExitNotExecutable
}

// NewSpec derives a launch spec from the validated configuration: the target
// executable, the trailing CLI arguments, and the host environment overlaid
// with the validated and forwarded variables.
func NewSpec(cfg *config.Config, args []string) Spec {
	return Spec{
		Path: cfg.Target,
		Args: args,
		Env:  MergeEnviron(os.Environ(), cfg.ChildEnv()),
	}
}

// WithExec overrides the exec primitive. Tests use this to observe the
// handoff without replacing the test process.
func WithExec(fn ExecFunc) Option {
	return func(l *Launcher) { l.exec = fn }
}

// WithLookPath overrides executable resolution.
func WithLookPath(fn func(string) (string, error)) Option {
	return func(l *Launcher) { l.lookPath = fn }
}

// WithLogger sets the logger used for handoff diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(l *Launcher) { l.logger = logger }
}

// New creates a Launcher with platform handoff defaults.
func New(opts ...Option) *Launcher {
	l := &Launcher{
		exec:     handoff,
		lookPath: exec.LookPath,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// State returns the launcher's current lifecycle state.
func (l *Launcher) State() State {
	return State(l.state.Load())
}

// Launch resolves the target executable and transfers control to it.
//
// Launch is terminal: on unix a successful handoff replaces the process
// image, so the call never returns and no launcher code runs afterwards.
// A nil return is only observable when the exec primitive does not replace
// the process (spawn-and-wait platforms, injected test doubles). All failures
// return a *LaunchError; no retry is attempted.
func (l *Launcher) Launch(ctx context.Context, spec Spec) error {
	if err := ctx.Err(); err != nil {
		l.state.Store(int32(StateFailed))
		return &LaunchError{Target: spec.Path, Cause: err}
	}

	path, err := l.lookPath(spec.Path)
	if err != nil {
		l.state.Store(int32(StateFailed))
		return &LaunchError{Target: spec.Path, Cause: err}
	}

	argv := append([]string{path}, spec.Args...)
	l.logger.Debug("handing off to bot process", "target", path, "args", spec.Args)

	if err := l.exec(path, argv, spec.Env); err != nil {
		l.state.Store(int32(StateFailed))
		return &LaunchError{Target: spec.Path, Cause: err}
	}

	l.state.Store(int32(StateLaunched))
	return nil
}
