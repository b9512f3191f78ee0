package source

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"swizzy/internal/trace"
)

// DefaultLinter runs `swiftlint lint --reporter json`.
var DefaultLinter = Linter{
	Name:    "SwiftLint",
	Command: "swiftlint",
	Args:    []string{"lint", "--reporter", "json"},
}

const heartbeatInterval = 2 * time.Second

// Linter describes the external process that produces the JSON document.
type Linter struct {
	Name    string   // display name used in advisories
	Command string   // executable, resolved through PATH
	Args    []string // arguments requesting JSON output
	Env     []string // extra environment, appended to os.Environ()
}

// CommandLine returns the command as typed in a shell.
func (l Linter) CommandLine() string {
	if len(l.Args) == 0 {
		return l.Command
	}
	return l.Command + " " + strings.Join(l.Args, " ")
}

func (l Linter) displayName() string {
	if l.Name != "" {
		return l.Name
	}
	return l.Command
}

// Waiter is shown while the linter runs, typically a spinner. Wait must
// return once done is closed.
type Waiter interface {
	Wait(label string, done <-chan struct{}) error
}

// Run starts the linter and captures its output. Only a failure to start
// the process or to read its pipes is an error; a non-zero exit status is
// reported through LinterRun.ExitCode.
func (l Linter) Run(ctx context.Context, waiter Waiter) (LinterRun, error) {
	run := LinterRun{Command: l.Command, Args: append([]string(nil), l.Args...)}

	cmd := exec.CommandContext(ctx, l.Command, l.Args...)
	if len(l.Env) > 0 {
		cmd.Env = append(os.Environ(), l.Env...)
	}
	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return run, &Error{Kind: KindIO, Op: "open stdout", Command: l.CommandLine(), Err: err}
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return run, &Error{Kind: KindIO, Op: "open stderr", Command: l.CommandLine(), Err: err}
	}
	if err := cmd.Start(); err != nil {
		return run, &Error{Kind: KindToolUnavailable, Op: "start", Command: l.Command, Err: err}
	}

	tracer := trace.FromContext(ctx)
	heartbeat := trace.StartHeartbeat(tracer, "linter:"+l.Command, heartbeatInterval)
	defer heartbeat.Stop()

	done := make(chan struct{})
	var ui errgroup.Group
	if waiter != nil {
		ui.Go(func() error { return waiter.Wait(l.displayName(), done) })
	}

	// Both pipes must be drained before Wait.
	var stdout, stderr bytes.Buffer
	var drain errgroup.Group
	drain.Go(func() error {
		if _, err := io.Copy(&stdout, stdoutPipe); err != nil {
			return &Error{Kind: KindIO, Op: "read stdout", Command: l.CommandLine(), Err: err}
		}
		return nil
	})
	drain.Go(func() error {
		if _, err := io.Copy(&stderr, stderrPipe); err != nil {
			return &Error{Kind: KindIO, Op: "read stderr", Command: l.CommandLine(), Err: err}
		}
		return nil
	})
	drainErr := drain.Wait()
	waitErr := cmd.Wait()
	close(done)
	if uiErr := ui.Wait(); uiErr != nil {
		trace.Point(tracer, trace.ScopeStage, "spinner", uiErr.Error(), 0)
	}

	run.Stdout = stdout.Bytes()
	run.Stderr = stderr.String()
	if drainErr != nil {
		return run, drainErr
	}
	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return run, &Error{Kind: KindIO, Op: "wait", Command: l.CommandLine(), Err: waitErr}
		}
		// -1 when the process was killed by a signal
		run.ExitCode = exitErr.ExitCode()
	}
	return run, nil
}
