package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"swizzy/internal/config"
	"swizzy/internal/diag"
	"swizzy/internal/driver"
	"swizzy/internal/source"
	"swizzy/internal/trace"
	"swizzy/internal/ui"
	"swizzy/internal/version"
)

// env is the process surface the command touches. Capabilities are probed
// once here and passed down as plain values.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	stdinTTY  bool
	stdoutTTY bool
	stderrTTY bool

	getenv func(string) string
	dir    string // where .swizzy.toml lookup starts
}

func osEnv() env {
	return env{
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		stdinTTY:  isTerminal(os.Stdin),
		stdoutTTY: isTerminal(os.Stdout),
		stderrTTY: isTerminal(os.Stderr),
		getenv:    os.Getenv,
		dir:       ".",
	}
}

func newRootCmd(e env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swizzy",
		Short: "Pretty-print SwiftLint JSON diagnostics",
		Long: `swizzy reads SwiftLint's JSON report from stdin and prints it grouped by file.
When nothing is piped in it runs ` + "`swiftlint lint --reporter json`" + ` itself.

  swiftlint lint --reporter json | swizzy
  swizzy`,
		Args:          cobra.NoArgs,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, e)
		},
	}
	cmd.SetVersionTemplate("swizzy {{.Version}}\n")
	cmd.SetIn(e.stdin)
	cmd.SetOut(e.stdout)
	cmd.SetErr(e.stderr)

	flags := cmd.PersistentFlags()
	flags.String("trace", "", "write a trace of the run to a file (- for stderr)")
	flags.String("trace-level", "off", "trace level (off|error|stage|detail|debug)")
	flags.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	flags.Bool("timings", false, "print stage timings to stderr")
	return cmd
}

func runReport(cmd *cobra.Command, e env) error {
	cleanup, err := setupTracing(cmd, e.stderr)
	if err != nil {
		return err
	}
	defer cleanup()
	ctx := cmd.Context()
	tracer := trace.FromContext(ctx)

	cfg, err := config.Load(e.dir)
	if err != nil {
		return err
	}
	if cfg.Path != "" {
		trace.Point(tracer, trace.ScopeDriver, "config", cfg.Path, 0)
	}
	timings, err := cmd.Flags().GetBool("timings")
	if err != nil {
		return err
	}

	opts := driver.Options{
		Source: source.Options{
			Stdin:           e.stdin,
			StdinIsTerminal: e.stdinTTY,
			Advisory:        e.stderr,
			Linter:          cfg.Linter,
		},
		Output:        e.stdout,
		Color:         cfg.Color.Enabled(e.stdoutTTY, e.getenv),
		EnableTimings: timings,
	}
	if cfg.Spinner.Enabled(e.stderrTTY) {
		opts.Source.Waiter = ui.Spinner{Output: e.stderr}
	}

	res, err := driver.Run(ctx, opts)
	if res.Origin == source.OriginLinter {
		trace.Point(tracer, trace.ScopeDriver, "linter-exit", strconv.Itoa(res.LinterRC), 0)
	}
	if res.Timings != nil {
		fmt.Fprint(e.stderr, res.Timings.Summary())
	}
	if err != nil {
		return err
	}
	if res.Outcome.Failed() {
		return &exitError{code: diag.ExitProblems}
	}
	return nil
}
