package source

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"swizzy/internal/trace"
)

// Options configures Acquire.
type Options struct {
	Stdin           io.Reader
	StdinIsTerminal bool
	Advisory        io.Writer // receives non-fatal messages (stderr)
	Linter          Linter
	Waiter          Waiter // optional; shown while the linter runs
}

// Acquire returns the JSON document to decode. Piped stdin is read as is,
// apart from a leading byte order mark, and must be UTF-8. An interactive
// stdin means nothing was piped, so the linter is run instead; its stdout is
// taken without the UTF-8 check.
func Acquire(ctx context.Context, opts Options) (Document, error) {
	tracer := trace.FromContext(ctx)

	if !opts.StdinIsTerminal {
		data, err := readAll(ctx, opts.Stdin)
		if err != nil {
			return Document{}, &Error{Kind: KindIO, Op: "read stdin", Err: err}
		}
		if !utf8.Valid(data) {
			return Document{}, &Error{Kind: KindIO, Op: "read stdin", Err: ErrInvalidUTF8}
		}
		doc := newDocument(OriginStdin, data)
		trace.Point(tracer, trace.ScopeStage, "stdin", strconv.Itoa(len(data))+" bytes", 0)
		return doc, nil
	}

	linter := opts.Linter
	if linter.Command == "" {
		linter = DefaultLinter
	}
	advise(opts.Advisory, "No input piped. Running `%s`...", linter.CommandLine())

	run, err := linter.Run(ctx, opts.Waiter)
	if err != nil {
		return Document{}, err
	}
	if run.Failed() {
		advise(opts.Advisory, "%s exited with error: %s", linter.displayName(), strings.TrimRight(run.Stderr, "\n"))
		trace.Point(tracer, trace.ScopeStage, "linter-failed", "exit "+strconv.Itoa(run.ExitCode), 0)
	}

	doc := newDocument(OriginLinter, run.Stdout)
	doc.Run = &run
	return doc, nil
}

type readResult struct {
	data []byte
	err  error
}

// readAll reads r to EOF, giving up when ctx is cancelled. A reader blocked
// on a stalled pipe is abandoned; the process is about to exit anyway.
func readAll(ctx context.Context, r io.Reader) ([]byte, error) {
	done := make(chan readResult, 1)
	go func() {
		data, err := io.ReadAll(r)
		done <- readResult{data: data, err: err}
	}()
	select {
	case res := <-done:
		return res.data, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func advise(w io.Writer, format string, args ...any) {
	if w == nil {
		return
	}
	_, _ = fmt.Fprintf(w, format+"\n", args...)
}
