// Package driver runs the acquire, decode, group, render and report
// pipeline once.
package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"swizzy/internal/diag"
	"swizzy/internal/diagfmt"
	"swizzy/internal/observ"
	"swizzy/internal/source"
	"swizzy/internal/trace"
)

// Options configures a single Run.
type Options struct {
	Source        source.Options
	Output        io.Writer // receives the report (stdout)
	Color         bool
	EnableTimings bool
	Observer      StageObserver
}

// Result describes how the run ended. Stage is the last state reached; for
// failed runs it is the stage that failed.
type Result struct {
	Stage    Stage
	Origin   source.Origin
	Groups   []diag.FileGroup
	Summary  diag.Summary
	Outcome  diag.Outcome
	Timings  *observ.Report
	LinterRC int // linter exit status when the linter was run
}

// Run executes the pipeline:
//
//	idle -> acquiring -> decoding -> empty
//	                              -> decode_error
//	                              -> grouping -> rendering -> reporting
//
// Nothing is written to Output unless the document holds diagnostics, and
// the report is written with a single Write.
func Run(ctx context.Context, opts Options) (Result, error) {
	var timer *observ.Timer
	if opts.EnableTimings {
		timer = observ.NewTimer()
	}
	tracer := trace.FromContext(ctx)
	root := trace.Begin(tracer, trace.ScopeDriver, "swizzy", 0)

	res := Result{Stage: StageIdle}
	var (
		span    *trace.Span
		idx     = -1
		started time.Time
	)
	begin := func(stage Stage) {
		res.Stage = stage
		started = time.Now()
		span = trace.Begin(tracer, trace.ScopeStage, string(stage), root.ID())
		if timer != nil {
			idx = timer.Begin(string(stage))
		}
		if opts.Observer != nil {
			opts.Observer(StageEvent{Stage: stage, Status: StageStart})
		}
	}
	end := func(note string) {
		span.End(note)
		if timer != nil {
			timer.End(idx, note)
		}
		if opts.Observer != nil {
			opts.Observer(StageEvent{Stage: res.Stage, Status: StageEnd, Elapsed: time.Since(started)})
		}
	}
	finish := func(err error) (Result, error) {
		if err != nil {
			trace.Fail(tracer, string(res.Stage), err, root.ID())
		}
		if timer != nil {
			report := timer.Report()
			res.Timings = &report
		}
		root.End(string(res.Stage))
		return res, err
	}

	begin(StageAcquiring)
	doc, err := source.Acquire(ctx, opts.Source)
	if err != nil {
		end("failed")
		return finish(err)
	}
	res.Origin = doc.Origin
	if doc.Run != nil {
		res.LinterRC = doc.Run.ExitCode
	}
	end(doc.Origin.String() + " " + strconv.Itoa(len(doc.Data)) + "B")

	begin(StageDecoding)
	records, err := diag.Decode(doc.Data)
	if err != nil {
		end("failed")
		res.Stage = StageDecodeError
		return finish(err)
	}
	end(strconv.Itoa(len(records)) + " records")

	if len(records) == 0 {
		res.Stage = StageEmpty
		res.Outcome = diag.Resolve(0)
		return finish(nil)
	}

	begin(StageGrouping)
	res.Groups = diag.Group(records)
	traceGroups(tracer, span, res.Groups)
	end(strconv.Itoa(len(res.Groups)) + " files")

	begin(StageRendering)
	res.Summary, err = diagfmt.Pretty(opts.Output, res.Groups, diagfmt.PrettyOpts{Color: opts.Color})
	if err != nil {
		end("failed")
		return finish(&WriteError{Err: err})
	}
	end(strconv.Itoa(res.Summary.Total) + " " + diagfmt.Plural(res.Summary.Total, "problem"))

	begin(StageReporting)
	res.Outcome = diag.Resolve(res.Summary.Total)
	end("exit " + strconv.Itoa(res.Outcome.ExitCode))
	return finish(nil)
}

func traceGroups(tracer trace.Tracer, parent *trace.Span, groups []diag.FileGroup) {
	if !tracer.Enabled() {
		return
	}
	for _, g := range groups {
		trace.Point(tracer, trace.ScopeFile, g.File, strconv.Itoa(len(g.Records))+" records", parent.ID())
		for _, r := range g.Records {
			trace.Point(tracer, trace.ScopeRecord, diagfmt.Location(r), r.Severity.String()+" "+r.RuleID, parent.ID())
		}
	}
}

// ErrWrite matches failures to write the report.
var ErrWrite = errors.New("report write failed")

// WriteError wraps a failure to write the report to the output.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string { return fmt.Sprint(e.Err) }

func (e *WriteError) Unwrap() error { return e.Err }

func (e *WriteError) Is(target error) bool { return target == ErrWrite }
