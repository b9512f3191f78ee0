package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"off", LevelOff, false},
		{"", LevelOff, false},
		{"error", LevelError, false},
		{"STAGE", LevelStage, false},
		{"detail", LevelDetail, false},
		{" debug ", LevelDebug, false},
		{"phase", LevelOff, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevel_ShouldEmit(t *testing.T) {
	tests := []struct {
		level Level
		kind  Kind
		scope Scope
		want  bool
	}{
		{LevelOff, KindError, ScopeDriver, false},
		{LevelError, KindError, ScopeDriver, true},
		{LevelError, KindSpanBegin, ScopeDriver, false},
		{LevelStage, KindSpanBegin, ScopeStage, true},
		{LevelStage, KindSpanBegin, ScopeFile, false},
		{LevelDetail, KindPoint, ScopeFile, true},
		{LevelDetail, KindPoint, ScopeRecord, false},
		{LevelDebug, KindPoint, ScopeRecord, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.kind, tt.scope); got != tt.want {
			t.Errorf("%v.ShouldEmit(%v, %v) = %v, want %v", tt.level, tt.kind, tt.scope, got, tt.want)
		}
	}
}

func TestStreamTracer_TextSpans(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelStage, FormatText)

	root := Begin(tr, ScopeDriver, "run", 0)
	stage := Begin(tr, ScopeStage, "decode", root.ID())
	stage.WithExtra("records", "3").WithExtra("bytes", "120").End("ok")
	Begin(tr, ScopeFile, "file:a.swift", stage.ID()).End("")
	root.End("")

	out := buf.String()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines (file scope filtered), got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "\u2192 run") {
		t.Errorf("line 0 = %q, want begin of run", lines[0])
	}
	if !strings.Contains(lines[2], "\u2190 decode (ok) {bytes=120, records=3}") {
		t.Errorf("line 2 = %q, want end of decode with sorted extras", lines[2])
	}
	if strings.Contains(out, "file:a.swift") {
		t.Errorf("file-scope span leaked at stage level:\n%s", out)
	}
}

func TestStreamTracer_NDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatNDJSON)
	Point(tr, ScopeRecord, "record", "a.swift:3", 0)
	Fail(tr, "decode", errors.New("boom"), 0)

	dec := json.NewDecoder(&buf)
	var kinds []string
	for dec.More() {
		var ev map[string]any
		if err := dec.Decode(&ev); err != nil {
			t.Fatalf("invalid NDJSON: %v", err)
		}
		kinds = append(kinds, ev["kind"].(string))
	}
	if strings.Join(kinds, ",") != "point,error" {
		t.Errorf("kinds = %v, want [point error]", kinds)
	}
}

func TestFail_EmittedAtErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelError, FormatText)
	Begin(tr, ScopeDriver, "run", 0).End("")
	Fail(tr, "acquire", errors.New("swiftlint not found"), 0)
	out := buf.String()
	if strings.Count(out, "\n") != 1 || !strings.Contains(out, "acquire (swiftlint not found)") {
		t.Errorf("unexpected output at error level:\n%s", out)
	}
}

func TestNew_OffIsNop(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.Enabled() {
		t.Error("tracer should be disabled")
	}
	span := Begin(tr, ScopeDriver, "run", 0)
	if d := span.End(""); d != 0 {
		t.Errorf("nop span duration = %v, want 0", d)
	}
}

func TestNew_FileOutputPicksFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.ndjson")
	tr, err := New(Config{Level: LevelStage, OutputPath: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	Begin(tr, ScopeStage, "decode", 0).End("")
	if err := tr.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("{")) {
		t.Errorf("expected NDJSON output, got %q", data)
	}
}

func TestContext(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Error("empty context should yield Nop")
	}
	tr := NewStreamTracer(&bytes.Buffer{}, LevelStage, FormatText)
	ctx := WithTracer(context.Background(), tr)
	if FromContext(ctx) != Tracer(tr) {
		t.Error("tracer not propagated through context")
	}
	if FromContext(WithTracer(context.Background(), nil)) != Nop {
		t.Error("nil tracer should be stored as Nop")
	}
}

func TestHeartbeat(t *testing.T) {
	var buf syncBuffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatText)
	hb := StartHeartbeat(tr, "swiftlint", 5*time.Millisecond)
	if hb == nil {
		t.Fatal("expected heartbeat")
	}
	deadline := time.Now().Add(2 * time.Second)
	for !strings.Contains(buf.String(), "\u2661 swiftlint (waiting ") {
		if time.Now().After(deadline) {
			t.Fatalf("no heartbeat emitted: %q", buf.String())
		}
		time.Sleep(5 * time.Millisecond)
	}
	hb.Stop()
	hb.Stop()

	if StartHeartbeat(Nop, "x", time.Millisecond) != nil {
		t.Error("heartbeat on Nop tracer should be nil")
	}
}
