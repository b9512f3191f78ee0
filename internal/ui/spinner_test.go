package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func fixedClock(start time.Time, step time.Duration) func() time.Time {
	now := start
	return func() time.Time {
		t := now
		now = now.Add(step)
		return t
	}
}

func TestSpinnerModel_ViewShowsLabel(t *testing.T) {
	done := make(chan struct{})
	m := newSpinnerModel("SwiftLint", done, fixedClock(time.Unix(0, 0), 1500*time.Millisecond))
	view := m.View()
	if !strings.Contains(view, "Running SwiftLint...") {
		t.Errorf("view = %q", view)
	}
	if !strings.Contains(view, "(1.5s)") {
		t.Errorf("view should show elapsed time: %q", view)
	}
}

func TestSpinnerModel_DoneQuitsAndClears(t *testing.T) {
	done := make(chan struct{})
	m := newSpinnerModel("SwiftLint", done, time.Now)

	close(done)
	msg := m.waitForDone()()
	if _, ok := msg.(doneMsg); !ok {
		t.Fatalf("waitForDone returned %T", msg)
	}
	_, cmd := m.Update(msg)
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("done should quit the program")
	}
	if m.View() != "" {
		t.Errorf("finished view = %q, want empty", m.View())
	}
	if _, cmd := m.Update(spinner.TickMsg{}); cmd != nil {
		t.Error("ticks after finish should stop")
	}
}

func TestSpinnerModel_WindowSizeTruncates(t *testing.T) {
	m := newSpinnerModel(strings.Repeat("x", 200), make(chan struct{}), time.Now)
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if m.width != 40 {
		t.Fatalf("width = %d", m.width)
	}
	if !strings.Contains(m.View(), "...") {
		t.Errorf("long label should be truncated: %q", m.View())
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"abcdefghij", 8, "abcde..."},
		{"abcdef", 3, "abc"},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeAuto, false},
		{"AUTO", ModeAuto, false},
		{" on ", ModeOn, false},
		{"off", ModeOff, false},
		{"yes", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseMode(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestMode_Enabled(t *testing.T) {
	if !ModeAuto.Enabled(true) || ModeAuto.Enabled(false) {
		t.Error("auto should follow the terminal")
	}
	if !ModeOn.Enabled(false) || ModeOff.Enabled(true) {
		t.Error("on/off should ignore the terminal")
	}
}
