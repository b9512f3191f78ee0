package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type spinnerModel struct {
	label    string
	done     <-chan struct{}
	spinner  spinner.Model
	started  time.Time
	now      func() time.Time
	width    int
	finished bool
}

type doneMsg struct{}

// NewSpinnerModel returns a Bubble Tea model that shows a spinner next to
// label until done is closed. The final view is empty so nothing is left
// behind on the terminal.
func NewSpinnerModel(label string, done <-chan struct{}) tea.Model {
	return newSpinnerModel(label, done, time.Now)
}

func newSpinnerModel(label string, done <-chan struct{}, now func() time.Time) *spinnerModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	return &spinnerModel{
		label:   label,
		done:    done,
		spinner: sp,
		started: now(),
		now:     now,
		width:   80,
	}
}

func (m *spinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForDone())
}

func (m *spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		m.finished = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.finished {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	}
	return m, nil
}

func (m *spinnerModel) View() string {
	if m.finished {
		return ""
	}
	elapsed := m.now().Sub(m.started).Truncate(100 * time.Millisecond)
	suffix := fmt.Sprintf(" (%s)", elapsed)
	text := truncate(fmt.Sprintf("Running %s...", m.label), m.width-runewidth.StringWidth(suffix)-4)
	dim := lipgloss.NewStyle().Faint(true)
	return fmt.Sprintf("%s %s%s", m.spinner.View(), text, dim.Render(suffix))
}

func (m *spinnerModel) waitForDone() tea.Cmd {
	return func() tea.Msg {
		<-m.done
		return doneMsg{}
	}
}

// Spinner shows a spinner on a terminal while the linter runs.
type Spinner struct {
	Output io.Writer
}

// Wait blocks until done is closed.
func (s Spinner) Wait(label string, done <-chan struct{}) error {
	program := tea.NewProgram(
		NewSpinnerModel(label, done),
		tea.WithOutput(s.Output),
		tea.WithInput(nil),
	)
	_, err := program.Run()
	return err
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
