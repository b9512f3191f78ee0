package ui

import (
	"fmt"
	"strings"
)

// Mode selects whether an interactive element is shown.
type Mode string

const (
	ModeAuto Mode = "auto"
	ModeOn   Mode = "on"
	ModeOff  Mode = "off"
)

// ParseMode accepts auto|on|off, case-insensitively. Empty means auto.
func ParseMode(value string) (Mode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return ModeAuto, nil
	case "on":
		return ModeOn, nil
	case "off":
		return ModeOff, nil
	default:
		return "", fmt.Errorf("invalid spinner value %q (expected auto|on|off)", value)
	}
}

// Enabled resolves the mode against whether the target is a terminal.
func (m Mode) Enabled(isTerminal bool) bool {
	switch m {
	case ModeOn:
		return true
	case ModeOff:
		return false
	default:
		return isTerminal
	}
}
