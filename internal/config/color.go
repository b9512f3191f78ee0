package config

import (
	"fmt"
	"strings"
)

// ColorMode selects whether the report may be styled. No mode can style a
// report that is not going to a terminal.
type ColorMode string

const (
	ColorAuto  ColorMode = "auto"
	ColorNever ColorMode = "never"
)

// ParseColorMode accepts auto|never, case-insensitively.
func ParseColorMode(value string) (ColorMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return ColorAuto, nil
	case "never":
		return ColorNever, nil
	default:
		return "", fmt.Errorf("invalid color value %q (expected auto|never)", value)
	}
}

// Enabled resolves the mode once for the process. Styling requires a
// terminal; never and a non-empty NO_COLOR turn it off.
func (m ColorMode) Enabled(isTerminal bool, getenv func(string) string) bool {
	if !isTerminal || m == ColorNever {
		return false
	}
	if getenv != nil && getenv("NO_COLOR") != "" {
		return false
	}
	return true
}
