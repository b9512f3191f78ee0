package diag

import "golang.org/x/text/cases"

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevWarning is for warning diagnostics.
	SevWarning Severity = iota + 1
	// SevError is for error diagnostics and for every label that is not a warning.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	}
	return "error"
}

var foldedWarning = cases.Fold().String("warning")

// ParseSeverity maps a linter severity label onto the closed Severity set.
// Only case variants of "warning" yield SevWarning; everything else, the empty
// string included, is SevError.
func ParseSeverity(label string) Severity {
	if cases.Fold().String(label) == foldedWarning {
		return SevWarning
	}
	return SevError
}
