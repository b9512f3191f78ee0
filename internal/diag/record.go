package diag

import "strconv"

// Pos is an optional 1-based line or column number.
type Pos struct {
	Value uint32
	Known bool
}

// KnownPos returns a position that was present on the wire.
func KnownPos(v uint32) Pos {
	return Pos{Value: v, Known: true}
}

// Or returns the position value, or fallback when the position is absent.
func (p Pos) Or(fallback uint32) uint32 {
	if !p.Known {
		return fallback
	}
	return p.Value
}

func (p Pos) String() string {
	if !p.Known {
		return "-"
	}
	return strconv.FormatUint(uint64(p.Value), 10)
}

// Record is one lint finding.
type Record struct {
	File     string
	Line     Pos
	Column   Pos
	Severity Severity
	Message  string
	RuleID   string
}

// HasRule reports whether the linter named the rule that produced the record.
func (r Record) HasRule() bool {
	return r.RuleID != ""
}
