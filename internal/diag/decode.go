package diag

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"fortio.org/safecast"
)

// ErrMalformedInput marks every decode failure; match it with errors.Is.
var ErrMalformedInput = errors.New("malformed lint JSON")

// DecodeError describes why a document could not be decoded.
type DecodeError struct {
	Index int    // element index, -1 for document-level failures
	Field string // offending field, empty for syntax errors
	Err   error
}

func (e *DecodeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch {
	case e.Index < 0:
		return fmt.Sprintf("%v: %v", ErrMalformedInput, e.Err)
	case e.Field == "":
		return fmt.Sprintf("%v: element %d: %v", ErrMalformedInput, e.Index, e.Err)
	default:
		return fmt.Sprintf("%v: element %d: field %q: %v", ErrMalformedInput, e.Index, e.Field, e.Err)
	}
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is makes every DecodeError match ErrMalformedInput.
func (e *DecodeError) Is(target error) bool { return target == ErrMalformedInput }

var (
	errMissing = errors.New("missing required field")
	errEmpty   = errors.New("must not be empty")
)

// wireRecord mirrors one element of `swiftlint lint --reporter json`.
// Pointers keep absent fields distinguishable from zero values.
type wireRecord struct {
	File      *string `json:"file"`
	Line      *int64  `json:"line"`
	Character *int64  `json:"character"`
	Column    *int64  `json:"column"`
	Severity  *string `json:"severity"`
	Reason    *string `json:"reason"`
	Message   *string `json:"message"`
	RuleID    *string `json:"rule_id"`
	RuleIDAlt *string `json:"ruleId"`
}

// Decode parses a lint JSON document.
// Blank input and an empty array both yield zero records and no error.
func Decode(data []byte) ([]Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] != '[' {
		return nil, &DecodeError{Index: -1, Err: errors.New("expected a JSON array of diagnostics")}
	}

	var wire []wireRecord
	if err := json.Unmarshal(trimmed, &wire); err != nil {
		return nil, &DecodeError{Index: -1, Err: err}
	}

	records := make([]Record, 0, len(wire))
	for i := range wire {
		rec, err := wire[i].record(i)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (w *wireRecord) record(idx int) (Record, error) {
	if w.File == nil {
		return Record{}, &DecodeError{Index: idx, Field: "file", Err: errMissing}
	}
	if *w.File == "" {
		return Record{}, &DecodeError{Index: idx, Field: "file", Err: errEmpty}
	}
	if w.Severity == nil {
		return Record{}, &DecodeError{Index: idx, Field: "severity", Err: errMissing}
	}
	message := firstString(w.Reason, w.Message)
	if message == nil {
		return Record{}, &DecodeError{Index: idx, Field: "reason", Err: errMissing}
	}

	line, err := toPos(w.Line)
	if err != nil {
		return Record{}, &DecodeError{Index: idx, Field: "line", Err: err}
	}
	colField := "character"
	colRaw := w.Character
	if colRaw == nil {
		colField = "column"
		colRaw = w.Column
	}
	col, err := toPos(colRaw)
	if err != nil {
		return Record{}, &DecodeError{Index: idx, Field: colField, Err: err}
	}

	rec := Record{
		File:     *w.File,
		Line:     line,
		Column:   col,
		Severity: ParseSeverity(*w.Severity),
		Message:  *message,
	}
	if rule := firstString(w.RuleID, w.RuleIDAlt); rule != nil {
		rec.RuleID = *rule
	}
	return rec, nil
}

func toPos(v *int64) (Pos, error) {
	if v == nil {
		return Pos{}, nil
	}
	n, err := safecast.Conv[uint32](*v)
	if err != nil {
		return Pos{}, fmt.Errorf("position %d out of range: %w", *v, err)
	}
	return KnownPos(n), nil
}

func firstString(candidates ...*string) *string {
	for _, c := range candidates {
		if c != nil {
			return c
		}
	}
	return nil
}
