// Package diag defines the diagnostic model shared by every stage of the
// report pipeline.
//
// # Purpose
//
//   - Decode the SwiftLint JSON reporter output into immutable Record values.
//   - Partition records into FileGroups with a deterministic presentation
//     order.
//   - Resolve the process outcome (exit status) from the number of records.
//
// # Scope
//
// Package diag does not perform any formatting, IO, CLI integration, or
// subprocess handling. Rendering lives in internal/diagfmt, acquisition of the
// JSON document lives in internal/source, and internal/driver wires the stages
// together.
//
// # Data model
//
// Record is the central value. It contains:
//
//   - File – the path the linter reported; the unit of grouping.
//   - Line, Column – optional 1-based positions (Pos). An absent position is
//     distinct from a zero one.
//   - Severity – closed enum (SevWarning, SevError) resolved once at decode
//     time. Unknown labels resolve to SevError.
//   - Message – the linter's reason text, kept verbatim.
//   - RuleID – optional rule identifier.
//
// FileGroup pairs a path with its records in arrival order. Group never drops
// or duplicates a record and never reorders records inside a file.
//
// Keep the model deterministic: identical input documents must always produce
// identical groups, independent of map iteration order or locale.
package diag
