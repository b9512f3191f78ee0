package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	// Color enables ANSI styling. Resolve it once per process (terminal
	// detection, config, NO_COLOR) and pass the result in.
	Color bool
}

// LineFallback is printed in place of an absent line number.
const LineFallback uint32 = 1

// SummaryGlyph prefixes the trailing problem count.
const SummaryGlyph = "✖"
