package source

type (
	// Origin tells where a Document came from.
	Origin uint8
	// DocFlags encodes normalisation applied to a Document.
	DocFlags uint8
)

const (
	// OriginStdin means the document was piped in.
	OriginStdin Origin = iota + 1
	// OriginLinter means the document is the captured stdout of the linter.
	OriginLinter
)

func (o Origin) String() string {
	switch o {
	case OriginStdin:
		return "stdin"
	case OriginLinter:
		return "linter"
	}
	return "unknown"
}

const (
	// DocHadBOM indicates a leading UTF-8 byte order mark was removed.
	DocHadBOM DocFlags = 1 << iota
)

// Document is the raw JSON blob handed to the decoder.
type Document struct {
	Origin Origin
	Data   []byte
	Flags  DocFlags
	Run    *LinterRun // set when Origin == OriginLinter
}

// LinterRun captures one linter invocation. A non-zero ExitCode is not an
// error: Stdout is still used as best-effort input.
type LinterRun struct {
	Command  string
	Args     []string
	ExitCode int
	Stdout   []byte
	Stderr   string
}

// Failed reports whether the linter exited with a non-zero status.
func (r LinterRun) Failed() bool {
	return r.ExitCode != 0
}
