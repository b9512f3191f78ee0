package diag

// Process exit statuses.
const (
	ExitClean    = 0
	ExitProblems = 1
)

// Outcome is the exit contract derived from the number of diagnostics.
type Outcome struct {
	Total    int
	ExitCode int
}

// Resolve maps a diagnostic count onto an Outcome: any diagnostic fails the run.
func Resolve(total int) Outcome {
	if total > 0 {
		return Outcome{Total: total, ExitCode: ExitProblems}
	}
	return Outcome{Total: total, ExitCode: ExitClean}
}

// Failed reports whether the process must exit non-zero.
func (o Outcome) Failed() bool {
	return o.ExitCode != ExitClean
}
