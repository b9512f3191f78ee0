package diag_test

import (
	"fmt"
	"math/rand"
	"testing"

	"swizzy/internal/diag"
	"swizzy/internal/testkit"
)

func TestGroup_Invariants(t *testing.T) {
	files := []string{"Sources/App.swift", "Sources/Model.swift", "Tests/AppTests.swift", "Package.swift", "a", "A", "ä.swift"}
	rng := rand.New(rand.NewSource(7))

	for round := 0; round < 50; round++ {
		n := rng.Intn(40) + 1
		records := make([]diag.Record, 0, n)
		for i := 0; i < n; i++ {
			sev := diag.SevError
			if rng.Intn(2) == 0 {
				sev = diag.SevWarning
			}
			records = append(records, diag.Record{
				File:     files[rng.Intn(len(files))],
				Line:     diag.KnownPos(uint32(rng.Intn(500) + 1)),
				Severity: sev,
				Message:  fmt.Sprintf("issue %d", i),
			})
		}

		groups := diag.Group(records)
		if err := testkit.CheckGroupInvariants(records, groups); err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
		if got := diag.Summarize(groups).Total; got != len(records) {
			t.Fatalf("round %d: summary total %d, want %d", round, got, len(records))
		}
	}
}
