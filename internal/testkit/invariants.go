package testkit

import (
	"fmt"

	"swizzy/internal/diag"
)

// CheckGroupInvariants verifies that groups is a faithful partition of records:
// 1) every record appears exactly once, in the group named by its file
// 2) groups are strictly ascending by byte-wise path comparison
// 3) inside a group, records keep their relative input order
func CheckGroupInvariants(records []diag.Record, groups []diag.FileGroup) error {
	// 2) ordering and uniqueness of group keys
	for i := 1; i < len(groups); i++ {
		if groups[i-1].File >= groups[i].File {
			return fmt.Errorf("groups out of order at %d: %q >= %q", i, groups[i-1].File, groups[i].File)
		}
	}

	// 1) lossless; 3) stable
	want := make(map[string][]diag.Record)
	for _, r := range records {
		want[r.File] = append(want[r.File], r)
	}
	total := 0
	for _, g := range groups {
		expected, ok := want[g.File]
		if !ok {
			return fmt.Errorf("group %q has no input records", g.File)
		}
		if len(expected) != len(g.Records) {
			return fmt.Errorf("group %q: got %d records, want %d", g.File, len(g.Records), len(expected))
		}
		for i := range expected {
			if g.Records[i] != expected[i] {
				return fmt.Errorf("group %q: record %d = %+v, want %+v", g.File, i, g.Records[i], expected[i])
			}
		}
		total += len(g.Records)
		delete(want, g.File)
	}
	if len(want) != 0 {
		return fmt.Errorf("%d files missing from groups", len(want))
	}
	if total != len(records) {
		return fmt.Errorf("grouped %d records, want %d", total, len(records))
	}
	return nil
}
