package diag

import (
	"slices"
	"strings"
)

// FileGroup holds the records reported for one file, in arrival order.
type FileGroup struct {
	File    string
	Records []Record
}

// Group partitions records by exact file path.
// Groups are ordered by byte-wise comparison of the path; records keep the
// order they had in the input. The input slice is not modified.
func Group(records []Record) []FileGroup {
	if len(records) == 0 {
		return nil
	}
	index := make(map[string]int)
	groups := make([]FileGroup, 0)
	for _, rec := range records {
		i, ok := index[rec.File]
		if !ok {
			i = len(groups)
			index[rec.File] = i
			groups = append(groups, FileGroup{File: rec.File})
		}
		groups[i].Records = append(groups[i].Records, rec)
	}
	slices.SortFunc(groups, func(a, b FileGroup) int {
		return strings.Compare(a.File, b.File)
	})
	return groups
}

// Summary aggregates counts over a grouped report.
type Summary struct {
	Total    int
	Warnings int
	Errors   int
	Files    int
}

// Summarize counts records per severity across all groups.
func Summarize(groups []FileGroup) Summary {
	s := Summary{Files: len(groups)}
	for _, g := range groups {
		for _, rec := range g.Records {
			s.Total++
			if rec.Severity == SevWarning {
				s.Warnings++
			} else {
				s.Errors++
			}
		}
	}
	return s
}

// HasErrors reports whether at least one record is an error.
func (s Summary) HasErrors() bool {
	return s.Errors > 0
}
