// Package manifest records what one generation run created.
package manifest

import "github.com/dshills/teamsgen/internal/artifact"

// EntryKind distinguishes directories from written artifacts.
type EntryKind string

const (
	EntryDir  EntryKind = "dir"
	EntryFile EntryKind = "file"
)

// Entry is one created directory or artifact. Paths are relative to the
// configured output root, slash-separated, in creation order.
type Entry struct {
	Path     string           `json:"path"`
	Kind     EntryKind        `json:"kind"`
	Artifact artifact.Kind    `json:"artifact,omitempty"`
	Outcome  artifact.Outcome `json:"outcome,omitempty"`
}

// Manifest is the top-level record of a run. It describes only what this run
// just wrote; it is never reconstructed by reading the filesystem back.
type Manifest struct {
	Tool    string  `json:"tool"`
	Version string  `json:"version"`
	Input   Input   `json:"input"`
	Summary Summary `json:"summary"`
	Entries []Entry `json:"entries"`
}

// Input captures the parameters used for this run.
type Input struct {
	ConfigFile string `json:"config_file"`
	Root       string `json:"root"`
	Project    string `json:"project"`
	Item       string `json:"item"`
	RunDate    string `json:"run_date"` // YYYY-MM-DD
	Plain      bool   `json:"plain"`
}

// Summary holds the entry counts for a run.
type Summary struct {
	DirCount         int `json:"dir_count"`
	RichCount        int `json:"rich_count"`
	DegradedCount    int `json:"degraded_count"`
	PlaceholderCount int `json:"placeholder_count"`
}

// FileCount returns the number of written files of any outcome.
func (s Summary) FileCount() int {
	return s.RichCount + s.DegradedCount + s.PlaceholderCount
}

// Summarize computes the per-outcome counts from all entries.
func Summarize(entries []Entry) Summary {
	var s Summary
	for _, e := range entries {
		switch {
		case e.Kind == EntryDir:
			s.DirCount++
		case e.Outcome == artifact.OutcomeRich:
			s.RichCount++
		case e.Outcome == artifact.OutcomeDegraded:
			s.DegradedCount++
		case e.Outcome == artifact.OutcomePlaceholder:
			s.PlaceholderCount++
		}
	}
	return s
}

// Paths returns every entry path in creation order, optionally filtered by kind.
func (m *Manifest) Paths(kind EntryKind) []string {
	out := make([]string, 0, len(m.Entries))
	for _, e := range m.Entries {
		if kind == "" || e.Kind == kind {
			out = append(out, e.Path)
		}
	}
	return out
}
