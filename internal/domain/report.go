package domain

import "time"

// Report summarizes a completed normalization run. It is written next to the
// output tree for the user; the tool itself never reads it back.
type Report struct {
	// GlobalMax is the normalization divisor used for the whole corpus.
	GlobalMax float64 `json:"global_max"`

	// Files is the number of files scaled and written.
	Files int `json:"files"`

	// Skipped lists relative paths excluded from the run under the skip
	// policy. Empty under the abort policy.
	Skipped []string `json:"skipped,omitempty"`

	// StartedAt and FinishedAt bound the run in wall-clock time.
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}
