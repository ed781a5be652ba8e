package domain

import "time"

// SourceStats counts the outcome of processing one source database.
type SourceStats struct {
	Source    string `json:"source"`
	Processed int    `json:"processed"`
	Created   int    `json:"created"`
	Merged    int    `json:"merged"`
	Skipped   int    `json:"skipped"`
	Errors    int    `json:"errors"`
}

// RunStats is the end-of-run report for one pipeline execution.
type RunStats struct {
	RunID            string        `json:"run_id"`
	StartedAt        time.Time     `json:"started_at"`
	Elapsed          time.Duration `json:"elapsed"`
	Sources          []SourceStats `json:"sources"`
	TotalProcessed   int           `json:"total_processed"`
	TotalSkipped     int           `json:"total_skipped"`
	TotalErrors      int           `json:"total_errors"`
	DuplicatesMerged int           `json:"duplicates_merged"`
	FinalProfiles    int           `json:"final_profiles"`
	Written          int           `json:"written"`
}

// Add folds one source's counts into the run totals.
func (s *RunStats) Add(src SourceStats) {
	s.Sources = append(s.Sources, src)
	s.TotalProcessed += src.Processed
	s.TotalSkipped += src.Skipped
	s.TotalErrors += src.Errors
	s.DuplicatesMerged += src.Merged
}
