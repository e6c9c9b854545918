// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Fields holds the two values parsed from a submission's first page.
// An empty string means the field was not found.
type Fields struct {
	// Assignment is the normalized assignment id (e.g. "Homework3").
	Assignment string `json:"assignment" yaml:"assignment"`

	// Student is the raw name line that follows the "Student" label.
	Student string `json:"student" yaml:"student"`
}

// Complete reports whether both fields were found.
func (f Fields) Complete() bool {
	return f.Assignment != "" && f.Student != ""
}

// RenameOperation is one planned rename within a single folder.
type RenameOperation struct {
	// Source is the full path of the PDF as found in the folder.
	Source string `json:"source" yaml:"source"`

	// Target is the new filename (no directory component).
	Target string `json:"target" yaml:"target"`

	// Assignment is the assignment id the target was built from.
	Assignment string `json:"assignment" yaml:"assignment"`

	// Student is the formatted "Last, First Middle" name.
	Student string `json:"student" yaml:"student"`
}

// BatchResult holds the outcome of a rename run.
type BatchResult struct {
	// Found is the number of PDFs discovered in the folder.
	Found int

	// Skipped counts files dropped during planning.
	Skipped int

	// Planned is the number of queued rename operations.
	Planned int

	// Renamed counts operations that succeeded.
	Renamed int

	// Failed counts operations whose rename returned an error.
	Failed int
}

// HasFailures reports whether any planned rename failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}
