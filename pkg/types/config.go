// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

const (
	// DefaultCourse is the course code prefixed to every renamed file.
	DefaultCourse = "BIOE252"

	// DefaultTerm is the term segment that follows the course code.
	DefaultTerm = "Fall"
)

// RenameConfig holds settings for a rename run.
type RenameConfig struct {
	// Course is the leading segment of the target filename (default BIOE252).
	Course string `json:"course" yaml:"course"`

	// Term is the segment following the course (default Fall).
	Term string `json:"term" yaml:"term"`

	// DryRun stops after the plan phase; no file is renamed.
	DryRun bool `json:"dry_run" yaml:"dry_run"`

	// PlanFile, when set, receives the ordered plan as YAML before any
	// rename is applied.
	PlanFile string `json:"plan_file,omitempty" yaml:"plan_file,omitempty"`
}

// WithDefaults returns a copy of c with empty Course and Term filled in.
func (c RenameConfig) WithDefaults() RenameConfig {
	if c.Course == "" {
		c.Course = DefaultCourse
	}
	if c.Term == "" {
		c.Term = DefaultTerm
	}
	return c
}
