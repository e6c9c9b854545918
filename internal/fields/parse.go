// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fields pulls the assignment id and student name out of a
// submission's first-page text and normalizes the name for filenames.
package fields

import (
	"regexp"
	"strings"

	"github.com/pdiddy/assignment-renamer/pkg/types"
)

const (
	assignmentPrefix = "Homework"
	studentLabel     = "student"
)

// homeworkPattern accepts Unicode spacing (e.g. no-break space) around "#"
// and any decimal digits for the number.
var homeworkPattern = regexp.MustCompile(`(?i)Homework[\pZ\s\v]*#?[\pZ\s\v]*(\p{Nd}+)`)

// Parse scans the non-blank, trimmed lines of text. The assignment id comes
// from the first line containing both "Homework" and "#" whose text matches
// homeworkPattern; the student name is the line after the first line that
// reads "student" (any case). Missing fields are left empty.
func Parse(text string) types.Fields {
	lines := nonBlankLines(text)
	return types.Fields{
		Assignment: findAssignment(lines),
		Student:    findStudent(lines),
	}
}

func findAssignment(lines []string) string {
	for _, line := range lines {
		if !strings.Contains(line, assignmentPrefix) || !strings.Contains(line, "#") {
			continue
		}
		if m := homeworkPattern.FindStringSubmatch(line); m != nil {
			return assignmentPrefix + m[1]
		}
	}
	return ""
}

func findStudent(lines []string) string {
	for i, line := range lines {
		if strings.ToLower(line) == studentLabel && i+1 < len(lines) {
			return lines[i+1]
		}
	}
	return ""
}

// nonBlankLines splits text on newlines, trims each line, and drops the
// empty ones.
func nonBlankLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
