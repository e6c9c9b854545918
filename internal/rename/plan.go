// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rename

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/pdiddy/assignment-renamer/internal/fields"
	"github.com/pdiddy/assignment-renamer/internal/pdftext"
	"github.com/pdiddy/assignment-renamer/pkg/types"
)

// Plan extracts, parses, and names every PDF in paths, in order, without
// touching the filesystem. It returns the queued operations and the number
// of files skipped. Extraction errors are reported to w and treated as a
// page with no text.
func Plan(ex pdftext.Extractor, cfg types.RenameConfig, paths []string, w io.Writer) ([]types.RenameOperation, int) {
	counter := NewCounter()
	var ops []types.RenameOperation
	skipped := 0

	for _, p := range paths {
		name := filepath.Base(p)
		fmt.Fprintf(w, "processing: %s\n", name)

		text, err := ex.FirstPage(p)
		if err != nil {
			fmt.Fprintf(w, "  error reading %s: %v\n", name, err)
			text = ""
		}

		f := fields.Parse(text)
		if !f.Complete() {
			fmt.Fprintf(w, "  skipped: could not extract required information (assignment: %s, student: %s)\n\n",
				orNone(f.Assignment), orNone(f.Student))
			skipped++
			continue
		}

		student, ok := fields.FormatName(f.Student)
		if !ok {
			fmt.Fprintf(w, "  skipped: could not format student name\n\n")
			skipped++
			continue
		}

		target := counter.Target(BaseName(cfg, f.Assignment, student))
		ops = append(ops, types.RenameOperation{
			Source:     p,
			Target:     target,
			Assignment: f.Assignment,
			Student:    student,
		})
		fmt.Fprintf(w, "  planned: %s\n\n", target)
	}

	return ops, skipped
}

func orNone(s string) string {
	if s == "" {
		return "<none>"
	}
	return s
}
