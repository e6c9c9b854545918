// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/assignment-renamer/internal/fields"
	"github.com/pdiddy/assignment-renamer/pkg/types"
)

// writeHeaderPDF renders each line as its own text line on page 1, followed
// by a second page, and returns the file path.
func writeHeaderPDF(t *testing.T, lines ...string) string {
	t.Helper()
	doc := fpdf.New("P", "mm", "Letter", "")
	doc.AddPage()
	doc.SetFont("Helvetica", "", 12)
	for _, line := range lines {
		doc.Cell(0, 10, line)
		doc.Ln(10)
	}
	doc.AddPage()
	doc.Cell(0, 10, "Problem 1")

	path := filepath.Join(t.TempDir(), "submission.pdf")
	require.NoError(t, doc.OutputFileAndClose(path))
	return path
}

// writeEmptyPDF writes a structurally valid PDF whose page tree has no pages.
func writeEmptyPDF(t *testing.T) string {
	t.Helper()
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [] /Count 0 >>",
	}

	var b bytes.Buffer
	b.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n", len(objects)+1)
	b.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&b, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	path := filepath.Join(t.TempDir(), "empty-pages.pdf")
	require.NoError(t, os.WriteFile(path, b.Bytes(), 0o644))
	return path
}

// textLines returns the trimmed, non-blank lines of text.
func textLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func TestFirstPage(t *testing.T) {
	header := []string{"BIOE 252 Fall", "Homework #3", "Student", "Jane Q Public"}

	tests := []struct {
		name      string
		setup     func(t *testing.T) string
		wantLines []string
	}{
		{
			name:      "header page keeps one line per text line",
			setup:     func(t *testing.T) string { return writeHeaderPDF(t, header...) },
			wantLines: header,
		},
		{
			name:  "document without pages",
			setup: writeEmptyPDF,
		},
	}

	ex := NewPDFExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := ex.FirstPage(tt.setup(t))
			require.NoError(t, err)
			assert.Equal(t, tt.wantLines, textLines(text))
			if tt.wantLines == nil {
				assert.Equal(t, "", text)
			}
		})
	}
}

func TestFirstPage_FeedsFieldParser(t *testing.T) {
	path := writeHeaderPDF(t, "BIOE 252 Fall", "Homework #3", "Due Friday", "Student", "Jane Q Public", "Score")

	text, err := NewPDFExtractor().FirstPage(path)
	require.NoError(t, err)
	assert.NotContains(t, text, "Problem 1")
	assert.Equal(t, types.Fields{Assignment: "Homework3", Student: "Jane Q Public"}, fields.Parse(text))
}

func TestFirstPage_Failures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
	}{
		{
			name: "missing file",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "absent.pdf")
			},
		},
		{
			name: "not a PDF",
			setup: func(t *testing.T) string {
				p := filepath.Join(t.TempDir(), "notes.pdf")
				require.NoError(t, os.WriteFile(p, []byte("just some text, no PDF header"), 0o644))
				return p
			},
		},
		{
			name: "truncated PDF header",
			setup: func(t *testing.T) string {
				p := filepath.Join(t.TempDir(), "broken.pdf")
				require.NoError(t, os.WriteFile(p, []byte("%PDF-1.4\n1 0 obj\n<<"), 0o644))
				return p
			},
		},
		{
			name: "empty file",
			setup: func(t *testing.T) string {
				p := filepath.Join(t.TempDir(), "empty.pdf")
				require.NoError(t, os.WriteFile(p, nil, 0o644))
				return p
			},
		},
	}

	ex := NewPDFExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := ex.FirstPage(tt.setup(t))
			assert.Error(t, err)
			assert.Empty(t, text)
		})
	}
}
