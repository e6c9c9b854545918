// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rename

import (
	"strconv"

	"github.com/pdiddy/assignment-renamer/pkg/types"
)

const pdfExt = ".pdf"

// BaseName builds the target filename before any duplicate suffix:
// "<course>-<term>-<assignment>-<student>".
func BaseName(cfg types.RenameConfig, assignment, student string) string {
	return cfg.Course + "-" + cfg.Term + "-" + assignment + "-" + student
}

// Counter numbers repeated base names within one run. The first use of a
// base gets no suffix; later uses get a bare integer (2, 3, ...) placed
// directly before the extension.
type Counter struct {
	counts map[string]int
}

// NewCounter creates an empty Counter.
func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// Target records one more use of base and returns the filename for it.
func (c *Counter) Target(base string) string {
	c.counts[base]++
	n := c.counts[base]
	if n == 1 {
		return base + pdfExt
	}
	return base + strconv.Itoa(n) + pdfExt
}
