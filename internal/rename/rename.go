// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rename renames a folder of submitted PDFs to
// "<course>-<term>-<assignment>-<Last, First Middle>.pdf".
//
// A run has two phases. The plan phase reads every PDF and decides every
// target name. The apply phase then performs the renames in plan order.
// No file is renamed until every file has been planned.
package rename

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/assignment-renamer/internal/pdftext"
	"github.com/pdiddy/assignment-renamer/pkg/types"
)

var (
	// ErrFolderNotFound is returned when the folder does not exist.
	ErrFolderNotFound = errors.New("folder does not exist")
	// ErrNotDirectory is returned when the folder path is not a directory.
	ErrNotDirectory = errors.New("not a directory")
)

const rule = "============================================================"

// Runner carries the collaborators of a run.
type Runner struct {
	Extractor pdftext.Extractor
	Rename    RenameFunc
	Config    types.RenameConfig
}

// NewRunner creates a Runner that reads PDFs with ex and renames with
// SafeRename.
func NewRunner(ex pdftext.Extractor, cfg types.RenameConfig) *Runner {
	return &Runner{Extractor: ex, Rename: SafeRename, Config: cfg.WithDefaults()}
}

// Run plans and applies renames for the PDFs directly inside folder,
// printing progress to w. Only a missing or non-directory folder is an
// error; an empty folder or an empty plan is reported and returns a zero
// result. Per-file problems are reported and counted.
func (r *Runner) Run(folder string, w io.Writer) (types.BatchResult, error) {
	var result types.BatchResult

	paths, err := ListPDFs(folder)
	if err != nil {
		return result, err
	}
	result.Found = len(paths)
	if len(paths) == 0 {
		fmt.Fprintln(w, "No PDF files found in the specified folder.")
		return result, nil
	}
	fmt.Fprintf(w, "Found %d PDF file(s) to process.\n\n", len(paths))

	ops, skipped := Plan(r.Extractor, r.Config, paths, w)
	result.Skipped = skipped
	result.Planned = len(ops)
	if len(ops) == 0 {
		fmt.Fprintln(w, "No files to rename.")
		return result, nil
	}

	if r.Config.PlanFile != "" {
		if err := WritePlan(r.Config.PlanFile, folder, ops); err != nil {
			return result, err
		}
		fmt.Fprintf(w, "Plan written to %s\n\n", r.Config.PlanFile)
	}

	if r.Config.DryRun {
		fmt.Fprintf(w, "Batch summary: dry run, renamed 0/%d file(s).\n", len(ops))
		return result, nil
	}

	fmt.Fprintf(w, "%s\nStarting rename operations...\n%s\n\n", rule, rule)
	applied := Apply(ops, r.Rename, w)
	applied.Found = result.Found
	applied.Skipped = result.Skipped

	fmt.Fprintf(w, "%s\nBatch summary: renamed %d/%d file(s).\n%s\n", rule, applied.Renamed, applied.Planned, rule)
	return applied, nil
}

// ListPDFs returns the paths of the regular files directly inside folder
// whose names match *.pdf, in name order.
func ListPDFs(folder string) ([]string, error) {
	info, err := os.Stat(folder)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFolderNotFound, folder)
		}
		return nil, fmt.Errorf("checking folder %s: %w", folder, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, folder)
	}

	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("reading folder %s: %w", folder, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), pdfExt) {
			continue
		}
		paths = append(paths, filepath.Join(folder, e.Name()))
	}
	return paths, nil
}
