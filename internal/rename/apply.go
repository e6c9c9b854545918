// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rename

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/assignment-renamer/pkg/types"
)

// ErrUnsafeTarget is reported when a planned target is not a bare file name,
// for example when the student line contains path separators or "..".
var ErrUnsafeTarget = errors.New("target is not a plain file name")

// RenameFunc moves oldpath to newpath. os.Rename satisfies it.
type RenameFunc func(oldpath, newpath string) error

// Apply performs ops in order within each source's directory. A failed
// rename is reported to w and does not stop later operations; earlier
// renames are never undone.
func Apply(ops []types.RenameOperation, rename RenameFunc, w io.Writer) types.BatchResult {
	result := types.BatchResult{Planned: len(ops)}
	for _, op := range ops {
		oldName := filepath.Base(op.Source)
		if err := checkTarget(op.Target); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n\n", oldName, err)
			result.Failed++
			continue
		}

		newPath := filepath.Join(filepath.Dir(op.Source), op.Target)
		if err := rename(op.Source, newPath); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n\n", oldName, err)
			result.Failed++
			continue
		}
		fmt.Fprintf(w, "renamed: %s\n     to: %s\n\n", oldName, op.Target)
		result.Renamed++
	}
	return result
}

// checkTarget rejects targets that would leave the source's directory.
func checkTarget(target string) error {
	if target == "" || target == "." || target == ".." || filepath.Base(target) != target || strings.ContainsAny(target, `/\`) {
		return fmt.Errorf("%w: %q", ErrUnsafeTarget, target)
	}
	return nil
}

// SafeRename renames oldpath to newpath but refuses to replace a different
// existing file. Renaming a file onto itself succeeds without touching it.
func SafeRename(oldpath, newpath string) error {
	if oldpath == newpath {
		return nil
	}
	if dst, err := os.Lstat(newpath); err == nil {
		src, serr := os.Lstat(oldpath)
		if serr != nil {
			return serr
		}
		if !os.SameFile(src, dst) {
			return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: fs.ErrExist}
		}
	}
	return os.Rename(oldpath, newpath)
}
