// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rename

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// pageText is the first page of a well-formed submission.
func pageText(homework, student string) string {
	return "BIOE 252 Fall\nHomework #" + homework + "\nDue: Friday\nStudent\n" + student + "\nScore\n"
}

// fakeExtractor returns canned first-page text or an error per file name.
type fakeExtractor struct {
	pages  map[string]string
	errors map[string]error
	calls  []string
}

func (f *fakeExtractor) FirstPage(path string) (string, error) {
	name := filepath.Base(path)
	f.calls = append(f.calls, name)
	if err, ok := f.errors[name]; ok {
		return "", err
	}
	if text, ok := f.pages[name]; ok {
		return text, nil
	}
	return "", errors.New("unexpected path: " + path)
}

// writePDFs creates placeholder files in a new temp dir and returns it.
func writePDFs(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("pdf "+name), 0o644))
	}
	return dir
}

// dirNames lists the entry names in dir.
func dirNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
