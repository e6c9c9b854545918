// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/assignment-renamer/internal/pdftext"
	"github.com/pdiddy/assignment-renamer/internal/rename"
	"github.com/pdiddy/assignment-renamer/pkg/types"
)

const banner = "============================================================"

var renameCmd = &cobra.Command{
	Use:   "rename [folder]",
	Short: "Rename every PDF in a folder from its first-page header",
	Long: `Rename scans the PDFs directly inside folder (not subfolders). Every file
is read and named first; renames start only after the whole folder has been
planned. Files missing the assignment or the student name are skipped.

Without a folder argument the command prompts for one. Surrounding quotes
are removed, so a path pasted from a file manager works as-is.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRename,
}

func runRename(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg := types.RenameConfig{
		Course:   viper.GetString("course"),
		Term:     viper.GetString("term"),
		DryRun:   viper.GetBool("dry_run"),
		PlanFile: viper.GetString("plan_file"),
	}.WithDefaults()

	fmt.Fprintf(out, "%s\n%s Assignment PDF Renamer\n%s\n\n", banner, displayCourse(cfg.Course), banner)

	var folder string
	if len(args) == 1 {
		folder = cleanFolderInput(args[0])
	} else {
		var err error
		folder, err = promptFolder(cmd.InOrStdin(), out)
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	runner := rename.NewRunner(pdftext.NewPDFExtractor(), cfg)
	result, err := runner.Run(folder, out)
	if err != nil {
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d rename(s) failed", result.Failed)
	}
	return nil
}

// displayCourse spaces a course code between its subject letters and its
// number ("BIOE252" becomes "BIOE 252"). Codes without that shape are
// returned unchanged.
func displayCourse(course string) string {
	i := strings.IndexFunc(course, unicode.IsDigit)
	if i <= 0 || strings.IndexFunc(course[:i], func(r rune) bool { return !unicode.IsLetter(r) }) >= 0 {
		return course
	}
	return course[:i] + " " + course[i:]
}

// promptFolder asks for the folder path on w and reads one line from r.
func promptFolder(r io.Reader, w io.Writer) (string, error) {
	fmt.Fprint(w, "Enter the full path to the folder containing PDFs: ")
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading folder path: %w", err)
	}
	folder := cleanFolderInput(line)
	if folder == "" {
		return "", fmt.Errorf("no folder path given")
	}
	return folder, nil
}

// cleanFolderInput trims whitespace, then double quotes, then single quotes.
func cleanFolderInput(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"`)
	return strings.Trim(s, `'`)
}

func init() {
	renameCmd.Flags().String("course", types.DefaultCourse, "course code at the start of each new filename")
	renameCmd.Flags().String("term", types.DefaultTerm, "term that follows the course code")
	renameCmd.Flags().Bool("dry-run", false, "plan and report the new names without renaming")
	renameCmd.Flags().String("plan-file", "", "write the rename plan as YAML to this path before renaming")

	_ = viper.BindPFlag("course", renameCmd.Flags().Lookup("course"))
	_ = viper.BindPFlag("term", renameCmd.Flags().Lookup("term"))
	_ = viper.BindPFlag("dry_run", renameCmd.Flags().Lookup("dry-run"))
	_ = viper.BindPFlag("plan_file", renameCmd.Flags().Lookup("plan-file"))

	rootCmd.AddCommand(renameCmd)
}
