package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/redditlang/redditlang/internal/diag"
	"github.com/redditlang/redditlang/internal/parser"
	"github.com/redditlang/redditlang/internal/printer"
)

var fmtCheck bool

var fmtCmd = &cobra.Command{
	Use:   "fmt [file...]",
	Short: "Rewrite source files in canonical form",
	Long: `Formats RedditLang source files in place.

With no arguments the enclosing walter project's src/main.rl is formatted.
Files that fail to parse are reported and left untouched.`,
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().BoolVar(&fmtCheck, "check", false, "report files that would change without rewriting them; exit 1 if any would")
	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	files := args
	if len(files) == 0 {
		proj, err := currentProject()
		if err != nil {
			return err
		}
		files = []string{proj.MainFile()}
	}

	dirty := 0
	for _, path := range files {
		changed, err := formatFile(path)
		if err != nil {
			return err
		}
		if changed {
			dirty++
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
	}

	if fmtCheck && dirty > 0 {
		return fmt.Errorf("%d file(s) not in canonical form", dirty)
	}
	return nil
}

func formatFile(path string) (changed bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	src := string(data)

	prog, err := parser.Parse(src, parser.WithFilename(path))
	if err != nil {
		var synErr *parser.SyntaxError
		if errors.As(err, &synErr) {
			f := diag.NewFormatter()
			f.AddSource(path, src)
			f.Format(synErr.ToDiagnostic())
			return false, fmt.Errorf("parsing %s failed", path)
		}
		return false, err
	}

	formatted := printer.Print(prog)
	if formatted == src {
		return false, nil
	}
	if fmtCheck {
		return true, nil
	}

	if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
		return false, err
	}
	return true, nil
}
