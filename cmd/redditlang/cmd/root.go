package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/redditlang/redditlang/internal/project"
)

var rootCmd = &cobra.Command{
	Use:   "redditlang",
	Short: "The RedditLang language front-end",
	Long: `redditlang is the front-end toolchain for RedditLang.

Commands:
  parse  - parse a source file and dump its syntax tree
  fmt    - rewrite source files in canonical form
  repl   - read-parse-print loop
  new    - create a new walter project`,

	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	return err
}

// currentProject resolves the enclosing walter project from the working
// directory. Commands that accept explicit file arguments only fall back to
// this when no argument is given.
func currentProject() (*project.Project, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return project.Find(wd)
}
