package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/redditlang/redditlang/internal/project"
)

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a new walter project",
	Long: `Creates a directory with a walter.yml manifest and a hello-world
src/main.rl.`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	name := args[0]
	dir := filepath.Clean(name)

	proj, err := project.Scaffold(dir, filepath.Base(dir))
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created project %s in %s\n", proj.Config.Name, proj.Root)
	return nil
}
