package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/redditlang/redditlang/internal/diag"
	"github.com/redditlang/redditlang/internal/parser"
	"github.com/redditlang/redditlang/internal/printer"
)

const (
	historyFile = ".redditlang_history"
	promptMain  = "r/> "
	promptCont  = "... "
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read-parse-print loop",
	Long: `Starts an interactive session. Each entry is parsed and echoed back
in canonical form; incomplete input (an unclosed block) continues on the
next line. Type :quit or press Ctrl-D to exit.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	fmt.Println("RedditLang repl. :quit to exit.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	formatter := diag.NewFormatter()

	for {
		src, ok := readByParseProbe(ln)
		if !ok {
			fmt.Println()
			return nil
		}

		trimmed := strings.TrimSpace(src)
		if trimmed == "" {
			continue
		}
		if trimmed == ":quit" {
			return nil
		}

		prog, err := parser.Parse(src, parser.WithFilename("repl"))
		if err != nil {
			var synErr *parser.SyntaxError
			if errors.As(err, &synErr) {
				formatter.AddSource("repl", src)
				formatter.Format(synErr.ToDiagnostic())
			} else {
				fmt.Fprintln(os.Stderr, err)
			}
			continue
		}

		fmt.Print(printer.Print(prog))
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
	}
}

// readByParseProbe collects lines until the buffer parses, or fails with an
// error that is not an at-end-of-input continuation.
func readByParseProbe(ln *liner.State) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(promptMain)
		} else {
			line, err = ln.Prompt(promptCont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if _, err := parser.Parse(src); err == nil {
			return src, true
		} else if parser.IsIncomplete(err) {
			continue
		}
		return src, true
	}
}
