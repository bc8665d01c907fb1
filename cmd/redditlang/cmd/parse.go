package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/redditlang/redditlang/internal/ast"
	"github.com/redditlang/redditlang/internal/diag"
	"github.com/redditlang/redditlang/internal/parser"
)

var parseSpans bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a source file and dump its syntax tree",
	Long: `Parses a RedditLang source file and prints its syntax tree.

With no argument the enclosing walter project's src/main.rl is parsed.
Syntax errors are rendered with a source excerpt and exit with status 1.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseSpans, "spans", false, "include line:column spans in the dump")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	path, err := sourceArg(args)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	src := string(data)

	prog, err := parser.Parse(src, parser.WithFilename(path))
	if err != nil {
		var synErr *parser.SyntaxError
		if errors.As(err, &synErr) {
			f := diag.NewFormatter()
			f.AddSource(path, src)
			f.Format(synErr.ToDiagnostic())
			return fmt.Errorf("parsing %s failed", path)
		}
		return err
	}

	dumpNode(cmd.OutOrStdout(), prog)
	return nil
}

// sourceArg resolves the file to operate on: the explicit argument if given,
// otherwise the enclosing project's entry file.
func sourceArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	proj, err := currentProject()
	if err != nil {
		return "", err
	}
	return proj.MainFile(), nil
}

// dumpNode prints an indented one-node-per-line rendering of the tree.
func dumpNode(out io.Writer, root ast.Node) {
	var b strings.Builder
	writeTree(&b, root, 0)
	io.WriteString(out, b.String())
}

func writeTree(b *strings.Builder, n ast.Node, depth int) {
	if n == nil {
		return
	}

	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(describe(n))
	if parseSpans {
		span := n.Span()
		fmt.Fprintf(b, " @ %d:%d", span.Line, span.Column)
	}
	b.WriteByte('\n')

	for _, child := range children(n) {
		writeTree(b, child, depth+1)
	}
}

func describe(n ast.Node) string {
	switch x := n.(type) {
	case *ast.Program:
		return fmt.Sprintf("Program (%d statements)", len(x.Stmts))
	case *ast.Block:
		return fmt.Sprintf("Block (%d statements)", len(x.Stmts))
	case *ast.Ident:
		return "Ident " + x.Name
	case *ast.Type:
		s := "Type " + x.Name.Name
		if x.IsArray {
			s += "[]"
		}
		return s
	case *ast.Declaration:
		return "Declaration " + x.Name.Name
	case *ast.LoopStmt:
		return "Loop"
	case *ast.BreakStmt:
		return "Break"
	case *ast.FunctionStmt:
		return "Function " + x.Decl.Name.Name + modifierSuffix(x.Modifiers)
	case *ast.CallStmt:
		return "CallStmt"
	case *ast.TryCatchStmt:
		if x.CatchName != nil {
			return "TryCatch (catch " + x.CatchName.Name + ")"
		}
		return "TryCatch"
	case *ast.ThrowStmt:
		return "Throw"
	case *ast.ImportStmt:
		return fmt.Sprintf("Import %q", x.Path.Value)
	case *ast.ModuleStmt:
		return "Module r/" + x.Name.Name
	case *ast.VariableStmt:
		return "Variable " + x.Decl.Name.Name + modifierSuffix(x.Modifiers)
	case *ast.AssignStmt:
		return "Assign " + x.Name.Name
	case *ast.IfStmt:
		return "If"
	case *ast.ElseIf:
		return "ElseIf"
	case *ast.ClassStmt:
		return "Class " + x.Name.Name
	case *ast.ReturnStmt:
		return "Return"
	case *ast.ConditionalExpr:
		return "ConditionalExpr " + condOps(x.Ops)
	case *ast.BinaryExpr:
		return "BinaryExpr " + mathOps(x.Ops)
	case *ast.IndexExpr:
		return "Index"
	case *ast.CallExpr:
		return "Call " + x.Name.Name
	case *ast.NumberLit:
		return "Number " + x.Text
	case *ast.StringLit:
		return fmt.Sprintf("String %q", x.Value)
	case *ast.FooleanLit:
		return "Foolean " + x.Value.String()
	case *ast.BooleanLit:
		if x.Value {
			return "Boolean Yup"
		}
		return "Boolean Nope"
	case *ast.NullLit:
		return "Null"
	default:
		return fmt.Sprintf("%T", n)
	}
}

func modifierSuffix(mods []ast.Modifier) string {
	if len(mods) == 0 {
		return ""
	}
	parts := make([]string, len(mods))
	for i, m := range mods {
		parts[i] = string(m)
	}
	return " [" + strings.Join(parts, " ") + "]"
}

func condOps(ops []ast.ConditionalOp) string {
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = string(op)
	}
	return strings.Join(parts, " ")
}

func mathOps(ops []ast.MathOp) string {
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = string(op)
	}
	return strings.Join(parts, " ")
}

// children lists a node's direct structural children in source order.
func children(n ast.Node) []ast.Node {
	var out []ast.Node
	add := func(c ast.Node) {
		out = append(out, c)
	}

	switch x := n.(type) {
	case *ast.Program:
		for _, s := range x.Stmts {
			add(s)
		}
	case *ast.Block:
		for _, s := range x.Stmts {
			add(s)
		}
	case *ast.Declaration:
		if x.Type != nil {
			add(x.Type)
		}
	case *ast.LoopStmt:
		add(x.Body)
	case *ast.FunctionStmt:
		add(x.Decl)
		for _, a := range x.Args {
			add(a)
		}
		add(x.Body)
	case *ast.CallStmt:
		add(x.Call)
	case *ast.TryCatchStmt:
		add(x.Try)
		add(x.Catch)
	case *ast.ThrowStmt:
		add(x.Value)
	case *ast.VariableStmt:
		add(x.Decl)
		add(x.Value)
	case *ast.AssignStmt:
		add(x.Value)
	case *ast.IfStmt:
		add(x.Cond)
		add(x.Body)
		for _, e := range x.ElseIfs {
			add(e)
		}
		if x.Else != nil {
			add(x.Else)
		}
	case *ast.ElseIf:
		add(x.Cond)
		add(x.Body)
	case *ast.ClassStmt:
		add(x.Body)
	case *ast.ReturnStmt:
		add(x.Value)
	case *ast.ConditionalExpr:
		for _, t := range x.Terms {
			add(t)
		}
	case *ast.BinaryExpr:
		for _, t := range x.Terms {
			add(t)
		}
	case *ast.IndexExpr:
		add(x.Target)
		add(x.Index)
	case *ast.CallExpr:
		for _, a := range x.Args {
			add(a)
		}
	}

	return out
}
