package diag

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Formatter renders diagnostics with source excerpts and caret underlines.
type Formatter struct {
	out         io.Writer
	sourceCache map[string]string
}

// NewFormatter creates a formatter writing to stderr.
func NewFormatter() *Formatter {
	return &Formatter{
		out:         os.Stderr,
		sourceCache: make(map[string]string),
	}
}

// NewFormatterTo creates a formatter writing to the given writer.
func NewFormatterTo(out io.Writer) *Formatter {
	return &Formatter{
		out:         out,
		sourceCache: make(map[string]string),
	}
}

// AddSource registers source text for a filename so excerpts can be rendered
// without touching the filesystem. The REPL and tests use this.
func (f *Formatter) AddSource(filename, src string) {
	f.sourceCache[filename] = src
}

// LoadSource returns the source for a filename, reading and caching it.
func (f *Formatter) LoadSource(filename string) (string, error) {
	if filename == "" {
		return "", nil
	}
	if src, ok := f.sourceCache[filename]; ok {
		return src, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	src := string(data)
	f.sourceCache[filename] = src
	return src, nil
}

// Format renders a diagnostic. When the source line is available the output
// looks like:
//
//	error[PARSER_EXPECTED_TOKEN]: expected '}' to close block
//	  --> main.rl:3:1
//	   |
//	 3 | meth x ∑ 5
//	   | ^
func (f *Formatter) Format(d Diagnostic) {
	f.printHeader(d)

	if !d.Span.IsValid() {
		f.printFooter(d)
		return
	}

	src, err := f.LoadSource(d.Span.Filename)
	if err != nil || src == "" {
		fmt.Fprintf(f.out, "  --> %s\n", d.Span.String())
		f.printFooter(d)
		return
	}

	f.printExcerpt(src, d.Span)
	f.printFooter(d)
}

func (f *Formatter) printHeader(d Diagnostic) {
	severity := string(d.Severity)
	if severity == "" {
		severity = "error"
	}

	if d.Code != "" {
		fmt.Fprintf(f.out, "%s[%s]: %s\n", severity, d.Code, d.Message)
	} else {
		fmt.Fprintf(f.out, "%s: %s\n", severity, d.Message)
	}
}

func (f *Formatter) printExcerpt(src string, span Span) {
	lines := strings.Split(src, "\n")
	if span.Line < 1 || span.Line > len(lines) {
		fmt.Fprintf(f.out, "  --> %s\n", span.String())
		return
	}

	lineContent := lines[span.Line-1]
	lineNum := fmt.Sprintf("%d", span.Line)
	gutter := strings.Repeat(" ", len(lineNum))

	fmt.Fprintf(f.out, "  --> %s\n", span.String())
	fmt.Fprintf(f.out, " %s |\n", gutter)
	fmt.Fprintf(f.out, " %s | %s\n", lineNum, lineContent)

	width := span.End - span.Start
	if width < 1 {
		width = 1
	}
	lineRunes := len([]rune(lineContent))
	col := span.Column - 1
	if col > lineRunes {
		col = lineRunes
	}
	if col+width > lineRunes+1 {
		width = lineRunes + 1 - col
		if width < 1 {
			width = 1
		}
	}

	fmt.Fprintf(f.out, " %s | %s%s\n", gutter, strings.Repeat(" ", col), strings.Repeat("^", width))
}

func (f *Formatter) printFooter(d Diagnostic) {
	for _, note := range d.Notes {
		fmt.Fprintf(f.out, "  = note: %s\n", note)
	}
	if d.Help != "" {
		fmt.Fprintf(f.out, "help: %s\n", d.Help)
	}
}
