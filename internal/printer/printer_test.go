package printer_test

import (
	"testing"

	"github.com/redditlang/redditlang/internal/parser"
	"github.com/redditlang/redditlang/internal/printer"
)

func canonical(t *testing.T, src string) string {
	t.Helper()

	prog, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("parse failed: %s", err)
	}
	return printer.Print(prog)
}

func TestPrintCanonical(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"meth   x   ∑   5", "meth x ∑ 5\n"},
		{"x∑5", "x ∑ 5\n"},
		{"meth x damn Number[] ∑ 5", "meth x damn Number[] ∑ 5\n"},
		{"bar meth x ∑ 5", "bar meth x ∑ 5\n"},
		{"sthu", "sthu\n"},
		{"repeatdatshid {}", "repeatdatshid {}\n"},
		{"repeatdatshid {\nsthu\n}", "repeatdatshid {\n  sthu\n}\n"},
		{"shoot \"boom\"", "shoot \"boom\"\n"},
		{"weneed 'std/io'", "weneed \"std/io\"\n"},
		{"subreddit r/foo", "subreddit r/foo\n"},
		{"spez a⨋b*c", "spez a ⨋ b * c\n"},
		{"meth x ∑ (a ⨋ b) * c", "meth x ∑ (a ⨋ b) * c\n"},
		{"meth x ∑ xs[0]", "meth x ∑ xs[0]\n"},
		{"meth x ∑ xs[\"key\"]", "meth x ∑ xs[\"key\"]\n"},
		{"meth x ∑ Dunno", "meth x ∑ Dunno\n"},
		{"meth x ∑ wat", "meth x ∑ wat\n"},
		{"meth x ∑ ¡5", "meth x ∑ ¡5\n"},
		{"call f", "call f\n"},
		{"call f(1,2,)", "call f(1, 2,)\n"},
		{"test {} wall {}", "test {} wall {}\n"},
		{"test {} wall e {}", "test {} wall e {}\n"},
		{"is x {} but y {} isnt {}", "is x {} but y {} isnt {}\n"},
		{"school C {}", "school C {}\n"},
		{
			"callmeonmycellphone add(a damn Number,b,) {\nspez a⨋b\n}",
			"callmeonmycellphone add(a damn Number, b,) {\n  spez a ⨋ b\n}\n",
		},
		{"", ""},
	}

	for _, tt := range tests {
		got := canonical(t, tt.src)
		if got != tt.want {
			t.Fatalf("source %q:\nexpected %q\ngot      %q", tt.src, tt.want, got)
		}
	}
}

func TestPrintStringEscapes(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`shoot "a\"b"`, "shoot \"a\\\"b\"\n"},
		{`shoot "a\u0027b"`, "shoot \"a\\u0027b\"\n"}, // apostrophes stay escaped
		{`shoot "a\\b"`, "shoot \"a\\\\b\"\n"},
		{`shoot "a\nb"`, "shoot \"a\\nb\"\n"},
		{`shoot "a\tb"`, "shoot \"a\\tb\"\n"},
		{"shoot \"raw\nnewline\"", "shoot \"raw\\nnewline\"\n"},
		{`shoot 'single'`, "shoot \"single\"\n"},
	}

	for _, tt := range tests {
		got := canonical(t, tt.src)
		if got != tt.want {
			t.Fatalf("source %q:\nexpected %q\ngot      %q", tt.src, tt.want, got)
		}
	}
}

// Printing is a fixed point: formatting already-formatted source changes
// nothing, and the canonical text parses to a tree that prints identically.
func TestPrintIdempotent(t *testing.T) {
	sources := []string{
		"meth x ∑ 5",
		"x ∑ a ⨋ b * c ¡ d",
		"is x ⅀ 1 {\nsthu\n} but x ⅀ 2 {} isnt {\nshoot \"no\"\n}",
		"callmeonmycellphone f(a, b damn String,) {\nspez a\n}",
		"school Dog {\nmeth legs ∑ 4\ncallmeonmycellphone bark() {\ncall print(\"woof\",)\n}\n}",
		"test {\ncall f\n} wall e {\nshoot e\n}",
		"subreddit r/mod\nweneed \"std/io\"\nrepeatdatshid {\nis done {\nsthu\n}\n}",
		"meth s ∑ \"it\\u0027s \\\"quoted\\\"\"",
		"meth x ∑ (a ⨋ b) * (c ≠ d)",
	}

	for _, src := range sources {
		first := canonical(t, src)
		second := canonical(t, first)
		if first != second {
			t.Fatalf("source %q not idempotent:\nfirst  %q\nsecond %q", src, first, second)
		}
	}
}
