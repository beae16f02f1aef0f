package errors

import (
	"strings"
	"testing"

	"github.com/cwbudde/pl0c/internal/token"
)

func TestFormatIncludesKindFileAndPosition(t *testing.T) {
	err := NewCompilerError(KindSyntax, token.Position{Line: 3, Column: 7}, "unexpected token", "VAR X", "prog.pl0")

	got := err.Format(false)
	for _, want := range []string{"syntax error", "prog.pl0:3:7", "unexpected token"} {
		if !strings.Contains(got, want) {
			t.Errorf("Format() = %q, want it to contain %q", got, want)
		}
	}
}

func TestFormatWithoutFileUsesLineColumnOnly(t *testing.T) {
	err := NewCompilerError(KindLex, token.Position{Line: 1, Column: 1}, "illegal byte", "$", "")

	got := err.Format(false)
	if strings.Contains(got, " in :") {
		t.Errorf("Format() with empty File produced %q, want the file-less form", got)
	}
	if !strings.Contains(got, "at line 1:1") {
		t.Errorf("Format() = %q, want it to contain %q", got, "at line 1:1")
	}
}

func TestKindStringNames(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{KindLex, "lexical error"},
		{KindSyntax, "syntax error"},
		{KindSemantic, "semantic error"},
		{KindIO, "I/O error"},
	}
	for _, c := range cases {
		if got := c.kind.String(); got != c.want {
			t.Errorf("%v.String() = %q, want %q", int(c.kind), got, c.want)
		}
	}
}

func TestFormatErrorsJoinsMultiple(t *testing.T) {
	errs := []*CompilerError{
		NewCompilerError(KindSyntax, token.Position{Line: 1, Column: 1}, "first", "", "a.pl0"),
		NewCompilerError(KindSemantic, token.Position{Line: 2, Column: 1}, "second", "", "a.pl0"),
	}

	got := FormatErrors(errs, false)
	if !strings.Contains(got, "first") || !strings.Contains(got, "second") {
		t.Errorf("FormatErrors() = %q, want both messages present", got)
	}
}
