package lexer

import (
	"testing"

	"github.com/cwbudde/pl0c/internal/token"
)

func TestLexerIdentifiersAreUpperCased(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"abc", "ABC"},
		{"Abc", "ABC"},
		{"aBcD", "ABCD"},
		{"ABC", "ABC"},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			l := New(c.input)
			tok := l.Next()
			if tok.Kind != token.KindIdent {
				t.Fatalf("Next() kind = %v, want KindIdent", tok.Kind)
			}
			if tok.Text != c.want {
				t.Errorf("Next().Text = %q, want %q", tok.Text, c.want)
			}
		})
	}
}

func TestLexerReservedWordsResolveToSymbol(t *testing.T) {
	l := New("begin end if then")
	want := []token.SymbolID{token.SymBegin, token.SymEnd, token.SymIf, token.SymThen}

	for i, sym := range want {
		tok := l.Next()
		if tok.Kind != token.KindSymbol {
			t.Fatalf("token %d: kind = %v, want KindSymbol", i, tok.Kind)
		}
		if tok.Sym != sym {
			t.Errorf("token %d: Sym = %v, want %v", i, tok.Sym, sym)
		}
	}
}

func TestLexerEmptyIsStickyAtEOF(t *testing.T) {
	l := New("123")

	if tok := l.Next(); tok.Kind != token.KindNumber {
		t.Fatalf("first token kind = %v, want KindNumber", tok.Kind)
	}
	for i := 0; i < 3; i++ {
		if tok := l.Next(); tok.Kind != token.KindEmpty {
			t.Fatalf("call %d past EOF: kind = %v, want KindEmpty", i, tok.Kind)
		}
	}
}

func TestLexerCommentsAreTransparent(t *testing.T) {
	withComment := "VAR /* a comment */ I"
	withoutComment := "VAR I"

	lc := New(withComment)
	lw := New(withoutComment)

	for {
		tc := lc.Next()
		tw := lw.Next()
		if tc.Kind != tw.Kind || tc.Text != tw.Text || tc.Sym != tw.Sym {
			t.Fatalf("token streams diverge: with-comment=%+v without-comment=%+v", tc, tw)
		}
		if tc.Kind == token.KindEmpty {
			break
		}
	}
}

func TestLexerAssignCompoundOperator(t *testing.T) {
	l := New(":=")
	tok := l.Next()
	if !tok.IsSymbol(token.SymAssign, "") {
		t.Fatalf("Next() = %+v, want SymAssign", tok)
	}
}

func TestLexerReportsIllegalByte(t *testing.T) {
	l := New("VAR \x80 I")
	for {
		tok := l.Next()
		if tok.Kind == token.KindEmpty {
			break
		}
	}
	if len(l.Errors()) == 0 {
		t.Fatal("Errors() is empty, want at least one LexError for byte 0x80")
	}
}
