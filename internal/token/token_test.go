package token

import "testing"

func TestLookupReservedWordKnownAndUnknown(t *testing.T) {
	if id, ok := LookupReservedWord("WHILE"); !ok || id != SymWhile {
		t.Errorf("LookupReservedWord(%q) = (%v, %v), want (SymWhile, true)", "WHILE", id, ok)
	}
	if _, ok := LookupReservedWord("WRITE"); ok {
		t.Errorf("LookupReservedWord(%q) = ok, want not found", "WRITE")
	}
}

func TestIsSymbolMatchesEnumeratorOrRawText(t *testing.T) {
	reserved := Token{Kind: KindSymbol, Sym: SymDo}
	if !reserved.IsSymbol(SymDo, "") {
		t.Error("IsSymbol(SymDo, \"\") on a DO token = false, want true")
	}
	if reserved.IsSymbol(SymEnd, "") {
		t.Error("IsSymbol(SymEnd, \"\") on a DO token = true, want false")
	}

	raw := Token{Kind: KindSymbol, Sym: SymNone, Text: "+"}
	if !raw.IsSymbol(SymNone, "+") {
		t.Error("IsSymbol(SymNone, \"+\") on a '+' token = false, want true")
	}
	if raw.IsSymbol(SymNone, "-") {
		t.Error("IsSymbol(SymNone, \"-\") on a '+' token = true, want false")
	}

	notSymbol := Token{Kind: KindNumber, Num: 1}
	if notSymbol.IsSymbol(SymNone, "") {
		t.Error("IsSymbol on a KindNumber token = true, want false")
	}
}

func TestStringRendersEachKind(t *testing.T) {
	cases := []struct {
		name string
		tok  Token
		want string
	}{
		{"empty", Empty(Position{Line: 1, Column: 1}), "<eof>"},
		{"number", Token{Kind: KindNumber, Num: 42}, "42"},
		{"ident", Token{Kind: KindIdent, Text: "ABC"}, "ABC"},
		{"string", Token{Kind: KindString, Text: "hi"}, `"hi"`},
		{"reservedSymbol", Token{Kind: KindSymbol, Sym: SymIf}, "IF"},
		{"rawSymbol", Token{Kind: KindSymbol, Sym: SymNone, Text: "#"}, "#"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.tok.String(); got != c.want {
				t.Errorf("String() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestKindStringNames(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{KindEmpty, "Empty"},
		{KindNumber, "Number"},
		{KindSymbol, "Symbol"},
		{KindIdent, "Identifier"},
		{KindString, "String"},
	}
	for _, c := range cases {
		if got := c.kind.String(); got != c.want {
			t.Errorf("%v.String() = %q, want %q", int(c.kind), got, c.want)
		}
	}
}

func TestPositionString(t *testing.T) {
	p := Position{Line: 3, Column: 9}
	if got := p.String(); got != "3:9" {
		t.Errorf("Position.String() = %q, want %q", got, "3:9")
	}
}
