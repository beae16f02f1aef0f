package parser

import (
	"testing"

	"github.com/cwbudde/pl0c/internal/bytecode"
	"github.com/gkampitakis/go-snaps/snaps"
)

// memWriter is a minimal growable io.WriteSeeker standing in for the
// real output file the CLI passes to parser.New.
type memWriter struct {
	buf []byte
	pos int
}

func (w *memWriter) Write(p []byte) (int, error) {
	if w.pos+len(p) > len(w.buf) {
		grown := make([]byte, w.pos+len(p))
		copy(grown, w.buf)
		w.buf = grown
	}
	n := copy(w.buf[w.pos:], p)
	w.pos += n
	return n, nil
}

func (w *memWriter) Seek(offset int64, whence int) (int64, error) {
	var base int
	switch whence {
	case 0:
		base = 0
	case 1:
		base = w.pos
	case 2:
		base = len(w.buf)
	}
	w.pos = base + int(offset)
	return int64(w.pos), nil
}

func compileToDisassembly(t *testing.T, source string) string {
	t.Helper()

	w := &memWriter{}
	p, err := New(source, "snapshot.pl0", w)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := p.Parse(); err != nil {
		t.Fatalf("Parse(%q): %v", source, err)
	}

	out, err := bytecode.DisassembleToString(w.buf)
	if err != nil {
		t.Fatalf("DisassembleToString: %v", err)
	}
	return out
}

// TestEndToEndScenarios compiles the six scenarios named in spec.md §8
// and snapshots the disassembled opcode stream, which is far more
// readable to diff on a snapshot mismatch than raw bytes.
func TestEndToEndScenarios(t *testing.T) {
	scenarios := []struct {
		name   string
		source string
	}{
		{
			name:   "MinimalProgram",
			source: `! 5 .`,
		},
		{
			name:   "SingleVariableAssignment",
			source: `VAR I; BEGIN I := 0 END .`,
		},
		{
			name:   "WhileLoop",
			source: `VAR I; BEGIN I := 0; WHILE I < 7 DO I := I + 1 END .`,
		},
		{
			name:   "IfElse",
			source: `VAR A, B, MAX; BEGIN IF A >= B THEN MAX := A ELSE MAX := B END .`,
		},
		{
			name: "NestedProcedureWithRecursion",
			source: `VAR A;
PROCEDURE P1;
VAR B, C;
BEGIN
  B := A; A := A - 1; IF C > 1 THEN CALL P1
END;
BEGIN A := 3; CALL P1 END .`,
		},
		{
			name:   "ForLoop",
			source: `VAR I; BEGIN FOR (I := 0; I < 3; I := I + 1) ! I END .`,
		},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			got := compileToDisassembly(t, s.source)
			snaps.MatchSnapshot(t, s.name, got)
		})
	}
}

func TestParseAbortsAfterFirstError(t *testing.T) {
	w := &memWriter{}
	p, err := New(`VAR I; BEGIN I := END .`, "bad.pl0", w)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	err = p.Parse()
	if err == nil {
		t.Fatal("Parse of malformed assignment returned nil error")
	}
	if len(p.Errors()) != 1 {
		t.Errorf("Errors() has %d entries, want exactly 1 (abort-on-first-error)", len(p.Errors()))
	}
}

func TestParseReportsUndeclaredIdentifier(t *testing.T) {
	w := &memWriter{}
	p, err := New(`BEGIN X := 1 END .`, "undeclared.pl0", w)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := p.Parse(); err == nil {
		t.Fatal("Parse with an undeclared identifier returned nil error")
	}
}

func TestParseArraysDeclareAndIndex(t *testing.T) {
	w := &memWriter{}
	p, err := New(`VAR A[10]; BEGIN A[0] := 1 END .`, "array.pl0", w)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := p.Parse(); err != nil {
		t.Fatalf("Parse: %v", err)
	}
}
