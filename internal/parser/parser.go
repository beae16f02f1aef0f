package parser

import (
	"fmt"
	"io"

	"github.com/cwbudde/pl0c/internal/bytecode"
	"github.com/cwbudde/pl0c/internal/errors"
	"github.com/cwbudde/pl0c/internal/lexer"
	"github.com/cwbudde/pl0c/internal/symbols"
	"github.com/cwbudde/pl0c/internal/token"
)

// Parser drives the PL/0 grammar's edge graphs against a Lexer,
// wiring each edge's semantic action into a symbols.Table and a
// bytecode.Emitter in a single pass. There is no separate AST: the
// parse tree exists only transiently as the recursion stack.
type Parser struct {
	lex *lexer.Lexer
	cur token.Token

	syms *symbols.Table
	emit *bytecode.Emitter

	grammar map[NonTerminal][]Edge

	// currentIdent/currentIndex carry state between an edge that reads
	// an identifier or array index and a later edge/action that
	// consumes it, mirroring the one-token lookahead of the reference
	// parser's instance fields.
	currentIdent string
	currentIndex int

	source   string
	filename string

	errs    []*errors.CompilerError
	aborted bool

	trace Tracer

	// maxArrayLength caps a declared array's element count; 0 means no
	// guard beyond what int can hold. Set via SetMaxArrayLength.
	maxArrayLength int
}

// SetMaxArrayLength installs the compiler-wide array length guard
// (internal/config's maxArrayLength); 0 disables the guard.
func (p *Parser) SetMaxArrayLength(n int) { p.maxArrayLength = n }

// Tracer observes non-terminal entry/exit while Parse walks the
// grammar, without needing any change to the edge graph itself. `pl0c
// parse --ast` attaches one to record a parse tree for display.
type Tracer interface {
	Enter(nt NonTerminal, pos token.Position)
	Exit(nt NonTerminal)
}

// SetTracer installs t to observe the parse; pass nil to disable.
func (p *Parser) SetTracer(t Tracer) { p.trace = t }

// New constructs a Parser over src, emitting to out.
func New(src, filename string, out io.WriteSeeker) (*Parser, error) {
	emit, err := bytecode.NewEmitter(out)
	if err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}
	p := &Parser{
		lex:      lexer.New(src, lexer.WithFilename(filename)),
		syms:     symbols.New(),
		emit:     emit,
		source:   src,
		filename: filename,
	}
	p.grammar = newGrammar(p)
	return p, nil
}

// Errors returns every CompilerError recorded during Parse.
func (p *Parser) Errors() []*errors.CompilerError { return p.errs }

// Symbols exposes the name list built while parsing, for `pl0c
// symbols` and the AST/parse-tree dump.
func (p *Parser) Symbols() *symbols.Table { return p.syms }

// Parse runs the PROGRAM graph to completion. It aborts at the first
// lex or semantic error; a syntax error (no edge matches and no
// alternative remains) is likewise fatal.
func (p *Parser) Parse() error {
	p.advance()

	if p.trace != nil {
		p.trace.Enter(ntProgram, p.cur.Pos)
	}
	edges := p.grammar[ntProgram]
	ok := p.parse(edges[0])
	if p.trace != nil {
		p.trace.Exit(ntProgram)
	}

	if lexErrs := p.lex.Errors(); len(lexErrs) > 0 && !p.aborted {
		e := lexErrs[0]
		p.record(errors.NewCompilerError(errors.KindLex, e.Pos, e.Error(), p.source, p.filename))
		ok = false
	}

	if !ok && !p.aborted {
		p.record(errors.NewCompilerError(errors.KindSyntax, p.cur.Pos,
			fmt.Sprintf("unexpected token %s", p.cur), p.source, p.filename))
	}

	if len(p.errs) > 0 {
		return fmt.Errorf("%s", errors.FormatErrors(p.errs, false))
	}
	return nil
}

// advance requests the next token from the lexer.
func (p *Parser) advance() { p.cur = p.lex.Next() }

// record appends a CompilerError and marks the parse aborted: every
// enclosing parse frame unwinds without trying alternatives or
// backtracking once aborted is set, matching abort-on-first-error.
func (p *Parser) record(err *errors.CompilerError) {
	p.errs = append(p.errs, err)
	p.aborted = true
}

// matches reports whether the current token satisfies edge's
// symbol/morpheme requirement.
func (p *Parser) matches(edge Edge) bool {
	switch edge.Kind {
	case edgeSymbol:
		return p.cur.IsSymbol(edge.SymID, edge.SymText)
	case edgeMorpheme:
		return p.cur.Kind == edge.MorphKind
	default:
		return false
	}
}

// parse walks one grammar graph starting at edge, running actions and
// recursing into subgraphs, with a single level of backtracking: a
// subgraph call that fails with no token consumed lets its caller try
// a sibling alternative instead.
func (p *Parser) parse(edge Edge) bool {
	consumedAnyToken := false

	for {
		if p.aborted {
			return false
		}

		var success bool
		switch edge.Kind {
		case edgeSymbol, edgeMorpheme:
			success = p.matches(edge)
		case edgeSubgraph:
			if p.trace != nil {
				p.trace.Enter(edge.Sub, p.cur.Pos)
			}
			success = p.parse(p.grammar[edge.Sub][0])
			if p.trace != nil {
				p.trace.Exit(edge.Sub)
			}
		case edgeEnd:
			return true
		case edgeNil:
			success = true
		}

		if success && edge.Do != nil {
			success = edge.Do(p)
		}

		if p.aborted {
			return false
		}

		if !success {
			if edge.Alt != 0 {
				edge = p.grammar[edge.NT][edge.Alt]
				continue
			}
			if consumedAnyToken {
				// No backtracking past a consumed token: a hard syntax error.
				p.record(errors.NewCompilerError(errors.KindSyntax, p.cur.Pos,
					fmt.Sprintf("unexpected token %s", p.cur), p.source, p.filename))
				return false
			}
			return false // plain backtrack: no token consumed at this level
		}

		if edge.Kind == edgeSymbol || edge.Kind == edgeMorpheme {
			p.advance()
			consumedAnyToken = true
		}
		edge = p.grammar[edge.NT][edge.Next]
	}
}
