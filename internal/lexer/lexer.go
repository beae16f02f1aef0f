// Package lexer implements the table-driven PL/0 scanner: a 128-entry
// byte-to-class table feeding a 16-state transition matrix, yielding
// one Token per call to Next.
package lexer

import (
	"fmt"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cwbudde/pl0c/internal/token"
)

var toUpper = cases.Upper(language.Und)

// LexError reports a byte the classification table rejects, or a
// malformed numeric literal.
type LexError struct {
	Pos   token.Position
	Byte  byte
	Cause string
}

func (e *LexError) Error() string {
	if e.Cause != "" {
		return fmt.Sprintf("lex error at %s: %s", e.Pos, e.Cause)
	}
	return fmt.Sprintf("lex error at %s: unexpected byte 0x%02x", e.Pos, e.Byte)
}

// Option configures a Lexer at construction time.
type Option func(*Lexer)

// WithFilename attaches a file name used only in diagnostics.
func WithFilename(name string) Option {
	return func(l *Lexer) { l.filename = name }
}

// Lexer scans PL/0 source one byte at a time through a one-byte
// lookahead, exactly mirroring the reference scanner's read-ahead
// discipline.
type Lexer struct {
	src      []byte
	pos      int // index of currentByte within src; len(src) at EOF
	filename string

	line, col int

	currentByte byte
	atEOF       bool

	outBuffer []byte
	state     int
	lastToken token.Token

	matrix [16][numClasses]action

	errs []*LexError
}

// New constructs a Lexer over the given source text.
func New(src string, opts ...Option) *Lexer {
	l := &Lexer{
		src:  []byte(src),
		line: 1,
		col:  1,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.matrix = buildStateMatrix(l)
	if len(l.src) == 0 {
		l.atEOF = true
	} else {
		l.currentByte = l.src[0]
	}
	return l
}

// Errors returns every LexError accumulated so far.
func (l *Lexer) Errors() []*LexError { return l.errs }

// Next scans and returns the next token. Once the source is
// exhausted it returns token.KindEmpty forever; it never panics.
func (l *Lexer) Next() token.Token {
	l.state = 0
	l.outBuffer = l.outBuffer[:0]
	startLine, startCol := l.line, l.col

	if l.atEOF && l.pos >= len(l.src) {
		return token.Empty(token.Position{Line: l.line, Column: l.col})
	}

	var tok token.Token
	for l.state != 16 {
		if l.pos >= len(l.src) {
			if len(l.outBuffer) > 0 {
				tok = l.end()
			} else {
				tok = token.Empty(token.Position{Line: startLine, Column: startCol})
			}
			break
		}

		cv := int(l.currentByte)
		if cv >= 128 {
			l.errs = append(l.errs, &LexError{Pos: token.Position{Line: l.line, Column: l.col}, Byte: l.currentByte})
			l.advance()
			continue
		}

		class := classVector[cv]
		act := l.matrix[l.state][class]
		act.do()
		l.state = act.next
		if l.state == 16 {
			tok = l.lastToken
		}
	}

	return tok
}

// advance consumes the current byte, tracking line/column the same
// way the reference scanner does: the column is incremented for the
// byte being consumed, then reset (and the line bumped) if that byte
// was a line terminator.
func (l *Lexer) advance() {
	l.col++
	if l.currentByte == '\n' || l.currentByte == '\r' {
		l.col = 1
		l.line++
	}
	l.pos++
	if l.pos >= len(l.src) {
		l.atEOF = true
		l.currentByte = 0
		return
	}
	l.currentByte = l.src[l.pos]
}

// -- state-matrix actions --

func (l *Lexer) write() { l.outBuffer = append(l.outBuffer, l.currentByte) }
func (l *Lexer) read()  { l.advance() }

func (l *Lexer) writeRead() {
	l.write()
	l.read()
}

func (l *Lexer) upperWriteEnd() { l.writeRead() } // case-folding deferred to end(), once per token

func (l *Lexer) writeReadEnd() {
	l.writeRead()
	l.lastToken = l.end()
}

func (l *Lexer) rewind() {
	if len(l.outBuffer) > 0 {
		l.outBuffer = l.outBuffer[:len(l.outBuffer)-1]
	}
}

func (l *Lexer) rewindRead() {
	l.rewind()
	l.read()
}

func (l *Lexer) rewindEnd() {
	l.rewind()
	l.lastToken = l.end()
}

// end finalizes the token from the accumulated buffer and the state
// reached. The recorded column is the current column minus the
// buffer length, matching the reference's position bookkeeping.
func (l *Lexer) end() token.Token {
	text := string(l.outBuffer)
	pos := token.Position{Line: l.line, Column: l.col - len(text)}

	switch l.state {
	case 0, 3, 4, 5, 10:
		return token.Token{Kind: token.KindSymbol, Pos: pos, Text: text, Sym: token.SymNone}
	case 1:
		n, err := strconv.ParseFloat(text, 64)
		if err != nil {
			l.errs = append(l.errs, &LexError{Pos: pos, Cause: fmt.Sprintf("malformed number %q", text)})
			n = 0
		}
		return token.Token{Kind: token.KindNumber, Pos: pos, Num: n}
	case 2:
		return token.Token{Kind: token.KindIdent, Pos: pos, Text: toUpper.String(text)}
	case 6:
		return token.Token{Kind: token.KindSymbol, Pos: pos, Text: ":=", Sym: token.SymAssign}
	case 7:
		return token.Token{Kind: token.KindSymbol, Pos: pos, Text: "<=", Sym: token.SymLessEqual}
	case 8:
		return token.Token{Kind: token.KindSymbol, Pos: pos, Text: ">=", Sym: token.SymGreaterEqual}
	case 9:
		upper := toUpper.String(text)
		if id, ok := token.LookupReservedWord(upper); ok {
			return token.Token{Kind: token.KindSymbol, Pos: pos, Text: upper, Sym: id}
		}
		return token.Token{Kind: token.KindIdent, Pos: pos, Text: upper}
	case 15:
		return token.Token{Kind: token.KindString, Pos: pos, Text: text}
	default:
		l.errs = append(l.errs, &LexError{Pos: pos, Cause: fmt.Sprintf("unknown scanner state %d", l.state)})
		return token.Token{Kind: token.KindEmpty, Pos: pos}
	}
}
