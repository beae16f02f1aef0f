package lexer

// charClass is one of the twelve lexical classes a source byte can
// belong to. See classVector for the full byte -> class mapping.
type charClass int

const (
	classOther charClass = iota // valid special char, finalizes as a single-char symbol
	classDigit
	classLetter
	classColon
	classEqual
	classLess
	classGreater
	classControl // whitespace / control characters, no token produced
	classKeywordInitial
	classQuote
	classSlash
	classStar
)

const numClasses = 12

// action is one step of the state-matrix: consume (or not) the
// current byte and move to the named state. Terminal state is 16.
type action struct {
	next int
	do   func()
}

// classVector assigns one of the twelve classes above to every byte
// 0x00..0x7F. Bytes outside this range are rejected with a LexError.
var classVector = [128]charClass{
	// 0x00-0x0F: control
	classControl, classControl, classControl, classControl, classControl, classControl, classControl, classControl,
	classControl, classControl, classControl, classControl, classControl, classControl, classControl, classControl,
	// 0x10-0x1F: control
	classControl, classControl, classControl, classControl, classControl, classControl, classControl, classControl,
	classControl, classControl, classControl, classControl, classControl, classControl, classControl, classControl,
	// 0x20-0x2F: space ! " # $ % & ' ( ) * + , - . /
	classControl, classOther, classQuote, classOther, classOther, classOther, classOther, classOther,
	classOther, classOther, classStar, classOther, classOther, classOther, classOther, classSlash,
	// 0x30-0x3F: 0-9 : ; < = > ?
	classDigit, classDigit, classDigit, classDigit, classDigit, classDigit, classDigit, classDigit,
	classDigit, classDigit, classColon, classOther, classLess, classEqual, classGreater, classOther,
	// 0x40-0x4F: @ A-O
	classOther, classLetter, classKeywordInitial, classKeywordInitial, classKeywordInitial, classKeywordInitial, classKeywordInitial, classLetter,
	classLetter, classKeywordInitial, classLetter, classLetter, classLetter, classLetter, classLetter, classKeywordInitial,
	// 0x50-0x5F: P-Z [ \ ] ^ _
	classKeywordInitial, classLetter, classLetter, classLetter, classKeywordInitial, classLetter, classKeywordInitial, classKeywordInitial,
	classLetter, classLetter, classLetter, classOther, classOther, classOther, classOther, classOther,
	// 0x60-0x6F: ` a-o
	classOther, classLetter, classKeywordInitial, classKeywordInitial, classKeywordInitial, classKeywordInitial, classLetter, classLetter,
	classLetter, classKeywordInitial, classLetter, classLetter, classLetter, classLetter, classLetter, classKeywordInitial,
	// 0x70-0x7F: p-z { | } ~ DEL
	classKeywordInitial, classLetter, classLetter, classLetter, classKeywordInitial, classLetter, classKeywordInitial, classKeywordInitial,
	classLetter, classLetter, classLetter, classOther, classOther, classOther, classOther, classControl,
}

// buildStateMatrix wires up the (state x class) -> (nextState, action)
// table against a concrete Lexer's action methods. State 16 is
// terminal ("token complete") and has no row.
//
// State roles: 0 dispatch, 1 number, 2 identifier, 3 ':', 4 '<', 5
// '>', 6 ":=", 7 "<=", 8 ">=", 9 potential reserved word, 10 '/'
// (probing for a comment), 11-13 block comment body (13 returns to
// dispatch without consuming the byte after "*/"), 14-15 string
// literal (15 handles a doubled closing quote as an escaped literal
// quote, matching the reference scanner).
func buildStateMatrix(l *Lexer) [16][numClasses]action {
	SLB := l.writeReadEnd
	SL := l.writeRead
	GL := l.upperWriteEnd
	L := l.read
	RL := l.rewindRead
	RB := l.rewindEnd
	B := func() { l.lastToken = l.end() }
	N := func() {}

	return [16][numClasses]action{
		0:  {{16, SLB}, {1, SL}, {2, GL}, {3, SL}, {16, SLB}, {4, SL}, {5, SL}, {0, L}, {9, GL}, {14, RL}, {10, SL}, {16, SLB}},
		1:  {{16, B}, {1, SL}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}},
		2:  {{16, B}, {2, SL}, {2, GL}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {2, GL}, {16, B}, {16, B}, {16, B}},
		3:  {{16, B}, {16, B}, {16, B}, {16, B}, {6, SL}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}},
		4:  {{16, B}, {16, B}, {16, B}, {16, B}, {7, SL}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}},
		5:  {{16, B}, {16, B}, {16, B}, {16, B}, {8, SL}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}},
		6:  {{16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}},
		7:  {{16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}},
		8:  {{16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}},
		9:  {{16, B}, {2, SL}, {9, GL}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {9, GL}, {16, B}, {16, B}, {16, B}},
		// Row 10 ('/' just consumed): only a following '*' diverts into
		// a comment; anything else finalizes '/' as a division symbol
		// without consuming the lookahead character.
		10: {{16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {16, B}, {11, RL}},
		11: {{11, L}, {11, L}, {11, L}, {11, L}, {11, L}, {11, L}, {11, L}, {11, L}, {11, L}, {11, L}, {11, L}, {12, L}},
		12: {{11, L}, {11, L}, {11, L}, {11, L}, {11, L}, {11, L}, {11, L}, {11, L}, {11, L}, {11, L}, {13, L}, {11, L}},
		13: {{0, N}, {0, N}, {0, N}, {0, N}, {0, N}, {0, N}, {0, N}, {0, N}, {0, N}, {0, N}, {0, N}, {0, N}},
		14: {{14, SL}, {14, SL}, {14, SL}, {14, SL}, {14, SL}, {14, SL}, {14, SL}, {14, SL}, {14, SL}, {15, SL}, {14, SL}, {14, SL}},
		15: {{16, RB}, {16, RB}, {16, RB}, {16, RB}, {16, RB}, {16, RB}, {16, RB}, {16, RB}, {16, RB}, {14, L}, {16, RB}, {16, RB}},
	}
}
