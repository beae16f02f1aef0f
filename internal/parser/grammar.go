package parser

import "github.com/cwbudde/pl0c/internal/token"

// NonTerminal names one grammar rule: a graph of Edge values, keyed in
// Parser.grammar.
type NonTerminal int

const (
	ntProgram NonTerminal = iota
	ntBlock
	ntExpression
	ntTerm
	ntStatement
	ntFactor
	ntCondition
	ntConstList
	ntConstDecl
	ntVarList
	ntVarDecl
	ntProcDecl
	ntAssignment
	ntConditional
	ntLoop
	ntCompound
	ntProcedureCall
	ntInput
	ntOutput
	ntFor
	ntParamListCall
	ntParamListDecl
	ntArrayIndex
)

var nonTerminalNames = [...]string{
	ntProgram:       "Program",
	ntBlock:         "Block",
	ntExpression:    "Expression",
	ntTerm:          "Term",
	ntStatement:     "Statement",
	ntFactor:        "Factor",
	ntCondition:     "Condition",
	ntConstList:     "ConstList",
	ntConstDecl:     "ConstDecl",
	ntVarList:       "VarList",
	ntVarDecl:       "VarDecl",
	ntProcDecl:      "ProcDecl",
	ntAssignment:    "Assignment",
	ntConditional:   "Conditional",
	ntLoop:          "Loop",
	ntCompound:      "Compound",
	ntProcedureCall: "ProcedureCall",
	ntInput:         "Input",
	ntOutput:        "Output",
	ntFor:           "For",
	ntParamListCall: "ParamListCall",
	ntParamListDecl: "ParamListDecl",
	ntArrayIndex:    "ArrayIndex",
}

// String names the grammar rule, for --ast dumps and diagnostics.
func (nt NonTerminal) String() string {
	if int(nt) < 0 || int(nt) >= len(nonTerminalNames) {
		return "Unknown"
	}
	return nonTerminalNames[nt]
}

// edgeKind tags what an Edge matches against the token stream.
type edgeKind int

const (
	// edgeNil always matches; used to run an action between two real
	// edges without consuming a token.
	edgeNil edgeKind = iota
	// edgeSymbol matches a reserved word/compound operator (SymID set)
	// or a raw single-character operator (SymID is token.SymNone,
	// compared against SymText).
	edgeSymbol
	// edgeMorpheme matches a token by Kind (NUMBER, IDENT, STRING).
	edgeMorpheme
	// edgeSubgraph recurses into another NonTerminal's edge graph.
	edgeSubgraph
	// edgeEnd marks successful completion of the current graph.
	edgeEnd
)

// action is a semantic action attached to an edge; it runs once the
// edge's token/subgraph match succeeds, and its own success/failure is
// folded into the edge's overall success.
type action func(p *Parser) bool

// Edge is one transition in a grammar graph: match a token (or recurse
// into a subgraph), optionally run an action, then move to Next on
// success or Alt on failure. NT is the owning NonTerminal, stamped in
// once the full grammar is assembled so Next/Alt can be resolved
// without threading the graph alongside every Edge value.
type Edge struct {
	Kind edgeKind

	SymID   token.SymbolID
	SymText string

	MorphKind token.Kind

	Sub NonTerminal

	Do action

	Next int
	Alt  int
	NT   NonTerminal
}

func sym(id token.SymbolID, text string, do action, next, alt int) Edge {
	return Edge{Kind: edgeSymbol, SymID: id, SymText: text, Do: do, Next: next, Alt: alt}
}

func morph(kind token.Kind, do action, next, alt int) Edge {
	return Edge{Kind: edgeMorpheme, MorphKind: kind, Do: do, Next: next, Alt: alt}
}

func sub(nt NonTerminal, do action, next, alt int) Edge {
	return Edge{Kind: edgeSubgraph, Sub: nt, Do: do, Next: next, Alt: alt}
}

func nilEdge(do action, next, alt int) Edge {
	return Edge{Kind: edgeNil, Do: do, Next: next, Alt: alt}
}

func end() Edge {
	return Edge{Kind: edgeEnd}
}

// newGrammar builds every non-terminal's edge graph, binding each
// action to p. The graph shape mirrors the PL/0 grammar's recursive
// structure; NT is stamped onto every edge so the walker can resolve
// Next/Alt by reading back out of the same map.
func newGrammar(p *Parser) map[NonTerminal][]Edge {
	g := map[NonTerminal][]Edge{
		ntProgram: {
			sub(ntBlock, nil, 1, 0),
			sym(token.SymNone, ".", p.programEnd, 2, 0),
			end(),
		},

		ntConstList: {
			sym(token.SymConst, "", nil, 1, 0),
			sub(ntConstDecl, nil, 2, 0),
			sym(token.SymNone, ",", nil, 1, 3),
			sym(token.SymNone, ";", nil, 4, 0),
			end(),
		},

		ntConstDecl: {
			morph(token.KindIdent, p.blockCheckConstIdent, 1, 0),
			sym(token.SymNone, "=", nil, 2, 0),
			morph(token.KindNumber, p.blockCreateConst, 3, 0),
			end(),
		},

		ntVarList: {
			sym(token.SymVar, "", nil, 1, 0),
			sub(ntVarDecl, nil, 2, 0),
			sym(token.SymNone, ",", nil, 1, 3),
			sym(token.SymNone, ";", nil, 4, 0),
			end(),
		},

		ntVarDecl: {
			morph(token.KindIdent, p.blockCreateVar, 1, 0),
			sym(token.SymNone, "[", nil, 2, 4),
			morph(token.KindNumber, p.arraySetIndex, 3, 0),
			sym(token.SymNone, "]", p.arrayCreate, 4, 0),
			end(),
		},

		ntArrayIndex: {
			sym(token.SymNone, "[", p.arrayPushAddr, 1, 0),
			sub(ntExpression, nil, 2, 0),
			sym(token.SymNone, "]", p.arrayAccess, 3, 0),
			end(),
		},

		ntProcDecl: {
			sym(token.SymProcedure, "", nil, 1, 0),
			morph(token.KindIdent, p.blockCreateProc, 2, 0),
			sym(token.SymNone, "(", nil, 3, 5),
			sub(ntParamListDecl, nil, 4, 4),
			sym(token.SymNone, ")", nil, 5, 0),
			sym(token.SymNone, ";", p.procedureEndParameterList, 6, 0),
			sub(ntBlock, nil, 7, 0),
			sym(token.SymNone, ";", nil, 8, 0),
			end(),
		},

		ntProcedureCall: {
			sym(token.SymCall, "", nil, 1, 0),
			morph(token.KindIdent, p.statementCallBeforeParamsProc, 2, 0),
			sym(token.SymNone, "(", nil, 3, 5),
			sub(ntParamListCall, nil, 4, 4),
			sym(token.SymNone, ")", nil, 5, 0),
			nilEdge(p.statementCallAfterParamsProc, 6, 0),
			end(),
		},

		ntParamListCall: {
			sub(ntExpression, nil, 1, 0),
			sym(token.SymNone, ",", nil, 0, 2),
			end(),
		},

		ntParamListDecl: {
			morph(token.KindIdent, p.procedureParameter, 1, 0),
			sym(token.SymNone, ",", nil, 0, 2),
			end(),
		},

		ntAssignment: {
			morph(token.KindIdent, p.statementAssignmentLeftSide, 1, 0),
			sym(token.SymNone, "[", nil, 2, 4),
			sub(ntExpression, nil, 3, 0),
			sym(token.SymNone, "]", p.arrayAccess, 4, 0),
			sym(token.SymAssign, "", nil, 5, 0),
			sub(ntExpression, p.statementAssignmentRightSide, 6, 0),
			end(),
		},

		ntConditional: {
			sym(token.SymIf, "", nil, 1, 0),
			sub(ntCondition, p.statementIfCondition, 2, 0),
			sym(token.SymThen, "", nil, 3, 0),
			sub(ntStatement, nil, 5, 0),
			nilEdge(p.statementThenStatement, 7, 0),
			sym(token.SymElse, "", p.statementElseKeyword, 6, 4),
			sub(ntStatement, p.statementElseStatement, 7, 0),
			end(),
		},

		ntLoop: {
			sym(token.SymWhile, "", p.statementWhileCondition, 1, 0),
			sub(ntCondition, p.statementWhileAfterCondition, 2, 0),
			sym(token.SymDo, "", nil, 3, 0),
			sub(ntStatement, p.statementWhileEnd, 4, 0),
			end(),
		},

		ntCompound: {
			sym(token.SymBegin, "", nil, 1, 0),
			sub(ntStatement, nil, 2, 0),
			sym(token.SymNone, ";", nil, 1, 3),
			sym(token.SymEnd, "", nil, 4, 0),
			end(),
		},

		ntInput: {
			sym(token.SymNone, "?", nil, 1, 0),
			morph(token.KindIdent, p.statementGetVal, 2, 0),
			end(),
		},

		ntOutput: {
			sym(token.SymNone, "!", nil, 1, 0),
			morph(token.KindString, p.statementPutStr, 3, 2),
			sub(ntExpression, p.statementPutVal, 3, 0),
			end(),
		},

		ntBlock: {
			sub(ntConstList, nil, 1, 1),
			sub(ntVarList, nil, 2, 2),
			sub(ntProcDecl, nil, 2, 3),
			nilEdge(p.blockInitCodeGen, 4, 0),
			sub(ntStatement, p.blockEndProcedure, 5, 0),
			end(),
		},

		ntExpression: {
			sym(token.SymNone, "-", nil, 1, 2),
			sub(ntTerm, p.expressionNegSign, 3, 0),
			sub(ntTerm, nil, 3, 0),
			sym(token.SymNone, "+", nil, 4, 5),
			sub(ntTerm, p.expressionAdd, 3, 0),
			sym(token.SymNone, "-", nil, 6, 7),
			sub(ntTerm, p.expressionSub, 3, 0),
			end(),
		},

		ntStatement: {
			sub(ntAssignment, nil, 8, 1),
			sub(ntConditional, nil, 8, 2),
			sub(ntLoop, nil, 8, 3),
			sub(ntCompound, nil, 8, 4),
			sub(ntProcedureCall, nil, 8, 5),
			sub(ntInput, nil, 8, 6),
			sub(ntOutput, nil, 8, 7),
			sub(ntFor, nil, 8, 0),
			end(),
		},

		ntTerm: {
			sub(ntFactor, nil, 1, 0),
			sym(token.SymNone, "*", nil, 2, 3),
			sub(ntFactor, p.termMul, 1, 0),
			sym(token.SymNone, "/", nil, 4, 5),
			sub(ntFactor, p.termDiv, 1, 0),
			end(),
		},

		ntFactor: {
			morph(token.KindNumber, p.factorPushNumber, 7, 1),
			sym(token.SymNone, "(", nil, 2, 4),
			sub(ntExpression, nil, 3, 0),
			sym(token.SymNone, ")", nil, 7, 0),
			morph(token.KindIdent, p.factorGetIdent, 5, 0),
			sub(ntArrayIndex, p.arraySwap, 7, 6),
			nilEdge(p.factorPushIdent, 7, 0),
			end(),
		},

		ntCondition: {
			sym(token.SymOdd, "", nil, 1, 2),
			sub(ntExpression, p.conditionOdd, 10, 0),
			sub(ntExpression, nil, 3, 0),
			sym(token.SymNone, "=", p.conditionEQ, 9, 4),
			sym(token.SymNone, "#", p.conditionNE, 9, 5),
			sym(token.SymNone, ">", p.conditionGT, 9, 6),
			sym(token.SymNone, "<", p.conditionLT, 9, 7),
			sym(token.SymLessEqual, "", p.conditionLE, 9, 8),
			sym(token.SymGreaterEqual, "", p.conditionGE, 9, 0),
			sub(ntExpression, p.conditionReleaseCommand, 10, 0),
			end(),
		},

		ntFor: {
			sym(token.SymFor, "", nil, 1, 0),
			sym(token.SymNone, "(", nil, 2, 0),
			sub(ntAssignment, nil, 3, 0),
			sym(token.SymNone, ";", p.forBeforeCondition, 4, 0),
			sub(ntCondition, p.forBeforeIncrement, 5, 0),
			sym(token.SymNone, ";", nil, 6, 0),
			sub(ntAssignment, p.forAfterIncrement, 7, 0),
			sym(token.SymNone, ")", nil, 8, 0),
			sub(ntStatement, p.forAfterStatement, 9, 0),
			end(),
		},
	}

	for nt, edges := range g {
		for i := range edges {
			edges[i].NT = nt
		}
	}
	return g
}
