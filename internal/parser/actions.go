package parser

import (
	"fmt"

	"github.com/cwbudde/pl0c/internal/bytecode"
	"github.com/cwbudde/pl0c/internal/errors"
	"github.com/cwbudde/pl0c/internal/symbols"
)

// fail records a CompilerError at the current token's position and
// returns false, the uniform shape every semantic action uses to
// abort the parse.
func (p *Parser) fail(kind errors.Kind, format string, args ...interface{}) bool {
	p.record(errors.NewCompilerError(kind, p.cur.Pos, fmt.Sprintf(format, args...), p.source, p.filename))
	return false
}

// addressingModeFor classifies a variable relative to the procedure
// currently being emitted: its own frame (local), the program's main
// frame, or some other named outer procedure (global, which carries
// an extra procedure-index operand). The three call sites that need
// this (assignment targets, GET statements, array base addresses) and
// the one that needs its value-reading counterpart (bare factor
// reads) all route through here instead of repeating the branch.
func addressingModeFor(syms *symbols.Table, v *symbols.Variable) (bytecode.AddressMode, int) {
	switch v.Owner {
	case syms.Main():
		return bytecode.AddrMain, 0
	case syms.Current():
		return bytecode.AddrLocal, 0
	default:
		return bytecode.AddrGlobal, v.Owner.Index
	}
}

// emitVariableAccess writes the correct PUSH_{VAL,ADDR}_{LOCAL,MAIN,GLOBAL}
// instruction for v, pushing its value when wantValue is set and its
// address otherwise.
func (p *Parser) emitVariableAccess(v *symbols.Variable, wantValue bool) bool {
	mode, procIndex := addressingModeFor(p.syms, v)

	var op bytecode.OpCode
	switch {
	case wantValue && mode == bytecode.AddrLocal:
		op = bytecode.OpPushValLocal
	case wantValue && mode == bytecode.AddrMain:
		op = bytecode.OpPushValMain
	case wantValue:
		op = bytecode.OpPushValGlobal
	case mode == bytecode.AddrLocal:
		op = bytecode.OpPushAddrLocal
	case mode == bytecode.AddrMain:
		op = bytecode.OpPushAddrMain
	default:
		op = bytecode.OpPushAddrGlobal
	}

	if mode == bytecode.AddrGlobal {
		p.emit.Write(op, v.AddressOffset, procIndex)
	} else {
		p.emit.Write(op, v.AddressOffset)
	}
	return true
}

// resolveVariable looks up name globally and reports a semantic error
// if it is undeclared or names a procedure or constant instead of a
// variable.
func (p *Parser) resolveVariable(name string) (*symbols.Variable, bool) {
	entry := p.syms.LookupGlobal(name, nil)
	switch {
	case entry.Proc == nil && entry.Var == nil && entry.Const == nil:
		return nil, p.fail(errors.KindSemantic, "%q is used but not declared", name)
	case entry.Proc != nil:
		return nil, p.fail(errors.KindSemantic, "expected a variable but %q names a procedure", name)
	case entry.Const != nil:
		return nil, p.fail(errors.KindSemantic, "expected a variable but %q names a constant", name)
	default:
		return entry.Var, true
	}
}

// -- BLOCK --

func (p *Parser) blockCheckConstIdent() bool {
	ident := p.cur.Text
	if p.syms.IsLocal(ident, nil) {
		return p.fail(errors.KindSemantic, "%q is already declared in this scope", ident)
	}
	p.currentIdent = ident
	return true
}

func (p *Parser) blockCreateConst() bool {
	if p.currentIdent == "" {
		return p.fail(errors.KindSemantic, "constant value given before its name")
	}
	p.syms.CreateConstant(int64(p.cur.Num), p.currentIdent)
	p.currentIdent = ""
	return true
}

func (p *Parser) blockCreateVar() bool {
	ident := p.cur.Text
	if p.syms.IsLocal(ident, nil) {
		return p.fail(errors.KindSemantic, "%q is already declared in this scope", ident)
	}
	p.currentIdent = ident
	p.syms.CreateVariable(ident)
	return true
}

func (p *Parser) blockCreateProc() bool {
	ident := p.cur.Text
	if p.syms.IsLocal(ident, nil) {
		return p.fail(errors.KindSemantic, "%q is already declared in this scope", ident)
	}
	if _, err := p.syms.CreateProcedure(ident); err != nil {
		return p.fail(errors.KindSemantic, "%s", err)
	}
	return true
}

func (p *Parser) procedureParameter() bool {
	ident := p.cur.Text
	if p.syms.IsLocal(ident, nil) {
		return p.fail(errors.KindSemantic, "parameter %q is already declared in this scope", ident)
	}
	p.syms.CreateParameter(ident)
	return true
}

func (p *Parser) procedureEndParameterList() bool {
	p.syms.FinalizeParameters()
	return true
}

func (p *Parser) blockInitCodeGen() bool {
	cur := p.syms.Current()
	p.emit.BeginProcedure(cur.Index, cur.FrameSize())
	return true
}

func (p *Parser) blockEndProcedure() bool {
	cur := p.syms.Current()
	paramCount := 0
	for _, v := range cur.Variables {
		if v.IsParameter {
			paramCount++
		}
	}
	if err := p.emit.EndProcedure(paramCount); err != nil {
		return p.fail(errors.KindIO, "%s", err)
	}
	p.syms.EndProcedure()
	return true
}

// -- STATEMENT: assignment --

func (p *Parser) statementAssignmentLeftSide() bool {
	v, ok := p.resolveVariable(p.cur.Text)
	if !ok {
		return false
	}
	return p.emitVariableAccess(v, false)
}

func (p *Parser) statementAssignmentRightSide() bool {
	p.emit.Write(bytecode.OpStoreVal)
	return true
}

// -- STATEMENT: if/else --

func (p *Parser) statementIfCondition() bool {
	p.emit.PushLabel()
	p.emit.Write(bytecode.OpJmpNot, 0)
	return true
}

func (p *Parser) statementThenStatement() bool {
	label, err := p.emit.PopLabel()
	if err != nil {
		return p.fail(errors.KindSemantic, "%s", err)
	}
	return p.correctJump(label, -3)
}

func (p *Parser) statementElseKeyword() bool {
	jmpNotLabel, err := p.emit.PopLabel()
	if err != nil {
		return p.fail(errors.KindSemantic, "%s", err)
	}
	p.emit.PushLabel()
	p.emit.Write(bytecode.OpJmp, 0)
	return p.correctJump(jmpNotLabel, 0)
}

func (p *Parser) statementElseStatement() bool {
	jmpLabel, err := p.emit.PopLabel()
	if err != nil {
		return p.fail(errors.KindSemantic, "%s", err)
	}
	return p.correctJump(jmpLabel, -3)
}

func (p *Parser) correctJump(label bytecode.Label, extra int) bool {
	if err := p.emit.CorrectJump(label, extra); err != nil {
		return p.fail(errors.KindSemantic, "%s", err)
	}
	return true
}

// -- STATEMENT: while --

func (p *Parser) statementWhileCondition() bool {
	p.emit.PushLabel()
	return true
}

func (p *Parser) statementWhileAfterCondition() bool {
	p.emit.PushLabel()
	p.emit.Write(bytecode.OpJmpNot, 0)
	return true
}

func (p *Parser) statementWhileEnd() bool {
	jmpNotLabel, err := p.emit.PopLabel()
	if err != nil {
		return p.fail(errors.KindSemantic, "%s", err)
	}
	conditionLabel, err := p.emit.PopLabel()
	if err != nil {
		return p.fail(errors.KindSemantic, "%s", err)
	}
	p.emit.Write(bytecode.OpJmp, -conditionLabel.Distance()-3)
	return p.correctJump(jmpNotLabel, 0)
}

// -- STATEMENT: procedure call --

func (p *Parser) statementCallBeforeParamsProc() bool {
	identName := p.cur.Text
	entry := p.syms.LookupGlobal(identName, nil)
	switch {
	case entry.Proc == nil && entry.Var == nil && entry.Const == nil:
		return p.fail(errors.KindSemantic, "%q is called but not declared", identName)
	case entry.Const != nil:
		return p.fail(errors.KindSemantic, "expected a procedure but %q names a constant", identName)
	case entry.Var != nil:
		return p.fail(errors.KindSemantic, "expected a procedure but %q names a variable", identName)
	}
	p.emit.PushDeferred(bytecode.OpCall, entry.Proc.Index)
	return true
}

func (p *Parser) statementCallAfterParamsProc() bool {
	d, err := p.emit.PopDeferred()
	if err != nil {
		return p.fail(errors.KindSemantic, "%s", err)
	}
	p.emit.Write(d.Op, d.Args...)
	return true
}

// -- STATEMENT: input/output --

func (p *Parser) statementGetVal() bool {
	v, ok := p.resolveVariable(p.cur.Text)
	if !ok {
		return false
	}
	if !p.emitVariableAccess(v, false) {
		return false
	}
	p.emit.Write(bytecode.OpGetVal)
	return true
}

func (p *Parser) statementPutVal() bool {
	p.emit.Write(bytecode.OpPushVal)
	return true
}

func (p *Parser) statementPutStr() bool {
	p.emit.WriteString(p.cur.Text)
	return true
}

// -- ARRAY --

func (p *Parser) arrayPushAddr() bool {
	v, ok := p.resolveVariable(p.currentIdent)
	if !ok {
		return false
	}
	return p.emitVariableAccess(v, false)
}

func (p *Parser) arraySetIndex() bool {
	p.currentIndex = int(p.cur.Num)
	return true
}

func (p *Parser) arrayCreate() bool {
	if p.maxArrayLength > 0 && p.currentIndex > p.maxArrayLength {
		return p.fail(errors.KindSemantic, "array length %d exceeds configured maximum %d", p.currentIndex, p.maxArrayLength)
	}
	if err := p.syms.TurnLastVariableIntoArray(p.currentIndex); err != nil {
		return p.fail(errors.KindSemantic, "%s", err)
	}
	return true
}

func (p *Parser) arrayAccess() bool {
	c := p.syms.CreateConstant(4, "")
	p.emit.Write(bytecode.OpPushConst, c.Index)
	p.emit.Write(bytecode.OpMul)
	p.emit.Write(bytecode.OpAdd)
	return true
}

func (p *Parser) arraySwap() bool {
	p.emit.Write(bytecode.OpSwap)
	return true
}

// -- CONDITION --

func (p *Parser) conditionOdd() bool {
	p.emit.Write(bytecode.OpOdd)
	return true
}

func (p *Parser) conditionEQ() bool { p.emit.PushDeferred(bytecode.OpCmpEq); return true }
func (p *Parser) conditionNE() bool { p.emit.PushDeferred(bytecode.OpCmpNe); return true }
func (p *Parser) conditionLT() bool { p.emit.PushDeferred(bytecode.OpCmpLt); return true }
func (p *Parser) conditionGT() bool { p.emit.PushDeferred(bytecode.OpCmpGt); return true }
func (p *Parser) conditionLE() bool { p.emit.PushDeferred(bytecode.OpCmpLe); return true }
func (p *Parser) conditionGE() bool { p.emit.PushDeferred(bytecode.OpCmpGe); return true }

func (p *Parser) conditionReleaseCommand() bool {
	d, err := p.emit.PopDeferred()
	if err != nil {
		return p.fail(errors.KindSemantic, "%s", err)
	}
	p.emit.Write(d.Op, d.Args...)
	return true
}

// -- EXPRESSION / TERM --

func (p *Parser) expressionNegSign() bool { p.emit.Write(bytecode.OpNeg); return true }
func (p *Parser) expressionAdd() bool     { p.emit.Write(bytecode.OpAdd); return true }
func (p *Parser) expressionSub() bool     { p.emit.Write(bytecode.OpSub); return true }
func (p *Parser) termMul() bool           { p.emit.Write(bytecode.OpMul); return true }
func (p *Parser) termDiv() bool           { p.emit.Write(bytecode.OpDiv); return true }

// -- FACTOR --

func (p *Parser) factorPushNumber() bool {
	c := p.syms.CreateConstant(int64(p.cur.Num), "")
	p.emit.Write(bytecode.OpPushConst, c.Index)
	return true
}

func (p *Parser) factorGetIdent() bool {
	p.currentIdent = p.cur.Text
	return true
}

func (p *Parser) factorPushIdent() bool {
	entry := p.syms.LookupGlobal(p.currentIdent, nil)
	switch {
	case entry.Proc == nil && entry.Var == nil && entry.Const == nil:
		return p.fail(errors.KindSemantic, "%q is used but not declared", p.currentIdent)
	case entry.Proc != nil:
		return p.fail(errors.KindSemantic, "expected a constant or variable but %q names a procedure", p.currentIdent)
	case entry.Const != nil:
		p.emit.Write(bytecode.OpPushConst, entry.Const.Index)
		return true
	default:
		return p.emitVariableAccess(entry.Var, true)
	}
}

// -- FOR --

func (p *Parser) forBeforeCondition() bool {
	p.emit.PushLabel()
	return true
}

func (p *Parser) forBeforeIncrement() bool {
	p.emit.PushLabel()
	p.emit.Write(bytecode.OpJmpNot, 0)
	if err := p.emit.RecordBegin(); err != nil {
		return p.fail(errors.KindSemantic, "%s", err)
	}
	return true
}

func (p *Parser) forAfterIncrement() bool {
	p.emit.RecordEnd()
	return true
}

func (p *Parser) forAfterStatement() bool {
	if err := p.emit.EmitRecorded(); err != nil {
		return p.fail(errors.KindSemantic, "%s", err)
	}
	jmpNotLabel, err := p.emit.PopLabel()
	if err != nil {
		return p.fail(errors.KindSemantic, "%s", err)
	}
	conditionLabel, err := p.emit.PopLabel()
	if err != nil {
		return p.fail(errors.KindSemantic, "%s", err)
	}
	p.emit.Write(bytecode.OpJmp, -conditionLabel.Distance()-3)
	return p.correctJump(jmpNotLabel, 0)
}

// -- PROGRAM --

func (p *Parser) programEnd() bool {
	pool := make([]int64, len(p.syms.ConstantPool()))
	for i, c := range p.syms.ConstantPool() {
		pool[i] = c.Value
	}
	if err := p.emit.Finalize(pool); err != nil {
		return p.fail(errors.KindIO, "%s", err)
	}
	return true
}
