// Package symbols implements the PL/0 name list: nested procedure
// scopes, constant interning, and variable/parameter address
// assignment.
package symbols

import "fmt"

// Procedure is a lexical scope: the implicit main program, or one
// introduced by a PROCEDURE declaration. Parent is a non-owning
// back-reference; Procedure never holds ownership over its parent.
type Procedure struct {
	Name   string
	Parent *Procedure
	Index  int

	Constants  []*Constant
	Variables  []*Variable
	Procedures []*Procedure

	localAddressOffset int
}

// Variable is a local variable or parameter of a Procedure. Plain
// scalars occupy 4 bytes; arrays occupy ArrayLength*4 bytes.
type Variable struct {
	Name         string
	Owner        *Procedure
	AddressOffset int
	IsParameter  bool
	ArrayLength  int // 0 for scalars
}

// Constant is a named or anonymous entry referencing a slot in the
// program-wide constant pool. Two constants created with the same
// value share one pool Index.
type Constant struct {
	Name  string // "" for anonymous constants (bare numeric literals)
	Value int64
	Index int
}

// Entry is the tagged result of a name lookup: exactly one of Proc,
// Var, or Const is non-nil.
type Entry struct {
	Proc  *Procedure
	Var   *Variable
	Const *Constant
}

// Kind reports which variant an Entry carries.
func (e Entry) Kind() string {
	switch {
	case e.Proc != nil:
		return "procedure"
	case e.Var != nil:
		return "variable"
	case e.Const != nil:
		return "constant"
	default:
		return "none"
	}
}

func (e Entry) isZero() bool {
	return e.Proc == nil && e.Var == nil && e.Const == nil
}

// Table is the compiler-owned name list. It exclusively owns every
// Procedure, Variable, and Constant it creates.
type Table struct {
	procedures []*Procedure
	pool       []*Constant
	current    *Procedure
}

// New creates a Table with the implicit main procedure already open
// (index 0, no parent).
func New() *Table {
	main := &Procedure{Name: "", Index: 0}
	t := &Table{procedures: []*Procedure{main}, current: main}
	return t
}

// Main returns the root procedure — the (grand)parent of every other
// procedure.
func (t *Table) Main() *Procedure { return t.procedures[0] }

// Current returns the procedure presently being declared into.
func (t *Table) Current() *Procedure { return t.current }

// CreateProcedure opens a new scope, nested under the current
// procedure, and makes it current. Call EndProcedure to close it.
func (t *Table) CreateProcedure(name string) (*Procedure, error) {
	parent := t.current
	if parent == nil {
		return nil, fmt.Errorf("createProcedure: no parent procedure open")
	}
	p := &Procedure{Name: name, Parent: parent, Index: len(t.procedures)}
	parent.Procedures = append(parent.Procedures, p)
	t.procedures = append(t.procedures, p)
	t.current = p
	return p, nil
}

// EndProcedure closes the current procedure, returning to its
// parent. Ending the main procedure (whose Parent is nil) leaves
// Current nil; callers only do this once, at the very end of a
// successful parse.
func (t *Table) EndProcedure() error {
	t.current = t.current.Parent
	return nil
}

// CreateConstant interns value into the global pool (reusing an
// existing slot if one already holds that value) and, when name is
// non-empty, adds a named wrapper over that slot to the current
// procedure. Anonymous constants (name == "") return the interned
// pool entry directly.
func (t *Table) CreateConstant(value int64, name string) *Constant {
	cached := t.lookupConstantByValue(value)
	if cached == nil {
		cached = &Constant{Value: value, Index: len(t.pool)}
		t.pool = append(t.pool, cached)
	}

	if name == "" {
		return cached
	}

	named := &Constant{Name: name, Value: value, Index: cached.Index}
	t.current.Constants = append(t.current.Constants, named)
	return named
}

// CreateVariable allocates 4 bytes at the current procedure's next
// free offset and appends a scalar Variable to its local list.
func (t *Table) CreateVariable(name string) *Variable {
	v := &Variable{
		Name:          name,
		Owner:         t.current,
		AddressOffset: t.current.localAddressOffset,
	}
	t.current.localAddressOffset += 4
	t.current.Variables = append(t.current.Variables, v)
	return v
}

// CreateParameter behaves like CreateVariable but marks the result as
// a procedure parameter; call FinalizeParameters once the whole
// parameter list has been declared.
func (t *Table) CreateParameter(name string) *Variable {
	v := t.CreateVariable(name)
	v.IsParameter = true
	return v
}

// FinalizeParameters renumbers the current procedure's parameters so
// the first-declared parameter gets the highest offset: callers push
// arguments left-to-right, and the callee must see them in source
// order relative to the frame pointer.
func (t *Table) FinalizeParameters() {
	var params []*Variable
	for _, v := range t.current.Variables {
		if v.IsParameter {
			params = append(params, v)
		}
	}
	n := len(params)
	for i, v := range params {
		v.AddressOffset = (n - 1 - i) * 4
	}
}

// TurnLastVariableIntoArray converts the most recently created
// variable of the current procedure into a fixed-size array,
// reserving the extra (length-1)*4 bytes.
func (t *Table) TurnLastVariableIntoArray(length int) error {
	vars := t.current.Variables
	if len(vars) == 0 {
		return fmt.Errorf("turnLastVariableIntoArray: no variable declared yet in %q", t.current.Name)
	}
	last := vars[len(vars)-1]
	last.ArrayLength = length
	t.current.localAddressOffset += 4 * (length - 1)
	return nil
}

// LookupLocal searches proc's own name, its direct child procedures,
// its constants, and its parameters/variables, in that order. proc
// defaults to the current procedure.
func (t *Table) LookupLocal(name string, proc *Procedure) Entry {
	if proc == nil {
		proc = t.current
	}
	if proc.Name == name {
		return Entry{Proc: proc}
	}
	for _, cp := range proc.Procedures {
		if cp.Name == name {
			return Entry{Proc: cp}
		}
	}
	for _, c := range proc.Constants {
		if c.Name == name {
			return Entry{Const: c}
		}
	}
	for _, v := range proc.Variables {
		if v.Name == name {
			return Entry{Var: v}
		}
	}
	return Entry{}
}

// LookupGlobal walks from proc (default: current) up through parents,
// returning the first match. Local scope shadows outer scope.
func (t *Table) LookupGlobal(name string, proc *Procedure) Entry {
	if proc == nil {
		proc = t.current
	}
	for p := proc; p != nil; p = p.Parent {
		if e := t.LookupLocal(name, p); !e.isZero() {
			return e
		}
	}
	return Entry{}
}

// LookupConstantByValue scans the global pool for value, returning
// nil if no constant has been interned with it yet.
func (t *Table) LookupConstantByValue(value int64) *Constant {
	return t.lookupConstantByValue(value)
}

func (t *Table) lookupConstantByValue(value int64) *Constant {
	for _, c := range t.pool {
		if c.Value == value {
			return c
		}
	}
	return nil
}

// IsLocal reports whether name resolves within proc's own local
// scope (default: current procedure).
func (t *Table) IsLocal(name string, proc *Procedure) bool {
	return !t.LookupLocal(name, proc).isZero()
}

// Procedures returns every procedure created so far, in definition
// order (main is always index 0).
func (t *Table) Procedures() []*Procedure { return t.procedures }

// ConstantPool returns the global constant pool in append order —
// the same order the emitter writes it to the output file.
func (t *Table) ConstantPool() []*Constant { return t.pool }

// FrameSize returns the number of bytes a procedure's locals occupy.
func (p *Procedure) FrameSize() int { return p.localAddressOffset }
