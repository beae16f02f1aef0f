package symbols

import "testing"

func TestCreateConstantInterning(t *testing.T) {
	tab := New()

	a := tab.CreateConstant(42, "")
	b := tab.CreateConstant(42, "")

	if a.Index != b.Index {
		t.Errorf("two CreateConstant(42) calls got different pool indices: %d vs %d", a.Index, b.Index)
	}
	if len(tab.ConstantPool()) != 1 {
		t.Errorf("ConstantPool() has %d entries, want 1", len(tab.ConstantPool()))
	}
}

func TestCreateConstantDistinctValues(t *testing.T) {
	tab := New()

	a := tab.CreateConstant(1, "")
	b := tab.CreateConstant(2, "")

	if a.Index == b.Index {
		t.Errorf("distinct values %d and %d share pool index %d", a.Value, b.Value, a.Index)
	}
}

func TestLookupGlobalFindsOuterScope(t *testing.T) {
	tab := New()
	tab.CreateVariable("N")

	if _, err := tab.CreateProcedure("P"); err != nil {
		t.Fatalf("CreateProcedure: %v", err)
	}

	entry := tab.LookupGlobal("N", nil)
	if entry.Var == nil {
		t.Fatalf("LookupGlobal(%q) found nothing, want the main procedure's variable", "N")
	}
	if entry.Var.Owner != tab.Main() {
		t.Errorf("LookupGlobal(%q).Var.Owner = %v, want Main()", "N", entry.Var.Owner)
	}
}

func TestLookupLocalShadowsOuterScope(t *testing.T) {
	tab := New()
	tab.CreateVariable("N")

	if _, err := tab.CreateProcedure("P"); err != nil {
		t.Fatalf("CreateProcedure: %v", err)
	}
	inner := tab.CreateVariable("N")

	entry := tab.LookupGlobal("N", nil)
	if entry.Var != inner {
		t.Errorf("LookupGlobal(%q) did not find the shadowing inner declaration", "N")
	}
}

func TestEndProcedureReturnsToParent(t *testing.T) {
	tab := New()
	main := tab.Current()

	if _, err := tab.CreateProcedure("P"); err != nil {
		t.Fatalf("CreateProcedure: %v", err)
	}
	if tab.Current() == main {
		t.Fatalf("Current() did not change after CreateProcedure")
	}

	if err := tab.EndProcedure(); err != nil {
		t.Fatalf("EndProcedure: %v", err)
	}
	if tab.Current() != main {
		t.Errorf("Current() after EndProcedure = %v, want main", tab.Current())
	}
}

func TestEndProcedureOnMainDoesNotError(t *testing.T) {
	tab := New()
	if err := tab.EndProcedure(); err != nil {
		t.Fatalf("EndProcedure on main procedure returned error: %v", err)
	}
}

func TestFinalizeParametersReversesOffsets(t *testing.T) {
	tab := New()
	if _, err := tab.CreateProcedure("P"); err != nil {
		t.Fatalf("CreateProcedure: %v", err)
	}
	a := tab.CreateParameter("A")
	b := tab.CreateParameter("B")
	c := tab.CreateParameter("C")

	tab.FinalizeParameters()

	if a.AddressOffset <= b.AddressOffset || b.AddressOffset <= c.AddressOffset {
		t.Errorf("parameter offsets not reversed: A=%d B=%d C=%d", a.AddressOffset, b.AddressOffset, c.AddressOffset)
	}
}

func TestTurnLastVariableIntoArrayGrowsFrame(t *testing.T) {
	tab := New()
	tab.CreateVariable("A")
	before := tab.Current().FrameSize()

	if err := tab.TurnLastVariableIntoArray(10); err != nil {
		t.Fatalf("TurnLastVariableIntoArray: %v", err)
	}

	after := tab.Current().FrameSize()
	if after-before != 4*(10-1) {
		t.Errorf("frame size grew by %d, want %d", after-before, 4*9)
	}
}
