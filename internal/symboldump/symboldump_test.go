package symboldump

import (
	"testing"

	"github.com/cwbudde/pl0c/internal/symbols"
	"github.com/tidwall/gjson"
)

func TestJSONRendersMainProcedure(t *testing.T) {
	tab := symbols.New()
	tab.CreateConstant(42, "ANSWER")
	tab.CreateVariable("N")

	doc, err := JSON(tab)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	if name := gjson.Get(doc, "procedures.0.name").String(); name != "" {
		t.Errorf("main procedure name = %q, want empty", name)
	}
	if idx := gjson.Get(doc, "procedures.0.index").Int(); idx != 0 {
		t.Errorf("main procedure index = %d, want 0", idx)
	}
	if v := gjson.Get(doc, "procedures.0.variables.0.name").String(); v != "N" {
		t.Errorf("variables.0.name = %q, want %q", v, "N")
	}
	if c := gjson.Get(doc, "procedures.0.constants.0.value").Int(); c != 42 {
		t.Errorf("constants.0.value = %d, want 42", c)
	}
	if pool := gjson.Get(doc, "constantPool.0").Int(); pool != 42 {
		t.Errorf("constantPool.0 = %d, want 42", pool)
	}
}

func TestJSONRendersNestedProcedureAndParameters(t *testing.T) {
	tab := symbols.New()

	proc, err := tab.CreateProcedure("P")
	if err != nil {
		t.Fatalf("CreateProcedure: %v", err)
	}
	tab.CreateParameter("A")
	tab.FinalizeParameters()
	if err := tab.EndProcedure(); err != nil {
		t.Fatalf("EndProcedure: %v", err)
	}

	doc, err := JSON(tab)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	if got := gjson.Get(doc, "procedures.0.children.0").Int(); int(got) != proc.Index {
		t.Errorf("main's children.0 = %d, want %d", got, proc.Index)
	}
	if name := gjson.Get(doc, "procedures.1.name").String(); name != "P" {
		t.Errorf("procedures.1.name = %q, want %q", name, "P")
	}
	if parent := gjson.Get(doc, "procedures.1.parent").Int(); parent != 0 {
		t.Errorf("procedures.1.parent = %d, want 0", parent)
	}
	if param := gjson.Get(doc, "procedures.1.variables.0.parameter").Bool(); !param {
		t.Error("procedures.1.variables.0.parameter = false, want true")
	}
}

func TestJSONRendersArrayLength(t *testing.T) {
	tab := symbols.New()
	tab.CreateVariable("A")
	if err := tab.TurnLastVariableIntoArray(10); err != nil {
		t.Fatalf("TurnLastVariableIntoArray: %v", err)
	}

	doc, err := JSON(tab)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	if got := gjson.Get(doc, "procedures.0.variables.0.arrayLength").Int(); got != 10 {
		t.Errorf("variables.0.arrayLength = %d, want 10", got)
	}
}
