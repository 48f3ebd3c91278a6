package cpu

import (
	"testing"

	"github.com/rvzk/rvzk/pkg/air"
	"github.com/rvzk/rvzk/pkg/trace"
)

func addiStep(pc uint32, rdIsX0 bool) *trace.ProgramStep {
	return trace.NewProgramStep(pc, trace.OpAddi, trace.IType,
		trace.Word{}, trace.Word{}, true, trace.Word{1, 0, 0, 0}, true, rdIsX0)
}

func TestFillMainTraceSetsSelectors(t *testing.T) {
	tbl, err := trace.NewTable(trace.LogLanes)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}

	c := New()
	c.FillMainTrace(tbl, 0, addiStep(0, false))
	c.FillMainTrace(tbl, 1, addiStep(4, true))

	if got := tbl.Column(0, trace.IsAdd)[0].ToUint32(); got != 1 {
		t.Fatalf("row 0 IsAdd = %d, want 1", got)
	}

	if got := tbl.Column(0, trace.RdNonzero)[0].ToUint32(); got != 1 {
		t.Fatalf("row 0 RdNonzero = %d, want 1", got)
	}

	if got := tbl.Column(1, trace.RdNonzero)[0].ToUint32(); got != 0 {
		t.Fatalf("row 1 RdNonzero = %d, want 0 (rd is x0)", got)
	}

	if got := tbl.Column(1, trace.Clk)[0].ToUint32(); got != 1 {
		t.Fatalf("row 1 Clk = %d, want 1", got)
	}
}

func TestAddConstraintsAreWellFormed(t *testing.T) {
	eval := air.NewMaskEvaluator()
	c := New()
	c.AddConstraints(eval)

	if len(eval.Constraints) != 4 {
		t.Fatalf("expected 4 constraints, got %d", len(eval.Constraints))
	}
}
