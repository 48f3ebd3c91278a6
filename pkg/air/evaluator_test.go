package air

import (
	"reflect"
	"testing"

	"github.com/rvzk/rvzk/field/m31"
	"github.com/rvzk/rvzk/pkg/trace"
)

// sampleConstraints exercises a representative slice of RowEvaluator reads,
// standing in for a chip's AddConstraints method.
func sampleConstraints(e RowEvaluator) {
	isAdd := e.ColumnEval(trace.IsAdd)[0]
	a := e.ColumnEval(trace.ValueA)
	b := e.ColumnEvalNextRow(trace.ValueB)
	isFirst := e.PreprocessedColumnEval(trace.IsFirst)[0]
	isLastNext := e.PreprocessedColumnEvalNextRow(trace.IsLast)[0]
	opcode := e.ProgramColumnEval(trace.ProgramOpcode)[0]

	e.AddConstraint("sample:0", isAdd.Mul(a[0].Sub(b[0])))
	e.AddConstraint("sample:1", isFirst.Mul(isLastNext).Mul(opcode))
}

func TestMaskOrderIsDeterministic(t *testing.T) {
	e1 := NewMaskEvaluator()
	sampleConstraints(e1)

	e2 := NewMaskEvaluator()
	sampleConstraints(e2)

	if len(e1.Constraints) != len(e2.Constraints) {
		t.Fatalf("constraint counts differ: %d vs %d", len(e1.Constraints), len(e2.Constraints))
	}

	for i := range e1.Constraints {
		v1 := e1.Constraints[i].Expr.Vars()
		v2 := e2.Constraints[i].Expr.Vars()

		if !reflect.DeepEqual(v1, v2) {
			t.Fatalf("constraint %d: mask order differs: %v vs %v", i, v1, v2)
		}

		if e1.Constraints[i].Label != e2.Constraints[i].Label {
			t.Fatalf("constraint %d: labels differ", i)
		}
	}
}

func TestMaskOrderMatchesSchemaOrder(t *testing.T) {
	e := NewMaskEvaluator()

	// Pc and Clk (width 1 each) precede IsAdd in MainSchema, each consuming
	// a (current,next) pair, so IsAdd's current mask is index 4.
	isAdd := e.ColumnEval(trace.IsAdd)[0]
	isAddNext := e.ColumnEvalNextRow(trace.IsAdd)[0]

	if got := isAdd.Vars(); len(got) != 1 || got[0] != 4 {
		t.Fatalf("IsAdd current mask = %v, want [4]", got)
	}

	if isAddNext.Vars()[0] != isAdd.Vars()[0]+1 {
		t.Fatalf("expected next-row mask to immediately follow current-row mask")
	}
}

func TestAssertEvaluatorFoldsToResidual(t *testing.T) {
	tbl, err := trace.NewTable(trace.LogLanes)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}

	tbl.FillColumns(0, trace.Word{5, 0, 0, 0}, trace.ValueA)

	eval := NewAssertEvaluator(tbl, 0)
	a := eval.ColumnEval(trace.ValueA)
	eval.AddConstraint("check", a[0].Sub(Const(m31.New(5))))

	if len(eval.Evaluated) != 1 {
		t.Fatalf("expected 1 evaluated constraint, got %d", len(eval.Evaluated))
	}

	if !eval.Evaluated[0].Residual.IsZero() {
		t.Fatalf("expected zero residual, got %s", eval.Evaluated[0].Residual)
	}
}
