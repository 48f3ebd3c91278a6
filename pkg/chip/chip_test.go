package chip

import (
	"testing"

	"github.com/rvzk/rvzk/pkg/chips/add"
	"github.com/rvzk/rvzk/pkg/chips/cpu"
	"github.com/rvzk/rvzk/pkg/trace"
)

func addiStep(pc uint32, b, c byte) *trace.ProgramStep {
	sum := b + c
	return trace.NewProgramStep(pc, trace.OpAddi, trace.IType,
		trace.Word{b, 0, 0, 0}, trace.Word{c, 0, 0, 0}, true, trace.Word{sum, 0, 0, 0}, true, false)
}

// TestFillStepsMarksPaddingBeyondLastStep covers the padding contract
// (§6): rows beyond the last executed step are left zero except for
// IsPadding, which the registry sets to 1.
func TestFillStepsMarksPaddingBeyondLastStep(t *testing.T) {
	tbl, err := trace.NewTable(trace.LogLanes)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}

	registry := NewRegistry(cpu.New(), add.New())
	steps := []*trace.ProgramStep{addiStep(0, 1, 2)}

	if err := registry.FillSteps(tbl, steps); err != nil {
		t.Fatalf("FillSteps: %v", err)
	}

	if v := tbl.Column(0, trace.IsPadding)[0]; !v.IsZero() {
		t.Fatalf("row 0 (a real step): IsPadding = %s, want 0", v)
	}

	for row := uint(1); row < tbl.NumRows(); row++ {
		if v := tbl.Column(row, trace.IsPadding)[0]; v.ToUint32() != 1 {
			t.Fatalf("row %d (padding): IsPadding = %s, want 1", row, v)
		}

		for _, g := range trace.MainSchema.Groups() {
			if g.Name == trace.IsPadding {
				continue
			}

			for _, v := range tbl.Column(row, g.Name) {
				if !v.IsZero() {
					t.Fatalf("padding row %d column %q: expected zero, got %s", row, g.Name, v)
				}
			}
		}
	}
}

func TestFillStepsRejectsMoreStepsThanRows(t *testing.T) {
	tbl, err := trace.NewTable(trace.LogLanes)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}

	steps := make([]*trace.ProgramStep, tbl.NumRows()+1)
	for i := range steps {
		steps[i] = addiStep(uint32(i*4), 1, 1)
	}

	registry := NewRegistry(cpu.New(), add.New())
	if err := registry.FillSteps(tbl, steps); err == nil {
		t.Fatalf("expected TooManyStepsError")
	}
}

func TestRegistryChipsPreservesRegistrationOrder(t *testing.T) {
	cpuChip := cpu.New()
	addChip := add.New()

	registry := NewRegistry(cpuChip, addChip)
	chips := registry.Chips()

	if len(chips) != 2 || chips[0].Name() != "cpu" || chips[1].Name() != "add" {
		t.Fatalf("unexpected chip order: %v", chips)
	}
}
