package selfcheck

import (
	"testing"

	"github.com/rvzk/rvzk/pkg/chip"
	"github.com/rvzk/rvzk/pkg/chips/add"
	"github.com/rvzk/rvzk/pkg/chips/cpu"
	"github.com/rvzk/rvzk/pkg/trace"
)

func addiStep(pc uint32, b, c byte) *trace.ProgramStep {
	sum := b + c
	return trace.NewProgramStep(pc, trace.OpAddi, trace.IType,
		trace.Word{b, 0, 0, 0}, trace.Word{c, 0, 0, 0}, true, trace.Word{sum, 0, 0, 0}, true, false)
}

func subStep(pc uint32) *trace.ProgramStep {
	return trace.NewProgramStep(pc, trace.OpSub, trace.RType,
		trace.Word{5, 0, 0, 0}, trace.Word{3, 0, 0, 0}, false, trace.Word{2, 0, 0, 0}, true, false)
}

func buildRegistry() *chip.Registry {
	return chip.NewRegistry(cpu.New(), add.New())
}

func TestRunPassesOnValidTrace(t *testing.T) {
	tbl, err := trace.NewTable(trace.LogLanes)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}

	steps := []*trace.ProgramStep{
		addiStep(0, 1, 0),
		addiStep(4, 2, 1),
		addiStep(8, 3, 2),
	}

	registry := buildRegistry()
	if err := registry.FillSteps(tbl, steps); err != nil {
		t.Fatalf("FillSteps: %v", err)
	}

	report := Run(tbl, registry, nil)
	if !report.Passed() {
		t.Fatalf("expected pass, got violation: %v", report.Violation)
	}
}

// TestRunToleratesNonAddRows covers scenario S6: a non-ADD row (IsAdd=0)
// must not trip the ADD chip's constraints even though ValueA/CarryFlag
// are left at their zero default.
func TestRunToleratesNonAddRows(t *testing.T) {
	tbl, err := trace.NewTable(trace.LogLanes)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}

	steps := []*trace.ProgramStep{subStep(0)}

	registry := buildRegistry()
	if err := registry.FillSteps(tbl, steps); err != nil {
		t.Fatalf("FillSteps: %v", err)
	}

	report := Run(tbl, registry, nil)
	if !report.Passed() {
		t.Fatalf("expected pass on non-ADD row, got violation: %v", report.Violation)
	}
}

// TestRunDetectsCorruptedWitness covers scenario S5: a constraint violation
// introduced after filling must be caught and reported with the offending
// row and constraint name.
func TestRunDetectsCorruptedWitness(t *testing.T) {
	tbl, err := trace.NewTable(trace.LogLanes)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}

	steps := []*trace.ProgramStep{addiStep(0, 10, 20)}

	registry := buildRegistry()
	if err := registry.FillSteps(tbl, steps); err != nil {
		t.Fatalf("FillSteps: %v", err)
	}

	tbl.FillColumnsBytes(0, []byte{255, 0, 0, 0}, trace.ValueA)

	report := Run(tbl, registry, nil)
	if report.Passed() {
		t.Fatalf("expected a violation after corrupting ValueA")
	}

	if report.Violation.Row != 0 {
		t.Fatalf("violation row = %d, want 0", report.Violation.Row)
	}
}

func TestRunTracksCoverage(t *testing.T) {
	tbl, err := trace.NewTable(trace.LogLanes)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}

	steps := []*trace.ProgramStep{addiStep(0, 1, 0)}

	registry := buildRegistry()
	if err := registry.FillSteps(tbl, steps); err != nil {
		t.Fatalf("FillSteps: %v", err)
	}

	report := Run(tbl, registry, nil)
	if !report.Passed() {
		t.Fatalf("expected pass, got violation: %v", report.Violation)
	}

	if report.Coverage.Len() == 0 {
		t.Fatalf("expected non-empty coverage")
	}

	if len(report.Coverage.Unexercised()) != 0 {
		t.Fatalf("expected every constraint exercised, got unexercised: %v", report.Coverage.Unexercised())
	}
}
