package json

import (
	"testing"

	"github.com/rvzk/rvzk/pkg/trace"
)

func TestDecodeFibonacciPrefix(t *testing.T) {
	data := []byte(`{
		"blocks": [
			{
				"regs": [0,0,0,0],
				"steps": [
					{"pc": 0, "opcode": "ADDI", "type": "I", "rd": 1, "rs1": 0, "imm": 1, "result": [1,0,0,0]},
					{"pc": 4, "opcode": "ADD", "type": "R", "rd": 2, "rs1": 1, "rs2": 0, "result": [1,0,0,0]},
					{"pc": 8, "opcode": "ADD", "type": "R", "rd": 3, "rs1": 2, "rs2": 1, "result": [2,0,0,0]}
				]
			}
		]
	}`)

	steps, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if len(steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(steps))
	}

	if steps[0].Op != trace.OpAddi {
		t.Fatalf("steps[0].Op = %v, want ADDI", steps[0].Op)
	}

	valueC, sext := steps[1].GetValueC()
	if sext {
		t.Fatalf("R-type step unexpectedly marked sign-extended")
	}

	if valueC.Uint32() != 0 {
		t.Fatalf("steps[1] rs2 (x0) = %d, want 0", valueC.Uint32())
	}

	result, err := steps[2].GetResult()
	if err != nil {
		t.Fatalf("GetResult: %v", err)
	}

	if result.Uint32() != 2 {
		t.Fatalf("steps[2] result = %d, want 2", result.Uint32())
	}
}

func TestDecodeRejectsUnknownOpcode(t *testing.T) {
	data := []byte(`{"blocks":[{"regs":[0,0],"steps":[
		{"pc":0,"opcode":"NOPE","type":"R","rd":1,"rs1":0,"rs2":0,"result":[0,0,0,0]}
	]}]}`)

	if _, err := Decode(data); err == nil {
		t.Fatalf("expected an error for an unknown opcode")
	}
}

func TestDecodeRejectsMissingImmediate(t *testing.T) {
	data := []byte(`{"blocks":[{"regs":[0],"steps":[
		{"pc":0,"opcode":"ADDI","type":"I","rd":1,"rs1":0,"result":[0,0,0,0]}
	]}]}`)

	if _, err := Decode(data); err == nil {
		t.Fatalf("expected an error for a missing I-type immediate")
	}
}

func TestDecodeTracksRegisterFileAcrossSteps(t *testing.T) {
	data := []byte(`{
		"blocks": [
			{
				"regs": [0,0,0],
				"steps": [
					{"pc": 0, "opcode": "ADDI", "type": "I", "rd": 1, "rs1": 0, "imm": 250, "result": [250,0,0,0]},
					{"pc": 4, "opcode": "ADDI", "type": "I", "rd": 2, "rs1": 1, "imm": 10, "result": [4,1,0,0]}
				]
			}
		]
	}`)

	steps, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	valueB := steps[1].GetValueB()
	if valueB.Uint32() != 250 {
		t.Fatalf("second step's rs1 snapshot = %d, want 250 (the first step's result)", valueB.Uint32())
	}
}

func TestDecodeMissingResultIsAbsent(t *testing.T) {
	data := []byte(`{"blocks":[{"regs":[0,0],"steps":[
		{"pc":0,"opcode":"BEQ","type":"R","rd":0,"rs1":0,"rs2":1}
	]}]}`)

	steps, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if _, err := steps[0].GetResult(); err != trace.ErrMissingResult {
		t.Fatalf("expected ErrMissingResult, got %v", err)
	}
}

func TestBuildProgramTableSkipsBeyondTraceSize(t *testing.T) {
	tbl, err := trace.NewTable(trace.LogLanes)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}

	// pc 64 maps to row 16, one past the last row of a LogLanes-sized table;
	// BuildProgramTable must skip it rather than panic on the row check.
	steps, err := Decode([]byte(`{"blocks":[{"regs":[0,0],"steps":[
		{"pc":0,"opcode":"ADDI","type":"I","rd":1,"rs1":0,"imm":1,"result":[1,0,0,0]},
		{"pc":64,"opcode":"ADDI","type":"I","rd":2,"rs1":1,"imm":1,"result":[2,0,0,0]}
	]}]}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	BuildProgramTable(tbl, steps)

	pc := tbl.ProgramColumn(0, trace.ProgramPc)
	if pc[0].ToUint32() != 0 {
		t.Fatalf("ProgramPc[0] = %d, want 0", pc[0].ToUint32())
	}

	memFlag := tbl.ProgramColumn(0, trace.ProgramMemoryFlag)
	if memFlag[0].IsZero() {
		t.Fatalf("ProgramMemoryFlag[0] should be set for a real instruction")
	}
}
