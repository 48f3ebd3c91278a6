// Copyright rvzk Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package json decodes a JSON-encoded stream of execution blocks — the
// shape the upstream VM interpreter collaborator is specified to emit —
// into the flat, row-ordered slice of trace.ProgramStep views the chip
// registry consumes. It is a thin reshaping adapter over already-executed
// data: it never executes an instruction, it only replays each step's
// recorded operands (read from the block's running register snapshot) and
// its recorded result. Grounded in the teacher's own
// pkg/trace/json/reader.go, which plays the same "parse a trace expressed
// in JSON notation" role for a different wire shape (see DESIGN.md).
package json

import (
	"encoding/json"
	"fmt"

	"github.com/rvzk/rvzk/field/m31"
	"github.com/rvzk/rvzk/pkg/trace"
)

// numRegisters is the architectural register file size (x0..x31).
const numRegisters = 32

// execBlockDoc is the top-level wire shape: {"blocks": [...]}.
type execBlockDoc struct {
	Blocks []blockDoc `json:"blocks"`
}

// blockDoc is one execution block: an initial register snapshot and an
// ordered list of steps.
type blockDoc struct {
	Regs  []uint32  `json:"regs"`
	Steps []stepDoc `json:"steps"`
}

// stepDoc is one executed instruction as the interpreter collaborator
// reports it: opcode, instruction type, operand register indices (or an
// immediate for I-type), and the post-execution result. Result is a
// pointer so a step with no destination (e.g. a branch or store) can omit
// it entirely, matching ProgramStep.GetResult's "may be absent" contract.
type stepDoc struct {
	Pc     uint32                  `json:"pc"`
	Opcode string                  `json:"opcode"`
	Type   string                  `json:"type"`
	Rd     int                     `json:"rd"`
	Rs1    int                     `json:"rs1"`
	Rs2    int                     `json:"rs2"`
	Imm    *int32                  `json:"imm,omitempty"`
	Result *[trace.WordWidth]byte  `json:"result,omitempty"`
}

// Decode parses a JSON-encoded stream of execution blocks into a flat
// slice of program-step views, one per executed instruction, in the order
// the blocks and their steps appear. The returned steps are ready to be
// handed, one per row starting at row 0, to chip.Registry.FillSteps.
func Decode(data []byte) ([]*trace.ProgramStep, error) {
	var doc execBlockDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("trace/json: %w", err)
	}

	var steps []*trace.ProgramStep

	for bi, b := range doc.Blocks {
		regs := make([]uint32, numRegisters)
		copy(regs, b.Regs)

		for si, s := range b.Steps {
			step, err := decodeStep(regs, s)
			if err != nil {
				return nil, fmt.Errorf("trace/json: block %d step %d: %w", bi, si, err)
			}

			steps = append(steps, step)
		}
	}

	return steps, nil
}

func decodeStep(regs []uint32, s stepDoc) (*trace.ProgramStep, error) {
	op := trace.ParseOpcode(s.Opcode)
	if op == trace.OpUnknown && s.Opcode != "UNKNOWN" {
		return nil, fmt.Errorf("unknown opcode %q", s.Opcode)
	}

	typ, err := parseType(s.Type)
	if err != nil {
		return nil, err
	}

	if err := checkReg(s.Rd); err != nil {
		return nil, fmt.Errorf("rd: %w", err)
	}

	if err := checkReg(s.Rs1); err != nil {
		return nil, fmt.Errorf("rs1: %w", err)
	}

	valueB := trace.WordFromUint32(regs[s.Rs1])

	var (
		valueC       trace.Word
		signExtended bool
	)

	switch typ {
	case trace.IType:
		if s.Imm == nil {
			return nil, fmt.Errorf("I-type step missing imm")
		}

		valueC = trace.WordFromUint32(uint32(*s.Imm))
		signExtended = true
	case trace.RType:
		if err := checkReg(s.Rs2); err != nil {
			return nil, fmt.Errorf("rs2: %w", err)
		}

		valueC = trace.WordFromUint32(regs[s.Rs2])
	}

	var result trace.Word

	hasResult := s.Result != nil
	if hasResult {
		result = trace.Word(*s.Result)
	}

	rdIsX0 := s.Rd == 0

	step := trace.NewProgramStep(s.Pc, op, typ, valueB, valueC, signExtended, result, hasResult, rdIsX0)

	if hasResult && !rdIsX0 {
		regs[s.Rd] = result.Uint32()
	}

	return step, nil
}

func parseType(s string) (trace.InstructionType, error) {
	switch s {
	case "R":
		return trace.RType, nil
	case "I":
		return trace.IType, nil
	default:
		return 0, fmt.Errorf("unknown instruction type %q", s)
	}
}

func checkReg(r int) error {
	if r < 0 || r >= numRegisters {
		return fmt.Errorf("register index %d out of range [0,%d)", r, numRegisters)
	}

	return nil
}

// BuildProgramTable derives the program schema (§3: "indexed by program
// counter, not by execution step") from the distinct instructions observed
// across steps, and writes them into t's program columns. Instructions are
// 4-byte aligned, so a program row's index is its Pc/WordWidth; a Pc beyond
// the trace's fixed row count has no row to occupy and is skipped; a
// conforming caller sizes log_size so that every instruction in the
// program image fits.
func BuildProgramTable(t *trace.Table, steps []*trace.ProgramStep) {
	seen := make(map[uint32]bool, len(steps))

	for _, s := range steps {
		if seen[s.Pc] {
			continue
		}

		seen[s.Pc] = true

		row := uint(s.Pc / trace.WordWidth)
		if row >= t.NumRows() {
			continue
		}

		t.SetProgramRow(row, m31.New(s.Pc), m31.New(uint32(s.Op)), m31.One())
	}
}
