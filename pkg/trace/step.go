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

package trace

import "errors"

// InstructionType distinguishes the operand shape of an instruction, as
// carried by the upstream VM interpreter's step stream.
type InstructionType uint8

// The closed set of instruction types this core recognizes.
const (
	RType InstructionType = iota
	IType
)

// ErrMissingResult is returned by ProgramStep.GetResult when the step's
// instruction has no destination (e.g. a branch or store).
var ErrMissingResult = errors.New("trace: instruction does not have a result")

// ProgramStep is a read-only view of one executed instruction: opcode,
// source operand values, the architectural result, and the
// effective-destination flag. It does not own the step data; it is valid
// only for the duration of one row's processing.
type ProgramStep struct {
	Pc   uint32
	Op   Opcode
	Type InstructionType

	valueB Word
	valueC Word
	// valueCSignExtended records whether ValueC was produced by sign-
	// extending a narrower immediate (true for most I-type immediates).
	valueCSignExtended bool

	result    Word
	hasResult bool

	rdIsX0 bool
}

// NewProgramStep constructs a program-step view. result/hasResult model the
// "may be absent" result accessor; rdIsX0 marks the destination register as
// the hard-wired zero register.
func NewProgramStep(
	pc uint32,
	op Opcode,
	typ InstructionType,
	valueB, valueC Word,
	valueCSignExtended bool,
	result Word,
	hasResult bool,
	rdIsX0 bool,
) *ProgramStep {
	return &ProgramStep{
		Pc:                 pc,
		Op:                 op,
		Type:               typ,
		valueB:             valueB,
		valueC:             valueC,
		valueCSignExtended: valueCSignExtended,
		result:             result,
		hasResult:          hasResult,
		rdIsX0:             rdIsX0,
	}
}

// GetValueB returns the first source operand.
func (s *ProgramStep) GetValueB() Word {
	return s.valueB
}

// GetValueC returns the second source operand, plus whether it was sign-
// extended from a narrower immediate.
func (s *ProgramStep) GetValueC() (Word, bool) {
	return s.valueC, s.valueCSignExtended
}

// GetResult returns the architectural result word, or ErrMissingResult if
// this instruction has no destination.
func (s *ProgramStep) GetResult() (Word, error) {
	if !s.hasResult {
		return Word{}, ErrMissingResult
	}

	return s.result, nil
}

// IsValueAX0 reports whether the destination register is the hard-wired
// zero register.
func (s *ProgramStep) IsValueAX0() bool {
	return s.rdIsX0
}
