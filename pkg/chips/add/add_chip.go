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

// Package add implements the ADD/ADDI chip: limb-wise addition with carry
// propagation over W-byte words, and the effective-destination masking
// shared with every chip that writes a result register.
package add

import (
	"fmt"

	"github.com/rvzk/rvzk/field/m31"
	"github.com/rvzk/rvzk/pkg/air"
	"github.com/rvzk/rvzk/pkg/trace"
)

// Chip fills ValueA, ValueAEffective, ValueB, ValueC and CarryFlag for
// ADD/ADDI rows, and leaves every other row's columns at their
// zero-initialized default.
type Chip struct{}

// New constructs an ADD chip.
func New() *Chip {
	return &Chip{}
}

// Name implements chip.Chip.
func (c *Chip) Name() string {
	return "add"
}

// FillMainTrace implements chip.Chip. Non-ADD rows are left untouched: the
// columns this chip owns stay at their zero default, which the self-check
// harness must never mistake for a valid ADD row (IsAdd gates that).
func (c *Chip) FillMainTrace(t *trace.Table, row uint, step *trace.ProgramStep) {
	if !step.Op.IsAddLike() {
		return
	}

	result, err := step.GetResult()
	if err != nil {
		panic(fmt.Sprintf("add: %v", err))
	}

	valueB := step.GetValueB()
	valueC, _ := step.GetValueC()

	var sum trace.Word
	var carry [trace.WordWidth]byte

	sum[0], carry[0] = overflowingAdd(valueB[0], valueC[0])

	for i := 1; i < trace.WordWidth; i++ {
		s, c1 := overflowingAdd(valueB[i], carry[i-1])
		s, c2 := overflowingAdd(s, valueC[i])
		// A single limb addition of two bytes plus a 0/1 carry can overflow
		// at most once, so c1 and c2 are never both 1.
		sum[i] = s
		carry[i] = c1 | c2
	}

	if sum != result {
		panic(fmt.Sprintf("add: recomputed sum %v does not match step result %v", sum, result))
	}

	// The effective value is masked from the step's own rd_is_x0 flag rather
	// than from the CPU chip's RdNonzero column, so this chip reads no column
	// another chip writes and the fill order of the two chips does not matter.
	effective := sum
	if step.IsValueAX0() {
		effective = trace.Word{}
	}

	t.FillColumnsBytes(row, sum[:], trace.ValueA)
	t.FillColumnsBytes(row, effective[:], trace.ValueAEffective)
	t.FillColumns(row, valueB, trace.ValueB)
	t.FillColumns(row, valueC, trace.ValueC)
	t.FillColumnsBytes(row, carry[:], trace.CarryFlag)
}

// AddConstraints implements chip.Chip. Carry-bit range checks, byte-range
// checks on A/B/C, and the ValueAEffective selector constraint are not
// emitted by this chip. The CPU chip constrains RdNonzero to be binary; no
// chip in this core range-checks limb bytes or carry bits, or ties
// ValueAEffective to ValueA.
func (c *Chip) AddConstraints(eval air.RowEvaluator) {
	isAdd := eval.ColumnEval(trace.IsAdd)[0]
	modulus := air.Const(m31.New(256))

	carryFlag := eval.ColumnEval(trace.CarryFlag)
	valueB := eval.ColumnEval(trace.ValueB)
	valueC := eval.ColumnEval(trace.ValueC)
	valueA := eval.ColumnEval(trace.ValueA)

	zero := air.Const(m31.Zero())

	for i := 0; i < trace.WordWidth; i++ {
		prevCarry := zero
		if i > 0 {
			prevCarry = carryFlag[i-1]
		}

		lhs := valueA[i].Add(carryFlag[i].Mul(modulus))
		rhs := valueB[i].Add(valueC[i]).Add(prevCarry)

		eval.AddConstraint(fmt.Sprintf("add:limb%d", i), isAdd.Mul(lhs.Sub(rhs)))
	}
}

// overflowingAdd returns a+b truncated to 8 bits, and 1 if the addition
// overflowed a byte, 0 otherwise.
func overflowingAdd(a, b byte) (byte, byte) {
	sum := a + b
	if sum < a {
		return sum, 1
	}

	return sum, 0
}
