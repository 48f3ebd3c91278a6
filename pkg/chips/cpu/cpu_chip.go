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

// Package cpu implements the CPU/selector chip: the minimal chip that owns
// the opcode-selector and bookkeeping columns every other chip reads but
// none may write.
package cpu

import (
	"github.com/rvzk/rvzk/field/m31"
	"github.com/rvzk/rvzk/pkg/air"
	"github.com/rvzk/rvzk/pkg/trace"
)

// Chip fills Pc, Clk, IsAdd and RdNonzero for every non-padding row, and
// constrains the selector columns' own well-formedness.
type Chip struct {
	clk uint32
}

// New constructs a fresh CPU chip with its clock at zero.
func New() *Chip {
	return &Chip{}
}

// Name implements chip.Chip.
func (c *Chip) Name() string {
	return "cpu"
}

// FillMainTrace implements chip.Chip.
func (c *Chip) FillMainTrace(t *trace.Table, row uint, step *trace.ProgramStep) {
	*t.ColumnMut(row, trace.Pc)[0] = m31.New(step.Pc)
	*t.ColumnMut(row, trace.Clk)[0] = m31.New(c.clk)
	c.clk++

	isAdd := byte(0)
	if step.Op.IsAddLike() {
		isAdd = 1
	}
	t.FillColumnsBytes(row, []byte{isAdd}, trace.IsAdd)

	rdNonzero := byte(1)
	if step.IsValueAX0() {
		rdNonzero = 0
	}
	t.FillColumnsBytes(row, []byte{rdNonzero}, trace.RdNonzero)
}

// AddConstraints implements chip.Chip.
func (c *Chip) AddConstraints(eval air.RowEvaluator) {
	one := air.Const(m31.One())

	isAdd := eval.ColumnEval(trace.IsAdd)[0]
	eval.AddConstraint("cpu:is_add_binary", isAdd.Mul(one.Sub(isAdd)))

	isPadding := eval.ColumnEval(trace.IsPadding)[0]
	eval.AddConstraint("cpu:is_padding_binary", isPadding.Mul(one.Sub(isPadding)))

	// Gated by (1 - IsLast): the trace wraps for row evaluation purposes
	// (successor of the last row is row 0), and row 0 is never padding, so
	// without this gate the monotonic check would spuriously fire at the
	// trace boundary.
	isPaddingNext := eval.ColumnEvalNextRow(trace.IsPadding)[0]
	isLast := eval.PreprocessedColumnEval(trace.IsLast)[0]
	eval.AddConstraint("cpu:is_padding_monotonic", isPadding.Mul(one.Sub(isPaddingNext)).Mul(one.Sub(isLast)))

	rdNonzero := eval.ColumnEval(trace.RdNonzero)[0]
	eval.AddConstraint("cpu:rd_nonzero_binary", rdNonzero.Mul(one.Sub(rdNonzero)))
}
