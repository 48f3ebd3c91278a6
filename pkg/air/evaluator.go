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

package air

import (
	"github.com/rvzk/rvzk/field/m31"
	"github.com/rvzk/rvzk/pkg/trace"
)

var (
	_ RowEvaluator = (*MaskEvaluator)(nil)
	_ RowEvaluator = (*AssertEvaluator)(nil)
)

// RowEvaluator is the symbolic view of a single trace row (and its
// successor) presented to constraint code. Every chip's AddConstraints
// method is written purely against this interface, so it runs unchanged
// whether it is building the arithmetization (MaskEvaluator) or being
// exercised row-by-row by the self-check harness (AssertEvaluator).
type RowEvaluator interface {
	// ColumnEval returns the current row of a main column group.
	ColumnEval(col string) []Expr
	// ColumnEvalNextRow returns the next row (mod N) of a main column group.
	ColumnEvalNextRow(col string) []Expr
	// PreprocessedColumnEval returns the current row of a preprocessed
	// column group.
	PreprocessedColumnEval(col string) []Expr
	// PreprocessedColumnEvalNextRow returns the next row (mod N) of a
	// preprocessed column group.
	PreprocessedColumnEvalNextRow(col string) []Expr
	// ProgramColumnEval returns the current row of a program column group.
	ProgramColumnEval(col string) []Expr
	// AddConstraint registers expr as a labeled expression that must
	// evaluate to zero on every row of the committed domain. label
	// identifies the constraint for reporting (e.g. "add:limb0").
	AddConstraint(label string, expr Expr)
}

// cell pairs the current-row and next-row mask (or constant) for one raw
// column cell.
type cell struct {
	current, next Expr
}

// MaskEvaluator is constructed once at the start of constraint emission. It
// draws fresh Var leaves from a deterministic stream of interaction masks,
// consumed in exactly the order required by §4.4: (main current, main
// next) for every main cell in schema order, then the same for
// preprocessed cells, then (program current) for every program cell. This
// ordering is the sole externally observable contract between prover and
// verifier; it must not depend on chip registration order.
type MaskEvaluator struct {
	main         []cell
	preprocessed []cell
	program      []Expr

	Constraints []NamedConstraint
}

// NamedConstraint pairs a human-readable label with the expression it was
// registered under.
type NamedConstraint struct {
	Label string
	Expr  Expr
}

// NewMaskEvaluator allocates a fresh mask stream over the fixed
// main/preprocessed/program schemas.
func NewMaskEvaluator() *MaskEvaluator {
	idx := 0

	next := func() int {
		i := idx
		idx++

		return i
	}

	e := &MaskEvaluator{
		main:         make([]cell, trace.MainSchema.Width()),
		preprocessed: make([]cell, trace.PreprocessedSchema.Width()),
		program:      make([]Expr, trace.ProgramSchema.Width()),
	}

	for i := range e.main {
		e.main[i] = cell{current: Var(next()), next: Var(next())}
	}

	for i := range e.preprocessed {
		e.preprocessed[i] = cell{current: Var(next()), next: Var(next())}
	}

	for i := range e.program {
		e.program[i] = Var(next())
	}

	return e
}

// ColumnEval implements RowEvaluator.
func (e *MaskEvaluator) ColumnEval(col string) []Expr {
	return sliceCells(e.main, trace.MainSchema, col, false)
}

// ColumnEvalNextRow implements RowEvaluator.
func (e *MaskEvaluator) ColumnEvalNextRow(col string) []Expr {
	return sliceCells(e.main, trace.MainSchema, col, true)
}

// PreprocessedColumnEval implements RowEvaluator.
func (e *MaskEvaluator) PreprocessedColumnEval(col string) []Expr {
	return sliceCells(e.preprocessed, trace.PreprocessedSchema, col, false)
}

// PreprocessedColumnEvalNextRow implements RowEvaluator.
func (e *MaskEvaluator) PreprocessedColumnEvalNextRow(col string) []Expr {
	return sliceCells(e.preprocessed, trace.PreprocessedSchema, col, true)
}

// ProgramColumnEval implements RowEvaluator.
func (e *MaskEvaluator) ProgramColumnEval(col string) []Expr {
	n := trace.ProgramSchema.Size(col)
	offset := trace.ProgramSchema.Offset(col)
	out := make([]Expr, n)
	copy(out, e.program[offset:offset+n])

	return out
}

// AddConstraint implements RowEvaluator.
func (e *MaskEvaluator) AddConstraint(label string, expr Expr) {
	e.Constraints = append(e.Constraints, NamedConstraint{Label: label, Expr: expr})
}

func sliceCells(cells []cell, schema trace.Schema, col string, nextRow bool) []Expr {
	n := schema.Size(col)
	offset := schema.Offset(col)
	out := make([]Expr, n)

	for i := range out {
		c := cells[offset+uint(i)]
		if nextRow {
			out[i] = c.next
		} else {
			out[i] = c.current
		}
	}

	return out
}

// Evaluated records one constraint's residual on one concrete row.
type Evaluated struct {
	Label    string
	Residual m31.Element
}

// AssertEvaluator is the assertion-mode evaluator the self-check harness
// binds to one concrete row: every read substitutes the filled field value
// of that row (or the next row, mod N) directly, so every expression built
// against it is a closed Const tree that folds to a concrete residual.
type AssertEvaluator struct {
	table   *trace.Table
	row     uint
	nextRow uint

	Evaluated []Evaluated
}

// NewAssertEvaluator binds an assertion-mode evaluator to the given row of
// table; the successor row is row+1 mod N.
func NewAssertEvaluator(t *trace.Table, row uint) *AssertEvaluator {
	return &AssertEvaluator{table: t, row: row, nextRow: (row + 1) % t.NumRows()}
}

func constAll(vals []m31.Element) []Expr {
	out := make([]Expr, len(vals))
	for i, v := range vals {
		out[i] = Const(v)
	}

	return out
}

// ColumnEval implements RowEvaluator.
func (e *AssertEvaluator) ColumnEval(col string) []Expr {
	return constAll(e.table.Column(e.row, col))
}

// ColumnEvalNextRow implements RowEvaluator.
func (e *AssertEvaluator) ColumnEvalNextRow(col string) []Expr {
	return constAll(e.table.Column(e.nextRow, col))
}

// PreprocessedColumnEval implements RowEvaluator.
func (e *AssertEvaluator) PreprocessedColumnEval(col string) []Expr {
	return constAll(e.table.PreprocessedColumn(e.row, col))
}

// PreprocessedColumnEvalNextRow implements RowEvaluator.
func (e *AssertEvaluator) PreprocessedColumnEvalNextRow(col string) []Expr {
	return constAll(e.table.PreprocessedColumn(e.nextRow, col))
}

// ProgramColumnEval implements RowEvaluator.
func (e *AssertEvaluator) ProgramColumnEval(col string) []Expr {
	return constAll(e.table.ProgramColumn(e.row, col))
}

// AddConstraint implements RowEvaluator: it immediately folds expr (which,
// built purely from ColumnEval-style reads of this evaluator, contains no
// Var leaves) down to a concrete residual and records it.
func (e *AssertEvaluator) AddConstraint(label string, expr Expr) {
	residual := expr.Eval(noVars)
	e.Evaluated = append(e.Evaluated, Evaluated{Label: label, Residual: residual})
}

func noVars(idx int) m31.Element {
	panic("air: AssertEvaluator expression unexpectedly referenced a mask variable")
}
