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

import (
	"fmt"

	"github.com/rvzk/rvzk/field/m31"
	"github.com/rvzk/rvzk/pkg/pipeline"
)

// Table is the single owner of a trace's flat column storage: one vector of
// F per cell of the main, preprocessed, and program schemas, each
// `1 << log_size` rows tall. All cells are zero-initialized at
// construction. Views borrowed from a Table (via ColumnMut) are valid only
// for the duration of the row operation that requested them.
type Table struct {
	logSize uint

	main         [][]m31.Element
	preprocessed [][]m31.Element
	program      [][]m31.Element
}

// NewTable constructs a zero-filled trace table with `1 << logSize` rows.
// Fails only if logSize < LogLanes.
func NewTable(logSize uint) (*Table, error) {
	if logSize < LogLanes {
		return nil, fmt.Errorf("trace: log_size %d is below the minimum %d", logSize, LogLanes)
	}

	n := uint(1) << logSize

	t := &Table{
		logSize:      logSize,
		main:         newColumns(MainSchema.Width(), n),
		preprocessed: newColumns(PreprocessedSchema.Width(), n),
		program:      newColumns(ProgramSchema.Width(), n),
	}
	t.fillPreprocessed(n)

	return t, nil
}

func newColumns(width, n uint) [][]m31.Element {
	cols := make([][]m31.Element, width)
	for i := range cols {
		cols[i] = make([]m31.Element, n)
	}

	return cols
}

// fillPreprocessed computes the boundary markers that are fixed once per
// trace size: IsFirst is 1 on row 0, IsLast is 1 on the final row.
func (t *Table) fillPreprocessed(n uint) {
	first := PreprocessedSchema.Offset(IsFirst)
	last := PreprocessedSchema.Offset(IsLast)
	t.preprocessed[first][0] = m31.One()
	t.preprocessed[last][n-1] = m31.One()
}

// LogSize returns the log2 of this table's row count.
func (t *Table) LogSize() uint {
	return t.logSize
}

// NumRows returns `1 << log_size`, the number of rows in this table.
func (t *Table) NumRows() uint {
	return uint(1) << t.logSize
}

func (t *Table) checkRow(row uint) {
	if row >= t.NumRows() {
		panic(fmt.Sprintf("trace: row %d out of range [0,%d)", row, t.NumRows()))
	}
}

// Column returns a copy of the N consecutive cells of the named main column
// group at the given row, where N is the group's declared width.
func (t *Table) Column(row uint, col string) []m31.Element {
	t.checkRow(row)

	n := MainSchema.Size(col)
	offset := MainSchema.Offset(col)
	out := make([]m31.Element, n)

	for i := range out {
		out[i] = t.main[offset+uint(i)][row]
	}

	return out
}

// ColumnMut returns mutable handles to the N consecutive cells of the named
// main column group at the given row; the N handles refer to N distinct
// underlying vectors, so callers may write to all N independently.
func (t *Table) ColumnMut(row uint, col string) []*m31.Element {
	t.checkRow(row)

	n := MainSchema.Size(col)
	offset := MainSchema.Offset(col)
	out := make([]*m31.Element, n)

	for i := range out {
		out[i] = &t.main[offset+uint(i)][row]
	}

	return out
}

// FillColumns converts value via its IntoFieldLimbs capability and writes
// the resulting N cells to the named main column group at the given row.
func (t *Table) FillColumns(row uint, value IntoFieldLimbs, col string) {
	n := MainSchema.Size(col)
	t.fillColumnsRaw(row, value.IntoFieldLimbs(n), col)
}

// FillColumnsBytes embeds each byte of value as a field element and writes
// it to the named main column group at the given row.
func (t *Table) FillColumnsBytes(row uint, value []byte, col string) {
	MainSchema.checkSize(col, uint(len(value)))

	limbs := make([]m31.Element, len(value))
	for i, b := range value {
		limbs[i] = m31.FromByte(b)
	}

	t.fillColumnsRaw(row, limbs, col)
}

func (t *Table) fillColumnsRaw(row uint, limbs []m31.Element, col string) {
	t.checkRow(row)
	MainSchema.checkSize(col, uint(len(limbs)))

	offset := MainSchema.Offset(col)
	for i, v := range limbs {
		t.main[offset+uint(i)][row] = v
	}
}

// FillEffective implements the effective-selector write: if the selector's
// single-cell value at row is zero, dst is filled with zeros; otherwise src
// is copied into dst. src and dst must have equal width.
func (t *Table) FillEffective(row uint, src, dst, selector string) {
	srcWidth := MainSchema.Size(src)
	dstWidth := MainSchema.Size(dst)

	if srcWidth != dstWidth {
		panic(fmt.Sprintf("trace: fill_effective width mismatch between %q (%d) and %q (%d)", src, srcWidth, dst, dstWidth))
	}

	if MainSchema.Size(selector) != 1 {
		panic(fmt.Sprintf("trace: fill_effective selector %q must have width 1", selector))
	}

	srcVals := t.Column(row, src)
	sel := t.Column(row, selector)[0]
	dstCells := t.ColumnMut(row, dst)

	if sel.IsZero() {
		for _, cell := range dstCells {
			*cell = m31.Zero()
		}

		return
	}

	for i, cell := range dstCells {
		*cell = srcVals[i]
	}
}

// PreprocessedColumn returns a copy of the N cells of the named
// preprocessed column group at the given row.
func (t *Table) PreprocessedColumn(row uint, col string) []m31.Element {
	t.checkRow(row)

	n := PreprocessedSchema.Size(col)
	offset := PreprocessedSchema.Offset(col)
	out := make([]m31.Element, n)

	for i := range out {
		out[i] = t.preprocessed[offset+uint(i)][row]
	}

	return out
}

// ProgramColumn returns a copy of the N cells of the named program column
// group at the given row.
func (t *Table) ProgramColumn(row uint, col string) []m31.Element {
	t.checkRow(row)

	n := ProgramSchema.Size(col)
	offset := ProgramSchema.Offset(col)
	out := make([]m31.Element, n)

	for i := range out {
		out[i] = t.program[offset+uint(i)][row]
	}

	return out
}

// SetProgramRow writes the program schema's columns for the given row. The
// program table is immutable after the ingestion phase that constructs it;
// no chip ever calls this method.
func (t *Table) SetProgramRow(row uint, pc m31.Element, opcode m31.Element, memFlag m31.Element) {
	t.checkRow(row)

	t.program[ProgramSchema.Offset(ProgramPc)][row] = pc
	t.program[ProgramSchema.Offset(ProgramOpcode)][row] = opcode
	t.program[ProgramSchema.Offset(ProgramMemoryFlag)][row] = memFlag
}

// GetBaseColumn returns the N columns of the named main column group in
// commitment order (circle-domain order, then bit-reversed).
func (t *Table) GetBaseColumn(col string) []pipeline.BaseColumn {
	n := MainSchema.Size(col)
	offset := MainSchema.Offset(col)
	out := make([]pipeline.BaseColumn, n)

	for i := range out {
		out[i] = pipeline.ToBaseColumn(t.main[offset+uint(i)], t.logSize)
	}

	return out
}

// CircleEvaluation materializes every column of every schema (main,
// preprocessed, program) as an evaluation over the canonical coset of size
// `1 << log_size`, reordered to commitment order. The result agrees
// cell-for-cell with GetBaseColumn.
func (t *Table) CircleEvaluation() pipeline.TableEvaluation {
	return pipeline.TableEvaluation{
		Main:         evaluateAll(t.main, t.logSize),
		Preprocessed: evaluateAll(t.preprocessed, t.logSize),
		Program:      evaluateAll(t.program, t.logSize),
	}
}

func evaluateAll(cols [][]m31.Element, logSize uint) []pipeline.Evaluation {
	out := make([]pipeline.Evaluation, len(cols))
	for i, col := range cols {
		out[i] = pipeline.ToEvaluation(col, logSize)
	}

	return out
}
