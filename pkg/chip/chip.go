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

// Package chip defines the two-operation contract every arithmetization
// component implements, and a registry that runs a fixed ordered set of
// them in lockstep over a trace table.
package chip

import (
	"github.com/rvzk/rvzk/pkg/air"
	"github.com/rvzk/rvzk/pkg/trace"
)

// Chip is one arithmetization component: it fills the rows of the main
// columns it owns, and emits the constraints that make those columns
// meaningful. A chip must not read or write columns owned by another chip,
// except through the columns explicitly documented as shared (e.g. IsAdd).
type Chip interface {
	// Name identifies the chip in diagnostics and coverage reporting.
	Name() string
	// FillMainTrace writes this chip's columns for row, given the concrete
	// program step executing there.
	FillMainTrace(t *trace.Table, row uint, step *trace.ProgramStep)
	// AddConstraints registers this chip's constraints against eval. Must
	// produce byte-identical expression trees regardless of the order chips
	// are registered in.
	AddConstraints(eval air.RowEvaluator)
}

// Registry holds the ordered set of chips that together define a trace's
// arithmetization. Order affects only iteration for diagnostics; it must
// never affect the mask-consumption order (owned solely by air.RowEvaluator
// and the fixed schemas), so registering chips in a different order never
// changes the resulting constraint set.
type Registry struct {
	chips []Chip
}

// NewRegistry builds a registry over the given chips, in the order given.
func NewRegistry(chips ...Chip) *Registry {
	return &Registry{chips: chips}
}

// Chips returns the registered chips, in registration order.
func (r *Registry) Chips() []Chip {
	return r.chips
}

// FillSteps runs every chip's FillMainTrace over each of the given program
// steps, one row per step starting at row 0, then runs the padding pass:
// every row from len(steps) to t.NumRows()-1 is marked IsPadding and left
// otherwise zero. See DESIGN.md Open Question OQ-1 for why padding is a
// registry-level pass rather than a per-chip responsibility: no single chip
// owns "no more steps", only the registry knows when the step stream ends.
func (r *Registry) FillSteps(t *trace.Table, steps []*trace.ProgramStep) error {
	n := t.NumRows()
	if uint(len(steps)) > n {
		return &TooManyStepsError{Steps: uint(len(steps)), Rows: n}
	}

	for row, step := range steps {
		for _, c := range r.chips {
			c.FillMainTrace(t, uint(row), step)
		}
	}

	for row := uint(len(steps)); row < n; row++ {
		t.FillColumnsBytes(row, []byte{1}, trace.IsPadding)
	}

	return nil
}

// AddConstraints runs every chip's AddConstraints against eval, in
// registration order. The order of this loop has no bearing on the mask-
// consumption order: eval's Var stream is already fully determined by the
// fixed schemas before any chip runs.
func (r *Registry) AddConstraints(eval air.RowEvaluator) {
	for _, c := range r.chips {
		c.AddConstraints(eval)
	}
}

// TooManyStepsError is returned when an execution block carries more steps
// than the target trace has rows.
type TooManyStepsError struct {
	Steps uint
	Rows  uint
}

func (e *TooManyStepsError) Error() string {
	return "chip: execution block has more steps than the trace has rows"
}
