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

// Package selfcheck is the in-process oracle for constraint conformance:
// given a filled trace table and a chip registry, it re-evaluates every
// registered constraint on every row in assertion mode and reports the
// first row whose residual is non-zero.
package selfcheck

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/rvzk/rvzk/pkg/air"
	"github.com/rvzk/rvzk/pkg/chip"
	"github.com/rvzk/rvzk/pkg/trace"
)

// Violation is the structured report a constraint failure produces: the
// row it was evaluated on, the label of the offending constraint, and its
// non-zero residual. This is the sole shape in which a proof-invalidating
// error ever surfaces; the harness never panics for this class of failure.
type Violation struct {
	Row            uint
	ConstraintName string
	Residual       string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("selfcheck: row %d: constraint %q did not vanish (residual %s)", v.Row, v.ConstraintName, v.Residual)
}

// Report is the outcome of a full harness run: either empty (every
// constraint vanished on every row) or a single Violation, since the
// harness halts at the first failure.
type Report struct {
	Violation *Violation
	Coverage  *Coverage
}

// Passed reports whether no violation was found.
func (r *Report) Passed() bool {
	return r.Violation == nil
}

// Run evaluates every constraint registry emits against every row of t, in
// increasing row order, halting and returning the first Violation
// encountered. logger receives one debug line per row; nil disables
// logging.
func Run(t *trace.Table, registry *chip.Registry, logger *logrus.Logger) *Report {
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.PanicLevel)
	}

	cov := newCoverage()

	for row := uint(0); row < t.NumRows(); row++ {
		eval := air.NewAssertEvaluator(t, row)
		registry.AddConstraints(eval)

		logger.WithFields(logrus.Fields{
			"row":         row,
			"constraints": len(eval.Evaluated),
		}).Debug("selfcheck: row evaluated")

		for i, e := range eval.Evaluated {
			cov.mark(i, e.Label)

			if !e.Residual.IsZero() {
				logger.WithFields(logrus.Fields{
					"row":        row,
					"constraint": e.Label,
					"residual":   e.Residual.String(),
				}).Error("selfcheck: constraint violated")

				return &Report{
					Violation: &Violation{Row: row, ConstraintName: e.Label, Residual: e.Residual.String()},
					Coverage:  cov,
				}
			}
		}
	}

	return &Report{Coverage: cov}
}
