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

// Preprocessed-schema column group names: constants known to both prover
// and verifier, computed once per trace size rather than filled per-step.
const (
	// IsFirst is 1 on row 0, 0 elsewhere.
	IsFirst = "IsFirst"
	// IsLast is 1 on the final row, 0 elsewhere. Reading IsFirst on the next
	// row via column_eval_next_row gives the same information, but IsLast is
	// kept as an explicit boundary marker since the CPU chip reads it
	// directly on the current row.
	IsLast = "IsLast"
)

// PreprocessedSchema enumerates the preprocessed column groups.
var PreprocessedSchema = NewSchema(
	Group{IsFirst, 1},
	Group{IsLast, 1},
)
