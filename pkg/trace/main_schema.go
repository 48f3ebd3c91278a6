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

// WordWidth is W, the number of 8-bit limbs in a machine word. The same W is
// used by every chip.
const WordWidth = 4

// LogLanes is the platform-chosen SIMD-lane log size; a trace's log_size
// must be at least this large. Mirrors the teacher's LOG_N_LANES constant.
const LogLanes = 4

// Main-schema column group names. These are per-row and mutable during
// trace filling.
const (
	// Pc is the program counter of the row's instruction. Owned by the CPU
	// chip.
	Pc = "Pc"
	// Clk is the monotonic execution clock: the row's sequence number among
	// non-padding rows. Owned by the CPU chip.
	Clk = "Clk"
	// IsAdd is 1 iff this row executes ADD or ADDI. Owned by the CPU chip;
	// read (but never written) by the ADD chip.
	IsAdd = "IsAdd"
	// IsPadding is 1 iff this row lies beyond the last executed step. Written
	// by chip.Registry's padding pass; constrained by the CPU chip.
	IsPadding = "IsPadding"
	// RdNonzero is 1 iff the row's destination register is not the
	// hard-wired zero register, 0 otherwise. Owned by the CPU chip, which
	// constrains it to be binary; it has the shape Table.FillEffective
	// expects of a selector.
	RdNonzero = "RdNonzero"
	// ValueA is the destination register's written value, in limbs.
	ValueA = "ValueA"
	// ValueAEffective is ValueA, or the all-zeros word if the destination is
	// the hard-wired zero register.
	ValueAEffective = "ValueAEffective"
	// ValueB is the first source operand, in limbs.
	ValueB = "ValueB"
	// ValueC is the second source operand, in limbs.
	ValueC = "ValueC"
	// CarryFlag holds the W limb-wise carry bits produced while summing
	// ValueB and ValueC.
	CarryFlag = "CarryFlag"
)

// MainSchema enumerates the main-schema column groups required by the CPU
// and ADD chips. COLUMNS_NUM, for this trace, is MainSchema.Width().
var MainSchema = NewSchema(
	Group{Pc, 1},
	Group{Clk, 1},
	Group{IsAdd, 1},
	Group{IsPadding, 1},
	Group{RdNonzero, 1},
	Group{ValueA, WordWidth},
	Group{ValueAEffective, WordWidth},
	Group{ValueB, WordWidth},
	Group{ValueC, WordWidth},
	Group{CarryFlag, WordWidth},
)
