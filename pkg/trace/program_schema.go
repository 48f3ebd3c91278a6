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

// Program-schema column group names: immutable data derived from the
// program image, indexed by program counter rather than by execution step.
const (
	// ProgramPc is the program counter this program-row describes.
	ProgramPc = "ProgramPc"
	// ProgramOpcode is the builtin opcode at ProgramPc, embedded as the
	// field element of its enumeration index.
	ProgramOpcode = "ProgramOpcode"
	// ProgramMemoryFlag is 1 for rows corresponding to an actual instruction
	// in the program image, 0 for padding beyond the program's length.
	ProgramMemoryFlag = "ProgramMemoryFlag"
)

// ProgramSchema enumerates the program column groups.
var ProgramSchema = NewSchema(
	Group{ProgramPc, 1},
	Group{ProgramOpcode, 1},
	Group{ProgramMemoryFlag, 1},
)
