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

// Package field describes the algebraic contract that every concrete prime
// field backend must satisfy. The constraint-trace core is agnostic to the
// specific representation (Montgomery form, redundant representation, etc)
// chosen by a given backend, provided equality matches the integer residue.
package field

import "fmt"

// An Element of a prime-order field.
type Element[Operand any] interface {
	Add(y Operand) Operand      // Add x+y
	Sub(y Operand) Operand      // Sub x-y
	AddUint32(y uint32) Operand // AddUint32 x+y. It's the canonical way to create a new element with value y.
	ToUint32() uint32           // ToUint32 returns the numerical value of x.
	Mul(y Operand) Operand      // Mul x*y
	Cmp(y Operand) int          // Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
	Double() Operand            // Double 2x
	Half() Operand              // Half x/2
	Inverse() Operand           // Inverse x⁻¹, or 0 if x = 0.
	IsZero() bool               // IsZero reports whether x is the additive identity.
	fmt.Stringer
}
