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

import "github.com/rvzk/rvzk/field/m31"

// Word is a fixed-width little-endian tuple of WordWidth 8-bit limbs: the
// representation shared by every chip for register values, immediates, and
// results.
type Word [WordWidth]byte

// WordFromUint32 decomposes a 32-bit architectural value into its
// little-endian byte limbs.
func WordFromUint32(v uint32) Word {
	var w Word
	for i := range w {
		w[i] = byte(v >> (8 * uint(i)))
	}

	return w
}

// Uint32 recomposes the 32-bit architectural value from its limbs.
func (w Word) Uint32() uint32 {
	var v uint32
	for i, b := range w {
		v |= uint32(b) << (8 * uint(i))
	}

	return v
}

// IntoFieldLimbs is the capability fill_columns uses to convert an
// arbitrary value into exactly N field-element limbs.
type IntoFieldLimbs interface {
	IntoFieldLimbs(n uint) []m31.Element
}

// IntoFieldLimbs embeds each byte of the word as a field element.
func (w Word) IntoFieldLimbs(n uint) []m31.Element {
	if n != WordWidth {
		panic("word: IntoFieldLimbs width mismatch")
	}

	limbs := make([]m31.Element, WordWidth)
	for i, b := range w {
		limbs[i] = m31.FromByte(b)
	}

	return limbs
}
