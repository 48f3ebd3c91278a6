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

// Package pipeline converts a frozen trace column from its natural row
// order into the commitment sink's expected shape: circle-domain order
// followed by a bit-reversal over log_size. Grounded in the same
// coset-order -> circle-domain-order -> bit-reverse transform vybium's
// circle_fft.go applies before committing to CFFT-friendly M31 evaluations
// (see DESIGN.md).
package pipeline

import "github.com/rvzk/rvzk/field/m31"

// BaseColumn is the commitment sink's dense base-column type: one F value
// per position of the canonical coset, in commitment order.
type BaseColumn []m31.Element

// Evaluation is a column's values parameterized by the canonical coset of
// size N, also in commitment order. Both forms must agree cell-for-cell;
// Evaluation additionally records the log_size of the coset it was
// evaluated over, which downstream low-degree testing needs but a bare
// BaseColumn does not carry.
type Evaluation struct {
	LogSize uint
	Values  []m31.Element
}

// TableEvaluation bundles the commitment-order evaluations of every column
// across all three schemas of a trace.
type TableEvaluation struct {
	Main         []Evaluation
	Preprocessed []Evaluation
	Program      []Evaluation
}

// ToBaseColumn converts one trace-order column into commitment order.
func ToBaseColumn(column []m31.Element, logSize uint) BaseColumn {
	return BaseColumn(reorder(column, logSize))
}

// ToEvaluation converts one trace-order column into a coset-parameterized
// evaluation in commitment order.
func ToEvaluation(column []m31.Element, logSize uint) Evaluation {
	return Evaluation{LogSize: logSize, Values: reorder(column, logSize)}
}

// reorder applies the coset-order -> circle-domain-order reinterleave,
// followed by a bit-reverse permutation over log_size.
func reorder(column []m31.Element, logSize uint) []m31.Element {
	out := cosetOrderToCircleDomainOrder(column)
	bitReverse(out, logSize)

	return out
}

// cosetOrderToCircleDomainOrder reinterleaves a[0..n] into
// (a[0], a[n-1], a[1], a[n-2], ...): odd positions walk from the end toward
// the middle. This mirrors the canonical-coset evaluation positions on the
// circle curve used for commitment.
func cosetOrderToCircleDomainOrder(a []m31.Element) []m31.Element {
	n := len(a)
	out := make([]m31.Element, n)

	lo, hi := 0, n-1

	for i := 0; i < n; i++ {
		if i%2 == 0 {
			out[i] = a[lo]
			lo++
		} else {
			out[i] = a[hi]
			hi--
		}
	}

	return out
}

// bitReverse permutes s in place so that index i moves to index
// bit_reverse(i, logSize).
func bitReverse(s []m31.Element, logSize uint) {
	n := len(s)
	for i := 0; i < n; i++ {
		j := reverseBits(uint(i), logSize)
		if j := int(j); j > i {
			s[i], s[j] = s[j], s[i]
		}
	}
}

// reverseBits reverses the low `bits` bits of x.
func reverseBits(x uint, bits uint) uint {
	var r uint
	for i := uint(0); i < bits; i++ {
		r = (r << 1) | (x & 1)
		x >>= 1
	}

	return r
}
