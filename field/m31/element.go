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

// Package m31 implements the Mersenne-31 prime field F_p, p = 2³¹ - 1, which
// is the field over which every trace cell and constraint coefficient of
// this prover lives. Elements are stored in Montgomery form so that
// multiplication (the operation the constraint evaluator performs most) is
// cheap; the representation is otherwise invisible to callers.
package m31

import (
	"cmp"
	"fmt"
	"math/big"
	"math/bits"
)

// Modulus is the order of the field, p = 2³¹ - 1.
const Modulus uint32 = 1<<31 - 1

// Element of F_p, held in Montgomery form (i.e. x.R mod p for R = 2³²).
// Represented as an array of one word to prevent mistaken use of native
// arithmetic operators or naive struct copies that skip the reduction.
type Element [1]uint32

var field = newField(Modulus)

// montgomeryField is the generic Montgomery-form arithmetic engine behind
// Element; it is parameterised by modulus so the reduction logic can be
// exercised independently of the fixed Mersenne-31 choice above.
type montgomeryField struct {
	modulus           uint32
	negModulusInvModR uint32
}

func newField(modulus uint32) montgomeryField {
	if modulus >= 1<<31 {
		panic("modulus too large") // need at least one bit of "slack"
	}

	m := big.NewInt(int64(modulus))
	m.ModInverse(m, big.NewInt(1<<32))

	return montgomeryField{modulus: modulus, negModulusInvModR: uint32(1<<32 - m.Uint64())}
}

// Zero is the additive identity.
func Zero() Element { return Element{0} }

// One is the multiplicative identity.
func One() Element { return field.newElement(1) }

// New constructs the field element corresponding to the natural number x,
// reduced modulo p.
func New(x uint32) Element { return field.newElement(x % Modulus) }

// FromByte embeds a byte b ∈ [0,255] as the field element with integer
// representative b.
func FromByte(b byte) Element { return field.newElement(uint32(b)) }

func (f montgomeryField) newElement(x uint32) Element {
	return Element{uint32(uint64(x) << 32 % uint64(f.modulus))}
}

// Add x+y.
func (x Element) Add(y Element) Element {
	res := x[0] + y[0]

	if reduced, borrow := bits.Sub32(res, field.modulus, 0); borrow == 0 {
		res = reduced
	}

	return Element{res}
}

// Sub x-y.
func (x Element) Sub(y Element) Element {
	res, borrow := bits.Sub32(x[0], y[0], 0)
	if borrow != 0 {
		res += field.modulus
	}

	return Element{res}
}

// AddUint32 x+y. The canonical way to create a new element with value y.
func (x Element) AddUint32(y uint32) Element {
	return x.Add(New(y))
}

// montgomeryReduce x -> x.R⁻¹ (mod p).
func (f montgomeryField) montgomeryReduce(x uint64) Element {
	const r = 1 << 32
	m := (x * uint64(f.negModulusInvModR)) % r // m = x * (-modulus⁻¹) (mod R)

	res := Element{uint32((x + m*uint64(f.modulus)) / r)}

	if res[0] >= f.modulus {
		res[0] -= f.modulus
	}

	return res
}

// ToUint32 returns the numerical (non-Montgomery) value of x.
func (x Element) ToUint32() uint32 {
	return field.montgomeryReduce(uint64(x[0]))[0]
}

// Mul x*y.
func (x Element) Mul(y Element) Element {
	return field.montgomeryReduce(uint64(x[0]) * uint64(y[0]))
}

// Cmp compares the numerical values of x and y.
func (x Element) Cmp(y Element) int {
	return cmp.Compare(x.ToUint32(), y.ToUint32())
}

// Double x -> 2x.
func (x Element) Double() Element {
	return x.Add(x)
}

// rSq returns R² (mod p), in Montgomery form (i.e. this is already "R² . R⁻¹ R"
// when fed back through montgomeryReduce, which is how Inverse uses it).
func (f montgomeryField) rSq() Element {
	exponent := uint64(63 - bits.LeadingZeros32(f.modulus))

	x := Element{uint32((1 << exponent) % uint64(f.modulus))}
	for exponent < 64 {
		x = x.Double()
		exponent++
	}

	return x
}

// Half x -> x/2 (mod p).
func (x Element) Half() Element {
	if x[0]%2 == 0 {
		return Element{x[0] / 2}
	}
	// the modulus is less than 2³¹ so this addition cannot overflow.
	return Element{(x[0] + field.modulus) / 2}
}

// IsZero reports whether x is the additive identity. Montgomery form
// preserves zero, so no reduction is required.
func (x Element) IsZero() bool {
	return x[0] == 0
}

// Inverse x -> x⁻¹ (mod p), or 0 if x = 0.
func (x Element) Inverse() Element {
	// x actually holds x.R, so the result of the binary GCD must be biased by
	// R² to land back on x⁻¹.R.
	return field.inverse(x, field.rSq())
}

// inverse computes bias.x⁻¹ (mod p) using the binary extended Euclidean
// algorithm (Algorithm 16 of "Efficient Software-Implementation of Finite
// Fields with Applications to Cryptography").
func (f montgomeryField) inverse(x, bias Element) Element {
	if x[0] == 0 {
		return Element{0}
	}

	u := x[0]
	v := f.modulus

	var c Element

	b := bias

	for (u != 1) && (v != 1) {
		for u%2 == 0 {
			u /= 2
			b = b.Half()
		}

		for v%2 == 0 {
			v /= 2
			c = c.Half()
		}

		if diff, borrow := bits.Sub32(u, v, 0); borrow == 0 {
			u = diff
			b = b.Sub(c)
		} else {
			v -= u
			c = c.Sub(b)
		}
	}

	if u == 1 {
		return b
	}

	return c
}

// String returns the decimal, non-Montgomery representation of x.
func (x Element) String() string {
	return fmt.Sprintf("%d", x.ToUint32())
}
