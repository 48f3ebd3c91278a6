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

// Package air provides the row-local symbolic expression algebra and the
// row-evaluator contract that constraint code is written against: reading
// the current and next row of any column returns an opaque expression
// handle, which composes via add/sub/mul and folds to a field element once
// bound to concrete values.
package air

import "github.com/rvzk/rvzk/field/m31"

type exprKind uint8

const (
	exprConst exprKind = iota
	exprVar
	exprAdd
	exprSub
	exprMul
)

// Expr is an opaque, clonable value representing a polynomial in row-local
// variables. Values are immutable trees built bottom-up from Const and Var
// leaves via Add/Sub/Mul, so cloning an Expr is just copying the handle.
type Expr struct {
	kind exprKind
	val  m31.Element
	idx  int
	a, b *Expr
}

// Const embeds a field constant as an expression.
func Const(v m31.Element) Expr {
	return Expr{kind: exprConst, val: v}
}

// Var constructs a reference to the idx-th mask in a deterministic stream
// of interaction masks (see MaskEvaluator). It has no meaning outside that
// stream's Eval.
func Var(idx int) Expr {
	return Expr{kind: exprVar, idx: idx}
}

// Add returns x+y.
func (x Expr) Add(y Expr) Expr {
	return Expr{kind: exprAdd, a: &x, b: &y}
}

// Sub returns x-y.
func (x Expr) Sub(y Expr) Expr {
	return Expr{kind: exprSub, a: &x, b: &y}
}

// Mul returns x*y.
func (x Expr) Mul(y Expr) Expr {
	return Expr{kind: exprMul, a: &x, b: &y}
}

// Eval folds the expression tree to a field element, resolving Var leaves
// via env.
func (x Expr) Eval(env func(idx int) m31.Element) m31.Element {
	switch x.kind {
	case exprConst:
		return x.val
	case exprVar:
		return env(x.idx)
	case exprAdd:
		return x.a.Eval(env).Add(x.b.Eval(env))
	case exprSub:
		return x.a.Eval(env).Sub(x.b.Eval(env))
	case exprMul:
		return x.a.Eval(env).Mul(x.b.Eval(env))
	default:
		panic("air: unreachable expression kind")
	}
}

// Vars returns the mask-variable indices referenced by this expression, in
// the order a left-to-right traversal encounters them. Used to verify that
// two independent row evaluators over the same schema consume masks in the
// same order (see air.TestMaskOrderIsDeterministic).
func (x Expr) Vars() []int {
	switch x.kind {
	case exprConst:
		return nil
	case exprVar:
		return []int{x.idx}
	default:
		return append(x.a.Vars(), x.b.Vars()...)
	}
}
