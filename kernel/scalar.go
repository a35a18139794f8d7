// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ScalarNode is a kernel node whose value and derivative are float64.
// Derivative(i) is the partial derivative of Value() with respect to
// input component i, evaluated at the inputs most recently installed
// by SetInputs — the "partial(inputs, i) -> value of kind" contract
// from the specification, specialized to the scalar kind.
type ScalarNode interface {
	SetInputs(v []float64)
	Value() float64
	Derivative(i int) float64
	Arity() int
}

// scalarExpr is the per-operator computation: fill deriv (length n,
// zeroed by the caller) in place and return the value. Implementations
// read their operands through the public Node interfaces, so a shared
// operand is evaluated once per generation no matter how many
// expressions reach it — the generation memoization lives in
// scalarNode.ensure, not here.
type scalarExpr interface {
	eval(ctx *Context, deriv []float64) float64
}

type scalarNode struct {
	ctx     *Context
	lastGen uint64
	fresh   bool
	val     float64
	deriv   []float64
	expr    scalarExpr
}

func wrapScalar(ctx *Context, e scalarExpr) ScalarNode {
	return &scalarNode{ctx: ctx, deriv: make([]float64, ctx.Arity()), expr: e}
}

func (n *scalarNode) SetInputs(v []float64) { n.ctx.SetInputs(v) }
func (n *scalarNode) Arity() int            { return n.ctx.Arity() }

func (n *scalarNode) ensure() {
	if n.fresh && n.lastGen == n.ctx.gen {
		return
	}
	for i := range n.deriv {
		n.deriv[i] = 0
	}
	n.val = n.expr.eval(n.ctx, n.deriv)
	n.lastGen = n.ctx.gen
	n.fresh = true
}

func (n *scalarNode) Value() float64 {
	n.ensure()
	return n.val
}

func (n *scalarNode) Derivative(i int) float64 {
	n.ensure()
	return n.deriv[i]
}

// --- leaves -----------------------------------------------------------

type constExpr struct{ v float64 }

func (e *constExpr) eval(ctx *Context, deriv []float64) float64 { return e.v }

// NewConst builds a scalar node whose value never changes and whose
// derivative is identically zero.
func NewConst(ctx *Context, v float64) ScalarNode { return wrapScalar(ctx, &constExpr{v}) }

type inputExpr struct{ index int }

func (e *inputExpr) eval(ctx *Context, deriv []float64) float64 {
	deriv[e.index] = 1
	return ctx.inputs[e.index]
}

// NewInput builds a scalar node that reads input component index
// directly; its derivative is the index-th standard basis vector.
func NewInput(ctx *Context, index int) ScalarNode { return wrapScalar(ctx, &inputExpr{index}) }

// --- arithmetic ---------------------------------------------------------

type negateExpr struct{ x ScalarNode }

func (e *negateExpr) eval(ctx *Context, deriv []float64) float64 {
	for i := range deriv {
		deriv[i] = -e.x.Derivative(i)
	}
	return -e.x.Value()
}

func NewNegate(ctx *Context, x ScalarNode) ScalarNode { return wrapScalar(ctx, &negateExpr{x}) }

type addExpr struct{ terms []ScalarNode }

func (e *addExpr) eval(ctx *Context, deriv []float64) float64 {
	var v float64
	for _, t := range e.terms {
		v += t.Value()
		for i := range deriv {
			deriv[i] += t.Derivative(i)
		}
	}
	return v
}

// NewAdd builds the sum of terms; the empty sum is the zero node.
func NewAdd(ctx *Context, terms ...ScalarNode) ScalarNode {
	return wrapScalar(ctx, &addExpr{terms})
}

type subExpr struct{ a, b ScalarNode }

func (e *subExpr) eval(ctx *Context, deriv []float64) float64 {
	for i := range deriv {
		deriv[i] = e.a.Derivative(i) - e.b.Derivative(i)
	}
	return e.a.Value() - e.b.Value()
}

func NewSub(ctx *Context, a, b ScalarNode) ScalarNode { return wrapScalar(ctx, &subExpr{a, b}) }

type mulExpr struct{ factors []ScalarNode }

func (e *mulExpr) eval(ctx *Context, deriv []float64) float64 {
	v := 1.0
	for _, f := range e.factors {
		v *= f.Value()
	}
	// product rule: d(prod)/dx_i = sum_k (dF_k/dx_i * prod_{j!=k} F_j)
	for i := range deriv {
		var d float64
		for k, fk := range e.factors {
			term := fk.Derivative(i)
			for j, fj := range e.factors {
				if j != k {
					term *= fj.Value()
				}
			}
			d += term
		}
		deriv[i] = d
	}
	return v
}

// NewMul builds the product of factors; the empty product is the
// constant one.
func NewMul(ctx *Context, factors ...ScalarNode) ScalarNode {
	return wrapScalar(ctx, &mulExpr{factors})
}

type divExpr struct{ a, b ScalarNode }

func (e *divExpr) eval(ctx *Context, deriv []float64) float64 {
	av, bv := e.a.Value(), e.b.Value()
	if bv == 0 {
		panic(evalPanic{"division by zero"})
	}
	for i := range deriv {
		deriv[i] = (e.a.Derivative(i)*bv - av*e.b.Derivative(i)) / (bv * bv)
	}
	return av / bv
}

func NewDiv(ctx *Context, a, b ScalarNode) ScalarNode { return wrapScalar(ctx, &divExpr{a, b}) }

// evalPanic carries an evaluation-time failure (e.g. division by zero)
// up to the caller that set the inputs; kernel.Recover, deferred by
// qpctrl's per-step assembly, turns it into a *gerr.EvaluationError.
type evalPanic struct{ msg string }

// --- vector projections --------------------------------------------------

type axisOfExpr struct {
	v    VectorNode
	axis int
}

func (e *axisOfExpr) eval(ctx *Context, deriv []float64) float64 {
	for i := range deriv {
		deriv[i] = component(e.v.Derivative(i), e.axis)
	}
	return component(e.v.Value(), e.axis)
}

func NewXOf(ctx *Context, v VectorNode) ScalarNode { return wrapScalar(ctx, &axisOfExpr{v, 0}) }
func NewYOf(ctx *Context, v VectorNode) ScalarNode { return wrapScalar(ctx, &axisOfExpr{v, 1}) }
func NewZOf(ctx *Context, v VectorNode) ScalarNode { return wrapScalar(ctx, &axisOfExpr{v, 2}) }

type normExpr struct{ v VectorNode }

func (e *normExpr) eval(ctx *Context, deriv []float64) float64 {
	v := e.v.Value()
	n := r3.Norm(v)
	if n == 0 {
		panic(evalPanic{"norm of zero vector is not differentiable"})
	}
	for i := range deriv {
		deriv[i] = r3.Dot(v, e.v.Derivative(i)) / n
	}
	return n
}

func NewNorm(ctx *Context, v VectorNode) ScalarNode { return wrapScalar(ctx, &normExpr{v}) }

type dotExpr struct{ a, b VectorNode }

func (e *dotExpr) eval(ctx *Context, deriv []float64) float64 {
	av, bv := e.a.Value(), e.b.Value()
	for i := range deriv {
		deriv[i] = r3.Dot(e.a.Derivative(i), bv) + r3.Dot(av, e.b.Derivative(i))
	}
	return r3.Dot(av, bv)
}

func NewDot(ctx *Context, a, b VectorNode) ScalarNode { return wrapScalar(ctx, &dotExpr{a, b}) }

// --- min/max/abs, piecewise with subgradient at the kink -----------------

type minMaxExpr struct {
	a, b ScalarNode
	pick func(a, b float64) bool // true selects a
}

func (e *minMaxExpr) eval(ctx *Context, deriv []float64) float64 {
	av, bv := e.a.Value(), e.b.Value()
	if e.pick(av, bv) {
		for i := range deriv {
			deriv[i] = e.a.Derivative(i)
		}
		return av
	}
	for i := range deriv {
		deriv[i] = e.b.Derivative(i)
	}
	return bv
}

// NewMin and NewMax take the active branch's derivative at the kink,
// breaking ties toward a — the same convention the reference
// finite-difference check in spec.md §8 tolerates since it never
// probes exactly at a tie.
func NewMin(ctx *Context, a, b ScalarNode) ScalarNode {
	return wrapScalar(ctx, &minMaxExpr{a, b, func(a, b float64) bool { return a <= b }})
}

func NewMax(ctx *Context, a, b ScalarNode) ScalarNode {
	return wrapScalar(ctx, &minMaxExpr{a, b, func(a, b float64) bool { return a >= b }})
}

type absExpr struct{ x ScalarNode }

func (e *absExpr) eval(ctx *Context, deriv []float64) float64 {
	v := e.x.Value()
	var sign float64
	switch {
	case v > 0:
		sign = 1
	case v < 0:
		sign = -1
	default:
		sign = 0 // derivative of abs at the crease is 0, per spec.md §4.A
	}
	for i := range deriv {
		deriv[i] = sign * e.x.Derivative(i)
	}
	return math.Abs(v)
}

func NewAbs(ctx *Context, x ScalarNode) ScalarNode { return wrapScalar(ctx, &absExpr{x}) }

// --- trigonometry ---------------------------------------------------------

type unaryMathExpr struct {
	x       ScalarNode
	f, dfdx func(x float64) float64
}

func (e *unaryMathExpr) eval(ctx *Context, deriv []float64) float64 {
	v := e.x.Value()
	g := e.dfdx(v)
	for i := range deriv {
		deriv[i] = g * e.x.Derivative(i)
	}
	return e.f(v)
}

func NewSin(ctx *Context, x ScalarNode) ScalarNode {
	return wrapScalar(ctx, &unaryMathExpr{x, math.Sin, math.Cos})
}

func NewCos(ctx *Context, x ScalarNode) ScalarNode {
	return wrapScalar(ctx, &unaryMathExpr{x, math.Cos, func(v float64) float64 { return -math.Sin(v) }})
}

func NewTan(ctx *Context, x ScalarNode) ScalarNode {
	return wrapScalar(ctx, &unaryMathExpr{x, math.Tan, func(v float64) float64 {
		c := math.Cos(v)
		return 1 / (c * c)
	}})
}

func NewAsin(ctx *Context, x ScalarNode) ScalarNode {
	return wrapScalar(ctx, &unaryMathExpr{x, func(v float64) float64 {
		if v < -1 || v > 1 {
			panic(evalPanic{"asin argument out of [-1, 1]"})
		}
		return math.Asin(v)
	}, func(v float64) float64 {
		return 1 / math.Sqrt(1-v*v)
	}})
}

func NewAcos(ctx *Context, x ScalarNode) ScalarNode {
	return wrapScalar(ctx, &unaryMathExpr{x, func(v float64) float64 {
		if v < -1 || v > 1 {
			panic(evalPanic{"acos argument out of [-1, 1]"})
		}
		return math.Acos(v)
	}, func(v float64) float64 {
		return -1 / math.Sqrt(1-v*v)
	}})
}

type atan2Expr struct{ y, x ScalarNode }

func (e *atan2Expr) eval(ctx *Context, deriv []float64) float64 {
	yv, xv := e.y.Value(), e.x.Value()
	den := xv*xv + yv*yv
	if den == 0 {
		panic(evalPanic{"atan2 at the origin is not differentiable"})
	}
	for i := range deriv {
		deriv[i] = (xv*e.y.Derivative(i) - yv*e.x.Derivative(i)) / den
	}
	return math.Atan2(yv, xv)
}

func NewAtan2(ctx *Context, y, x ScalarNode) ScalarNode { return wrapScalar(ctx, &atan2Expr{y, x}) }

type fmodExpr struct{ a, b ScalarNode }

func (e *fmodExpr) eval(ctx *Context, deriv []float64) float64 {
	av, bv := e.a.Value(), e.b.Value()
	if bv == 0 {
		panic(evalPanic{"fmod by zero"})
	}
	q := math.Floor(av / bv)
	for i := range deriv {
		deriv[i] = e.a.Derivative(i) - q*e.b.Derivative(i)
	}
	return av - bv*q
}

func NewFmod(ctx *Context, a, b ScalarNode) ScalarNode { return wrapScalar(ctx, &fmodExpr{a, b}) }
