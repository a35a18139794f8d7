// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import "gonum.org/v1/gonum/spatial/r3"

// VectorNode is a kernel node of the vector kind; Value and each
// Derivative(i) are r3.Vec, matching the "derivative has the same kind
// as the value" rule.
type VectorNode interface {
	SetInputs(v []float64)
	Value() r3.Vec
	Derivative(i int) r3.Vec
	Arity() int
}

type vectorExpr interface {
	eval(ctx *Context, deriv []r3.Vec) r3.Vec
}

type vectorNode struct {
	ctx     *Context
	lastGen uint64
	fresh   bool
	val     r3.Vec
	deriv   []r3.Vec
	expr    vectorExpr
}

func wrapVector(ctx *Context, e vectorExpr) VectorNode {
	return &vectorNode{ctx: ctx, deriv: make([]r3.Vec, ctx.Arity()), expr: e}
}

func (n *vectorNode) SetInputs(v []float64) { n.ctx.SetInputs(v) }
func (n *vectorNode) Arity() int            { return n.ctx.Arity() }

func (n *vectorNode) ensure() {
	if n.fresh && n.lastGen == n.ctx.gen {
		return
	}
	for i := range n.deriv {
		n.deriv[i] = r3.Vec{}
	}
	n.val = n.expr.eval(n.ctx, n.deriv)
	n.lastGen = n.ctx.gen
	n.fresh = true
}

func (n *vectorNode) Value() r3.Vec {
	n.ensure()
	return n.val
}

func (n *vectorNode) Derivative(i int) r3.Vec {
	n.ensure()
	return n.deriv[i]
}

func component(v r3.Vec, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// --- constructor / leaves -------------------------------------------------

type vectorConstructorExpr struct{ x, y, z ScalarNode }

func (e *vectorConstructorExpr) eval(ctx *Context, deriv []r3.Vec) r3.Vec {
	for i := range deriv {
		deriv[i] = r3.Vec{X: e.x.Derivative(i), Y: e.y.Derivative(i), Z: e.z.Derivative(i)}
	}
	return r3.Vec{X: e.x.Value(), Y: e.y.Value(), Z: e.z.Value()}
}

// NewVectorConstructor assembles a vector from its three scalar
// components.
func NewVectorConstructor(ctx *Context, x, y, z ScalarNode) VectorNode {
	return wrapVector(ctx, &vectorConstructorExpr{x, y, z})
}

// --- arithmetic -------------------------------------------------------

type vectorAddExpr struct{ terms []VectorNode }

func (e *vectorAddExpr) eval(ctx *Context, deriv []r3.Vec) r3.Vec {
	var v r3.Vec
	for _, t := range e.terms {
		v = r3.Add(v, t.Value())
		for i := range deriv {
			deriv[i] = r3.Add(deriv[i], t.Derivative(i))
		}
	}
	return v
}

func NewVectorAdd(ctx *Context, terms ...VectorNode) VectorNode {
	return wrapVector(ctx, &vectorAddExpr{terms})
}

type vectorSubExpr struct{ a, b VectorNode }

func (e *vectorSubExpr) eval(ctx *Context, deriv []r3.Vec) r3.Vec {
	for i := range deriv {
		deriv[i] = r3.Sub(e.a.Derivative(i), e.b.Derivative(i))
	}
	return r3.Sub(e.a.Value(), e.b.Value())
}

func NewVectorSub(ctx *Context, a, b VectorNode) VectorNode {
	return wrapVector(ctx, &vectorSubExpr{a, b})
}

type scaleVectorExpr struct {
	s ScalarNode
	v VectorNode
}

func (e *scaleVectorExpr) eval(ctx *Context, deriv []r3.Vec) r3.Vec {
	sv, vv := e.s.Value(), e.v.Value()
	for i := range deriv {
		// product rule: d(s*v)/dx_i = ds/dx_i * v + s * dv/dx_i
		deriv[i] = r3.Add(r3.Scale(e.s.Derivative(i), vv), r3.Scale(sv, e.v.Derivative(i)))
	}
	return r3.Scale(sv, vv)
}

func NewScaleVector(ctx *Context, s ScalarNode, v VectorNode) VectorNode {
	return wrapVector(ctx, &scaleVectorExpr{s, v})
}

type crossExpr struct{ a, b VectorNode }

func (e *crossExpr) eval(ctx *Context, deriv []r3.Vec) r3.Vec {
	av, bv := e.a.Value(), e.b.Value()
	for i := range deriv {
		// product rule over the bilinear cross product.
		deriv[i] = r3.Add(r3.Cross(e.a.Derivative(i), bv), r3.Cross(av, e.b.Derivative(i)))
	}
	return r3.Cross(av, bv)
}

func NewCross(ctx *Context, a, b VectorNode) VectorNode {
	return wrapVector(ctx, &crossExpr{a, b})
}

// --- frame/rotation projections ---------------------------------------

type rotVectorExpr struct {
	r RotationNode
	v VectorNode
}

func (e *rotVectorExpr) eval(ctx *Context, deriv []r3.Vec) r3.Vec {
	rv, vv := e.r.Value(), e.v.Value()
	for i := range deriv {
		// d(R v)/dx_i = dR/dx_i * v + R * dv/dx_i
		deriv[i] = r3.Add(rv.mulDeriv(e.r.Derivative(i), vv), rv.apply(e.v.Derivative(i)))
	}
	return rv.apply(vv)
}

// NewRotate applies a rotation to a vector.
func NewRotate(ctx *Context, r RotationNode, v VectorNode) VectorNode {
	return wrapVector(ctx, &rotVectorExpr{r, v})
}

type originOfExpr struct{ f FrameNode }

func (e *originOfExpr) eval(ctx *Context, deriv []r3.Vec) r3.Vec {
	for i := range deriv {
		deriv[i] = e.f.Derivative(i).T
	}
	return e.f.Value().T
}

// NewOriginOf projects the translation component out of a frame; the
// projection is linear so the Jacobian passes straight through.
func NewOriginOf(ctx *Context, f FrameNode) VectorNode {
	return wrapVector(ctx, &originOfExpr{f})
}
