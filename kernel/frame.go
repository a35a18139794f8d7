// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import "gonum.org/v1/gonum/spatial/r3"

// Frame pairs a rotation and a translation. As a Derivative(i) value
// its R and T fields are Jacobian slices, not a rigid transform.
type Frame struct {
	R Rotation
	T r3.Vec
}

// FrameNode is a kernel node of the frame kind.
type FrameNode interface {
	SetInputs(v []float64)
	Value() Frame
	Derivative(i int) Frame
	Arity() int
}

type frameExpr interface {
	eval(ctx *Context, deriv []Frame) Frame
}

type frameNode struct {
	ctx     *Context
	lastGen uint64
	fresh   bool
	val     Frame
	deriv   []Frame
	expr    frameExpr
}

func wrapFrame(ctx *Context, e frameExpr) FrameNode {
	return &frameNode{ctx: ctx, deriv: make([]Frame, ctx.Arity()), expr: e}
}

func (n *frameNode) SetInputs(v []float64) { n.ctx.SetInputs(v) }
func (n *frameNode) Arity() int            { return n.ctx.Arity() }

func (n *frameNode) ensure() {
	if n.fresh && n.lastGen == n.ctx.gen {
		return
	}
	for i := range n.deriv {
		n.deriv[i] = Frame{}
	}
	n.val = n.expr.eval(n.ctx, n.deriv)
	n.lastGen = n.ctx.gen
	n.fresh = true
}

func (n *frameNode) Value() Frame {
	n.ensure()
	return n.val
}

func (n *frameNode) Derivative(i int) Frame {
	n.ensure()
	return n.deriv[i]
}

// --- constructor ---------------------------------------------------------

type frameConstructorExpr struct {
	r RotationNode
	t VectorNode
}

func (e *frameConstructorExpr) eval(ctx *Context, deriv []Frame) Frame {
	for i := range deriv {
		deriv[i] = Frame{R: e.r.Derivative(i), T: e.t.Derivative(i)}
	}
	return Frame{R: e.r.Value(), T: e.t.Value()}
}

// NewFrameConstructor pairs a rotation node and a translation node
// into a frame node.
func NewFrameConstructor(ctx *Context, r RotationNode, t VectorNode) FrameNode {
	return wrapFrame(ctx, &frameConstructorExpr{r, t})
}

// --- composition -----------------------------------------------------------

// compose applies a*b as rigid transforms: rotation composes, and b's
// translation is carried through a's rotation before adding a's own.
func compose(a, b Frame) Frame {
	return Frame{R: a.R.mul(b.R), T: r3.Add(a.R.apply(b.T), a.T)}
}

// composeDeriv is the product-rule derivative of compose(a, b) given
// the derivative slices da, db at the same input index.
func composeDeriv(a, da, b, db Frame) Frame {
	return Frame{
		R: da.R.mul(b.R).add(a.R.mul(db.R)),
		T: r3.Add(r3.Add(da.R.apply(b.T), a.R.apply(db.T)), da.T),
	}
}

type frameMulExpr struct{ factors []FrameNode }

var identityFrame = Frame{R: Identity}

func (e *frameMulExpr) eval(ctx *Context, deriv []Frame) Frame {
	if len(e.factors) == 0 {
		for i := range deriv {
			deriv[i] = Frame{}
		}
		return identityFrame
	}
	v := e.factors[0].Value()
	for _, f := range e.factors[1:] {
		v = compose(v, f.Value())
	}
	for i := range deriv {
		d := e.factors[0].Derivative(i)
		acc := e.factors[0].Value()
		for _, f := range e.factors[1:] {
			d = composeDeriv(acc, d, f.Value(), f.Derivative(i))
			acc = compose(acc, f.Value())
		}
		deriv[i] = d
	}
	return v
}

// NewFrameMul composes frames left to right; the empty product is the
// identity frame (identity rotation, zero translation).
func NewFrameMul(ctx *Context, factors ...FrameNode) FrameNode {
	return wrapFrame(ctx, &frameMulExpr{factors})
}

type frameInverseExpr struct{ f FrameNode }

func (e *frameInverseExpr) eval(ctx *Context, deriv []Frame) Frame {
	f := e.f.Value()
	invR := f.R.transpose()
	invT := r3.Scale(-1, invR.apply(f.T))
	for i := range deriv {
		df := e.f.Derivative(i)
		dInvR := df.R.transpose()
		// d(-R^T t)/dx_i = -(dR^T t + R^T dt)
		dInvT := r3.Scale(-1, r3.Add(dInvR.apply(f.T), invR.apply(df.T)))
		deriv[i] = Frame{R: dInvR, T: dInvT}
	}
	return Frame{R: invR, T: invT}
}

// NewFrameInverse inverts a rigid transform: R' = R^T, t' = -R^T t.
func NewFrameInverse(ctx *Context, f FrameNode) FrameNode {
	return wrapFrame(ctx, &frameInverseExpr{f})
}
