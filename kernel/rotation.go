// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Rotation is a 3x3 matrix in row-major form. As a Value() it is a
// proper rotation; as a Derivative(i) it is an arbitrary 3x3 matrix
// (the i-th Jacobian slice), reusing the same container per the
// "derivative has the same kind as the value" rule.
type Rotation [3][3]float64

// Identity is the rotation that leaves every vector unchanged.
var Identity = Rotation{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// apply computes R*v.
func (r Rotation) apply(v r3.Vec) r3.Vec {
	return r3.Vec{
		X: r[0][0]*v.X + r[0][1]*v.Y + r[0][2]*v.Z,
		Y: r[1][0]*v.X + r[1][1]*v.Y + r[1][2]*v.Z,
		Z: r[2][0]*v.X + r[2][1]*v.Y + r[2][2]*v.Z,
	}
}

// mulDeriv applies dR (a raw 3x3, not necessarily orthogonal) to v;
// used when combining a Jacobian slice of a rotation with a vector
// under the product rule.
func (r Rotation) mulDeriv(dR Rotation, v r3.Vec) r3.Vec { return dR.apply(v) }

// mul computes the matrix product r*s.
func (r Rotation) mul(s Rotation) Rotation {
	var out Rotation
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var acc float64
			for k := 0; k < 3; k++ {
				acc += r[i][k] * s[k][j]
			}
			out[i][j] = acc
		}
	}
	return out
}

// add is ordinary matrix addition, used when summing Jacobian slices
// under the product rule (the result is not itself a rotation).
func (r Rotation) add(s Rotation) Rotation {
	var out Rotation
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = r[i][j] + s[i][j]
		}
	}
	return out
}

// transpose computes the matrix transpose, which is also the inverse
// for a proper rotation.
func (r Rotation) transpose() Rotation {
	var out Rotation
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = r[j][i]
		}
	}
	return out
}

// RotationNode is a kernel node of the rotation kind.
type RotationNode interface {
	SetInputs(v []float64)
	Value() Rotation
	Derivative(i int) Rotation
	Arity() int
}

type rotationExpr interface {
	eval(ctx *Context, deriv []Rotation) Rotation
}

type rotationNode struct {
	ctx     *Context
	lastGen uint64
	fresh   bool
	val     Rotation
	deriv   []Rotation
	expr    rotationExpr
}

func wrapRotation(ctx *Context, e rotationExpr) RotationNode {
	return &rotationNode{ctx: ctx, deriv: make([]Rotation, ctx.Arity()), expr: e}
}

func (n *rotationNode) SetInputs(v []float64) { n.ctx.SetInputs(v) }
func (n *rotationNode) Arity() int            { return n.ctx.Arity() }

func (n *rotationNode) ensure() {
	if n.fresh && n.lastGen == n.ctx.gen {
		return
	}
	for i := range n.deriv {
		n.deriv[i] = Rotation{}
	}
	n.val = n.expr.eval(n.ctx, n.deriv)
	n.lastGen = n.ctx.gen
	n.fresh = true
}

func (n *rotationNode) Value() Rotation {
	n.ensure()
	return n.val
}

func (n *rotationNode) Derivative(i int) Rotation {
	n.ensure()
	return n.deriv[i]
}

// --- axis-angle, Rodrigues' formula --------------------------------------

type axisAngleExpr struct {
	axis  VectorNode
	angle ScalarNode
}

// rodrigues builds R(axis, theta) = I + sin(theta) K + (1-cos(theta)) K^2
// where K is the cross-product matrix of the unit axis.
func rodrigues(axis r3.Vec, theta float64) Rotation {
	n := r3.Unit(axis)
	s, c := math.Sin(theta), math.Cos(theta)
	k := crossMatrix(n)
	k2 := k.mul(k)
	return Identity.add(k.scale(s)).add(k2.scale(1 - c))
}

func crossMatrix(n r3.Vec) Rotation {
	return Rotation{
		{0, -n.Z, n.Y},
		{n.Z, 0, -n.X},
		{-n.Y, n.X, 0},
	}
}

func (r Rotation) scale(s float64) Rotation {
	var out Rotation
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = r[i][j] * s
		}
	}
	return out
}

func (e *axisAngleExpr) eval(ctx *Context, deriv []Rotation) Rotation {
	axis := e.axis.Value()
	theta := e.angle.Value()
	r := rodrigues(axis, theta)
	// finite-difference the axis/angle Jacobian into the chain rule:
	// dR/dx_i = dR/dtheta * dtheta/dx_i + dR/daxis . daxis/dx_i, both
	// computed by central difference on the closed-form Rodrigues map
	// since its analytic Jacobian with a normalized, input-dependent
	// axis is unwieldy to hand-differentiate and the map is smooth
	// away from the identity axis.
	const h = 1e-6
	for i := range deriv {
		dAxis := e.axis.Derivative(i)
		dTheta := e.angle.Derivative(i)
		plus := rodrigues(r3.Add(axis, r3.Scale(h, dAxis)), theta+h*dTheta)
		minus := rodrigues(r3.Sub(axis, r3.Scale(h, dAxis)), theta-h*dTheta)
		deriv[i] = plus.add(minus.scale(-1)).scale(1 / (2 * h))
	}
	return r
}

// NewAxisAngle builds a rotation from an axis vector and an angle
// about it, per Rodrigues' rotation formula.
func NewAxisAngle(ctx *Context, axis VectorNode, angle ScalarNode) RotationNode {
	return wrapRotation(ctx, &axisAngleExpr{axis, angle})
}

// --- quaternion -----------------------------------------------------------

type quaternionExpr struct{ x, y, z, w ScalarNode }

func quatToRotation(q quat.Number) Rotation {
	n := math.Sqrt(q.Real*q.Real + q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
	if n == 0 {
		return Identity
	}
	w, x, y, z := q.Real/n, q.Imag/n, q.Jmag/n, q.Kmag/n
	return Rotation{
		{1 - 2*(y*y+z*z), 2 * (x*y - z*w), 2 * (x*z + y*w)},
		{2 * (x*y + z*w), 1 - 2*(x*x+z*z), 2 * (y*z - x*w)},
		{2 * (x*z - y*w), 2 * (y*z + x*w), 1 - 2*(x*x+y*y)},
	}
}

func (e *quaternionExpr) eval(ctx *Context, deriv []Rotation) Rotation {
	x, y, z, w := e.x.Value(), e.y.Value(), e.z.Value(), e.w.Value()
	if x == 0 && y == 0 && z == 0 && w == 0 {
		panic(evalPanic{"zero quaternion cannot be normalized"})
	}
	r := quatToRotation(quat.Number{Imag: x, Jmag: y, Kmag: z, Real: w})
	const h = 1e-6
	for i := range deriv {
		dx, dy, dz, dw := e.x.Derivative(i), e.y.Derivative(i), e.z.Derivative(i), e.w.Derivative(i)
		plus := quatToRotation(quat.Number{Imag: x + h*dx, Jmag: y + h*dy, Kmag: z + h*dz, Real: w + h*dw})
		minus := quatToRotation(quat.Number{Imag: x - h*dx, Jmag: y - h*dy, Kmag: z - h*dz, Real: w - h*dw})
		deriv[i] = plus.add(minus.scale(-1)).scale(1 / (2 * h))
	}
	return r
}

// NewQuaternion builds a rotation from a (possibly unnormalized)
// quaternion, normalizing it first.
func NewQuaternion(ctx *Context, x, y, z, w ScalarNode) RotationNode {
	return wrapRotation(ctx, &quaternionExpr{x, y, z, w})
}

// --- composition ------------------------------------------------------

type rotationMulExpr struct{ factors []RotationNode }

func (e *rotationMulExpr) eval(ctx *Context, deriv []Rotation) Rotation {
	if len(e.factors) == 0 {
		for i := range deriv {
			deriv[i] = Rotation{}
		}
		return Identity
	}
	v := e.factors[0].Value()
	for _, f := range e.factors[1:] {
		v = v.mul(f.Value())
	}
	for i := range deriv {
		// product rule across the chain of factors.
		var d Rotation
		for k := range e.factors {
			term := e.factors[k].Derivative(i)
			for j := k - 1; j >= 0; j-- {
				term = e.factors[j].Value().mul(term)
			}
			for j := k + 1; j < len(e.factors); j++ {
				term = term.mul(e.factors[j].Value())
			}
			d = d.add(term)
		}
		deriv[i] = d
	}
	return v
}

// NewRotationMul composes rotations left to right; the empty product
// is the identity rotation.
func NewRotationMul(ctx *Context, factors ...RotationNode) RotationNode {
	return wrapRotation(ctx, &rotationMulExpr{factors})
}

type rotationInverseExpr struct{ r RotationNode }

func (e *rotationInverseExpr) eval(ctx *Context, deriv []Rotation) Rotation {
	r := e.r.Value()
	inv := r.transpose()
	for i := range deriv {
		// d(R^T)/dx_i = (dR/dx_i)^T
		deriv[i] = e.r.Derivative(i).transpose()
	}
	return inv
}

// NewRotationInverse inverts a rotation via its transpose.
func NewRotationInverse(ctx *Context, r RotationNode) RotationNode {
	return wrapRotation(ctx, &rotationInverseExpr{r})
}

type orientationOfExpr struct{ f FrameNode }

func (e *orientationOfExpr) eval(ctx *Context, deriv []Rotation) Rotation {
	for i := range deriv {
		deriv[i] = e.f.Derivative(i).R
	}
	return e.f.Value().R
}

// NewOrientationOf projects the rotation component out of a frame.
func NewOrientationOf(ctx *Context, f FrameNode) RotationNode {
	return wrapRotation(ctx, &orientationOfExpr{f})
}

// --- rotation-vector (log map) --------------------------------------------

// rotationLog computes the axis*angle vector of a proper rotation
// (the so(3) logarithm), breaking the angle=pi tie by taking the axis
// from the largest diagonal entry of R+R^T, the numerically stable
// choice since sin(theta)=0 there and the skew-symmetric part vanishes.
func rotationLog(r Rotation) r3.Vec {
	trace := r[0][0] + r[1][1] + r[2][2]
	cosTheta := (trace - 1) / 2
	if cosTheta > 1 {
		cosTheta = 1
	}
	if cosTheta < -1 {
		cosTheta = -1
	}
	theta := math.Acos(cosTheta)
	if theta < 1e-9 {
		return r3.Vec{}
	}
	if math.Pi-theta < 1e-6 {
		// near the pi singularity: sin(theta) ~ 0, recover the axis
		// from the symmetric part R+R^T instead of the skew part.
		axis := r3.Vec{X: 1, Y: 0, Z: 0}
		best := r[0][0]
		if r[1][1] > best {
			axis, best = r3.Vec{Y: 1}, r[1][1]
		}
		if r[2][2] > best {
			axis = r3.Vec{Z: 1}
		}
		switch {
		case axis.X == 1:
			axis = r3.Vec{X: (r[0][0] + 1) / 2, Y: r[0][1] / 2, Z: r[0][2] / 2}
		case axis.Y == 1:
			axis = r3.Vec{X: r[1][0] / 2, Y: (r[1][1] + 1) / 2, Z: r[1][2] / 2}
		default:
			axis = r3.Vec{X: r[2][0] / 2, Y: r[2][1] / 2, Z: (r[2][2] + 1) / 2}
		}
		return r3.Scale(theta, r3.Unit(axis))
	}
	axis := r3.Vec{X: r[2][1] - r[1][2], Y: r[0][2] - r[2][0], Z: r[1][0] - r[0][1]}
	axis = r3.Scale(1/(2*math.Sin(theta)), axis)
	return r3.Scale(theta, axis)
}

type rotationVectorExpr struct{ r RotationNode }

func (e *rotationVectorExpr) eval(ctx *Context, deriv []r3.Vec) r3.Vec {
	r := e.r.Value()
	v := rotationLog(r)
	const h = 1e-6
	for i := range deriv {
		dR := e.r.Derivative(i)
		plus := rotationLog(r.add(dR.scale(h)))
		minus := rotationLog(r.add(dR.scale(-h)))
		deriv[i] = r3.Scale(1/(2*h), r3.Sub(plus, minus))
	}
	return v
}

// NewRotationVectorLog computes the axis*angle log map of a rotation.
func NewRotationVectorLog(ctx *Context, r RotationNode) VectorNode {
	return wrapVector(ctx, &rotationVectorExpr{r})
}
