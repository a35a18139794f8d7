// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/spatial/r3"
)

// checkScalarDeriv cross-checks node's analytic derivative against the
// teacher's own finite-difference helper, scanning every input
// component in turn and leaving the others fixed at base.
func checkScalarDeriv(t *testing.T, label string, ctx *Context, node ScalarNode, base []float64) {
	t.Helper()
	n := len(base)
	work := make([]float64, n)
	for i := 0; i < n; i++ {
		copy(work, base)
		node.SetInputs(work)
		ana := node.Derivative(i)
		chk.DerivScaSca(t, label, 1e-6, ana, base[i], 1e-3, chk.Verbose, func(x float64) (float64, error) {
			copy(work, base)
			work[i] = x
			node.SetInputs(work)
			return node.Value(), nil
		})
	}
	node.SetInputs(base)
}

func TestScalarAddMulDeriv(t *testing.T) {
	ctx := NewContext(2)
	x := NewInput(ctx, 0)
	y := NewInput(ctx, 1)
	sum := NewAdd(ctx, x, y, NewConst(ctx, 3))
	prod := NewMul(ctx, x, y)
	checkScalarDeriv(t, "d(sum)", ctx, sum, []float64{1.3, -2.1})
	checkScalarDeriv(t, "d(prod)", ctx, prod, []float64{1.3, -2.1})
}

func TestScalarDivPanicsOnZero(t *testing.T) {
	ctx := NewContext(1)
	x := NewInput(ctx, 0)
	zero := NewConst(ctx, 0)
	node := NewDiv(ctx, x, zero)
	var err error
	func() {
		defer Recover("div", &err)
		node.SetInputs([]float64{1})
		node.Value()
	}()
	if err == nil {
		t.Fatalf("expected an evaluation error")
	}
}

func TestScalarAbsDeriv(t *testing.T) {
	ctx := NewContext(1)
	x := NewInput(ctx, 0)
	abs := NewAbs(ctx, x)
	checkScalarDeriv(t, "d(abs)/dx, x>0", ctx, abs, []float64{1.3})
	checkScalarDeriv(t, "d(abs)/dx, x<0", ctx, abs, []float64{-2.1})
}

func TestScalarAbsDerivZeroAtCrease(t *testing.T) {
	ctx := NewContext(1)
	x := NewInput(ctx, 0)
	abs := NewAbs(ctx, x)
	abs.SetInputs([]float64{0})
	if abs.Value() != 0 {
		t.Fatalf("expected abs(0) == 0, got %v", abs.Value())
	}
	if d := abs.Derivative(0); d != 0 {
		t.Fatalf("expected d(abs)/dx at x=0 to be 0, got %v", d)
	}
}

func TestVectorNormDotDeriv(t *testing.T) {
	ctx := NewContext(3)
	v := NewVectorConstructor(ctx, NewInput(ctx, 0), NewInput(ctx, 1), NewInput(ctx, 2))
	norm := NewNorm(ctx, v)
	checkScalarDeriv(t, "d(norm)", ctx, norm, []float64{1, 2, 3})

	a := NewVectorConstructor(ctx, NewConst(ctx, 1), NewConst(ctx, 0), NewConst(ctx, 0))
	dot := NewDot(ctx, v, a)
	checkScalarDeriv(t, "d(dot)", ctx, dot, []float64{1, 2, 3})
}

func TestRotationMulIdentityOnEmpty(t *testing.T) {
	ctx := NewContext(1)
	empty := NewRotationMul(ctx)
	empty.SetInputs([]float64{0})
	got := empty.Value()
	if got != Identity {
		t.Fatalf("expected identity, got %v", got)
	}
}

func TestFrameMulIdentityOnEmpty(t *testing.T) {
	ctx := NewContext(1)
	empty := NewFrameMul(ctx)
	empty.SetInputs([]float64{0})
	got := empty.Value()
	if got.R != Identity || got.T != (r3.Vec{}) {
		t.Fatalf("expected identity frame, got %+v", got)
	}
}

func TestRotationInverseInvolution(t *testing.T) {
	ctx := NewContext(1)
	axis := NewVectorConstructor(ctx, NewConst(ctx, 0), NewConst(ctx, 0), NewConst(ctx, 1))
	r := NewAxisAngle(ctx, axis, NewInput(ctx, 0))
	doubleInv := NewRotationInverse(ctx, NewRotationInverse(ctx, r))
	doubleInv.SetInputs([]float64{0.7})
	r.SetInputs([]float64{0.7})
	got, want := doubleInv.Value(), r.Value()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(got[i][j]-want[i][j]) > 1e-9 {
				t.Fatalf("inverse(inverse(R)) != R at [%d][%d]: %v vs %v", i, j, got, want)
			}
		}
	}
}

func TestRotationVectorLogOfAxisAngle(t *testing.T) {
	ctx := NewContext(1)
	axisVec := r3.Unit(r3.Vec{X: 1, Y: 2, Z: 2})
	axis := NewVectorConstructor(ctx, NewConst(ctx, axisVec.X), NewConst(ctx, axisVec.Y), NewConst(ctx, axisVec.Z))
	theta := 0.6
	r := NewAxisAngle(ctx, axis, NewConst(ctx, theta))
	log := NewRotationVectorLog(ctx, r)
	log.SetInputs([]float64{0})
	got := log.Value()
	want := r3.Scale(theta, axisVec)
	if math.Abs(got.X-want.X) > 1e-6 || math.Abs(got.Y-want.Y) > 1e-6 || math.Abs(got.Z-want.Z) > 1e-6 {
		t.Fatalf("rotation-vector(axis-angle(axis,theta)) = %v, want %v", got, want)
	}
}

func TestOrientationOfOriginOfProjections(t *testing.T) {
	ctx := NewContext(1)
	axis := NewVectorConstructor(ctx, NewConst(ctx, 0), NewConst(ctx, 1), NewConst(ctx, 0))
	r := NewAxisAngle(ctx, axis, NewInput(ctx, 0))
	trans := NewVectorConstructor(ctx, NewConst(ctx, 1), NewConst(ctx, 2), NewConst(ctx, 3))
	f := NewFrameConstructor(ctx, r, trans)
	orientation := NewOrientationOf(ctx, f)
	origin := NewOriginOf(ctx, f)

	f.SetInputs([]float64{0.4})
	if orientation.Value() != r.Value() {
		t.Fatalf("orientation-of did not pass through the rotation component")
	}
	if origin.Value() != trans.Value() {
		t.Fatalf("origin-of did not pass through the translation component")
	}
	for i := 0; i < ctx.Arity(); i++ {
		if orientation.Derivative(i) != r.Derivative(i) {
			t.Fatalf("orientation-of Jacobian did not pass through at %d", i)
		}
	}
}
