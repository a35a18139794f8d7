// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qpctrl

import (
	"github.com/cpmech/gocart/constraint"
	"github.com/cpmech/gocart/spec"
	"github.com/cpmech/gocart/valkind"
)

// inferArity implements spec.md §4.E step 3: n is one past the
// highest input index reachable from the scope bindings or from any
// constraint's bounds, weights or expression, so "excess observables"
// (inputs read by an expression but owned by no controllable) are
// still sized into the shared context.
func inferArity(cs constraint.ControllerSpec) int {
	max := -1
	bump := func(i int) {
		if i > max {
			max = i
		}
	}
	for _, b := range cs.Scope {
		switch b.Kind {
		case valkind.Scalar:
			bump(maxScalarInput(b.Scalar))
		case valkind.Vector:
			bump(maxVectorInput(b.Vector))
		case valkind.Rotation:
			bump(maxRotationInput(b.Rotation))
		case valkind.Frame:
			bump(maxFrameInput(b.Frame))
		}
	}
	for _, c := range cs.Controllables {
		bump(c.InputIndex)
		bump(maxScalarInput(c.Lower))
		bump(maxScalarInput(c.Upper))
		bump(maxScalarInput(c.Weight))
	}
	for _, s := range cs.Softs {
		bump(maxScalarInput(s.Lower))
		bump(maxScalarInput(s.Upper))
		bump(maxScalarInput(s.Weight))
		bump(maxScalarInput(s.Expression))
	}
	for _, h := range cs.Hards {
		bump(maxScalarInput(h.Lower))
		bump(maxScalarInput(h.Upper))
		bump(maxScalarInput(h.Expression))
	}
	return max + 1
}

func maxScalarInput(a spec.ScalarSpec) int {
	switch x := a.(type) {
	case nil:
		return -1
	case spec.ScalarConst, spec.ScalarReference:
		return -1
	case spec.ScalarInput:
		return x.Index
	case spec.ScalarNegate:
		return maxScalarInput(x.X)
	case spec.ScalarAdd:
		return maxScalars(x.Terms)
	case spec.ScalarSub:
		return max2(maxScalarInput(x.A), maxScalarInput(x.B))
	case spec.ScalarMul:
		return maxScalars(x.Factors)
	case spec.ScalarDiv:
		return max2(maxScalarInput(x.A), maxScalarInput(x.B))
	case spec.ScalarXOf:
		return maxVectorInput(x.V)
	case spec.ScalarYOf:
		return maxVectorInput(x.V)
	case spec.ScalarZOf:
		return maxVectorInput(x.V)
	case spec.ScalarNorm:
		return maxVectorInput(x.V)
	case spec.ScalarDot:
		return max2(maxVectorInput(x.A), maxVectorInput(x.B))
	case spec.ScalarMin:
		return max2(maxScalarInput(x.A), maxScalarInput(x.B))
	case spec.ScalarMax:
		return max2(maxScalarInput(x.A), maxScalarInput(x.B))
	case spec.ScalarAbs:
		return maxScalarInput(x.X)
	case spec.ScalarSin:
		return maxScalarInput(x.X)
	case spec.ScalarCos:
		return maxScalarInput(x.X)
	case spec.ScalarTan:
		return maxScalarInput(x.X)
	case spec.ScalarAsin:
		return maxScalarInput(x.X)
	case spec.ScalarAcos:
		return maxScalarInput(x.X)
	case spec.ScalarAtan2:
		return max2(maxScalarInput(x.Y), maxScalarInput(x.X))
	case spec.ScalarFmod:
		return max2(maxScalarInput(x.A), maxScalarInput(x.B))
	}
	return -1
}

func maxVectorInput(a spec.VectorSpec) int {
	switch x := a.(type) {
	case nil:
		return -1
	case spec.VectorReference:
		return -1
	case spec.VectorConstructor:
		return max3(maxScalarInput(x.X), maxScalarInput(x.Y), maxScalarInput(x.Z))
	case spec.VectorAdd:
		return maxVectors(x.Terms)
	case spec.VectorSub:
		return max2(maxVectorInput(x.A), maxVectorInput(x.B))
	case spec.VectorScale:
		return max2(maxScalarInput(x.S), maxVectorInput(x.V))
	case spec.VectorCross:
		return max2(maxVectorInput(x.A), maxVectorInput(x.B))
	case spec.VectorRotationVector:
		return maxRotationInput(x.R)
	case spec.VectorOriginOf:
		return maxFrameInput(x.F)
	case spec.VectorRotate:
		return max2(maxRotationInput(x.R), maxVectorInput(x.V))
	}
	return -1
}

func maxRotationInput(a spec.RotationSpec) int {
	switch x := a.(type) {
	case nil:
		return -1
	case spec.RotationReference:
		return -1
	case spec.RotationAxisAngle:
		return max2(maxVectorInput(x.Axis), maxScalarInput(x.Angle))
	case spec.RotationQuaternion:
		return max4(maxScalarInput(x.X), maxScalarInput(x.Y), maxScalarInput(x.Z), maxScalarInput(x.W))
	case spec.RotationMul:
		return maxRotations(x.Factors)
	case spec.RotationInverse:
		return maxRotationInput(x.R)
	case spec.RotationOrientationOf:
		return maxFrameInput(x.F)
	}
	return -1
}

func maxFrameInput(a spec.FrameSpec) int {
	switch x := a.(type) {
	case nil:
		return -1
	case spec.FrameReference:
		return -1
	case spec.FrameConstructor:
		return max2(maxRotationInput(x.R), maxVectorInput(x.T))
	case spec.FrameMul:
		return maxFrames(x.Factors)
	case spec.FrameInverse:
		return maxFrameInput(x.F)
	}
	return -1
}

func maxScalars(xs []spec.ScalarSpec) int {
	m := -1
	for _, x := range xs {
		m = max2(m, maxScalarInput(x))
	}
	return m
}

func maxVectors(xs []spec.VectorSpec) int {
	m := -1
	for _, x := range xs {
		m = max2(m, maxVectorInput(x))
	}
	return m
}

func maxRotations(xs []spec.RotationSpec) int {
	m := -1
	for _, x := range xs {
		m = max2(m, maxRotationInput(x))
	}
	return m
}

func maxFrames(xs []spec.FrameSpec) int {
	m := -1
	for _, x := range xs {
		m = max2(m, maxFrameInput(x))
	}
	return m
}

func max2(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func max3(a, b, c int) int { return max2(max2(a, b), c) }

func max4(a, b, c, d int) int { return max2(max2(a, b), max2(c, d)) }
