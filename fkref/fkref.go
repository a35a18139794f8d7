// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fkref is a minimal, independently-coded forward-kinematics
// solver used only by tests, the role original_source/test/giskard's
// pr2_fk.cpp gives to KDL's ChainFkSolverPos_recursive: an
// authority-of-record to check a kernel frame expression against.
//
// The original test drives a real PR2 URDF, which is not part of this
// retrieval pack; this package instead fixes its own small 7-revolute
// chain (alternating axes, in the shoulder/elbow/wrist pattern a PR2
// arm follows) so kernel tests have a concrete, independent chain to
// check frame-mul/axis-angle composition against without depending on
// robot description parsing, which spec.md places out of scope.
package fkref

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/cpmech/gocart/spec"
)

// Joint is one revolute joint: a fixed translation from the previous
// link's frame, then a rotation by the joint's variable angle around
// Axis.
type Joint struct {
	Axis        r3.Vec
	Translation r3.Vec
}

// Chain is an ordered list of joints, base to tip.
type Chain []Joint

// Pose is a rigid transform: rotation matrix plus translation.
type Pose struct {
	R [3][3]float64
	T r3.Vec
}

// SevenDOFArm returns a fixed 7-revolute-joint chain in the
// shoulder-pan/lift/roll, elbow-flex, forearm-roll, wrist-flex/roll
// pattern a PR2 arm follows, with arbitrary but fixed link lengths.
func SevenDOFArm() Chain {
	return Chain{
		{Axis: r3.Vec{Z: 1}, Translation: r3.Vec{}},
		{Axis: r3.Vec{Y: 1}, Translation: r3.Vec{X: 0.1}},
		{Axis: r3.Vec{X: 1}, Translation: r3.Vec{Z: -0.2}},
		{Axis: r3.Vec{Y: 1}, Translation: r3.Vec{Z: -0.2}},
		{Axis: r3.Vec{X: 1}, Translation: r3.Vec{Z: -0.18}},
		{Axis: r3.Vec{Y: 1}, Translation: r3.Vec{Z: -0.14}},
		{Axis: r3.Vec{X: 1}, Translation: r3.Vec{Z: -0.1}},
	}
}

func axisAngleMatrix(axis r3.Vec, theta float64) [3][3]float64 {
	s, c := math.Sin(theta), math.Cos(theta)
	x, y, z := axis.X, axis.Y, axis.Z
	t := 1 - c
	return [3][3]float64{
		{t*x*x + c, t*x*y - s*z, t*x*z + s*y},
		{t*x*y + s*z, t*y*y + c, t*y*z - s*x},
		{t*x*z - s*y, t*y*z + s*x, t*z*z + c},
	}
}

func matMul(a, b [3][3]float64) [3][3]float64 {
	var out [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var acc float64
			for k := 0; k < 3; k++ {
				acc += a[i][k] * b[k][j]
			}
			out[i][j] = acc
		}
	}
	return out
}

func matApply(a [3][3]float64, v r3.Vec) r3.Vec {
	return r3.Vec{
		X: a[0][0]*v.X + a[0][1]*v.Y + a[0][2]*v.Z,
		Y: a[1][0]*v.X + a[1][1]*v.Y + a[1][2]*v.Z,
		Z: a[2][0]*v.X + a[2][1]*v.Y + a[2][2]*v.Z,
	}
}

// Spec builds the frame-mul spec tree a kernel/scope lowering of this
// chain must equal: joint i's angle reads input component
// startInputIndex+i. Each factor is a single FrameConstructor{R, T}
// rather than a separate translate-frame and rotate-frame, because
// composing Frame{I,T} then Frame{Rot,0} collapses algebraically to
// Frame{Rot,T} under kernel's compose rule (R=a.R*b.R, T=a.R*b.T+a.T)
// — exactly the order Value walks below.
func (c Chain) Spec(startInputIndex int) spec.FrameSpec {
	factors := make([]spec.FrameSpec, len(c))
	for i, j := range c {
		factors[i] = spec.FrameConstructor{
			R: spec.RotationAxisAngle{
				Axis: spec.VectorConstructor{
					X: spec.ScalarConst{V: j.Axis.X},
					Y: spec.ScalarConst{V: j.Axis.Y},
					Z: spec.ScalarConst{V: j.Axis.Z},
				},
				Angle: spec.ScalarInput{Index: startInputIndex + i},
			},
			T: spec.VectorConstructor{
				X: spec.ScalarConst{V: j.Translation.X},
				Y: spec.ScalarConst{V: j.Translation.Y},
				Z: spec.ScalarConst{V: j.Translation.Z},
			},
		}
	}
	return spec.FrameMul{Factors: factors}
}

// Value computes the tip pose for a joint-angle vector q, one entry
// per joint, base to tip.
func (c Chain) Value(q []float64) Pose {
	if len(q) != len(c) {
		panic("fkref: expected one angle per joint")
	}
	pose := Pose{R: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
	for i, j := range c {
		pose.T = r3.Add(pose.T, matApply(pose.R, j.Translation))
		pose.R = matMul(pose.R, axisAngleMatrix(j.Axis, q[i]))
	}
	return pose
}
