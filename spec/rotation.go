// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spec

import "github.com/cpmech/gocart/doc"

// RotationSpec is the sealed family of rotation AST nodes.
type RotationSpec interface {
	isRotationSpec()
	Equals(other RotationSpec) bool
	Emit() doc.Node
}

// RotationAxisAngle is axis-angle(axis, angle).
type RotationAxisAngle struct {
	Axis  VectorSpec
	Angle ScalarSpec
}

func (RotationAxisAngle) isRotationSpec() {}
func (r RotationAxisAngle) Equals(other RotationSpec) bool {
	o, ok := other.(RotationAxisAngle)
	return ok && r.Axis.Equals(o.Axis) && r.Angle.Equals(o.Angle)
}
func (r RotationAxisAngle) Emit() doc.Node {
	return doc.Tag(TagAxisAngle, doc.Seq(r.Axis.Emit(), r.Angle.Emit()))
}

// RotationQuaternion is quaternion(x, y, z, w); normalized by the
// kernel when converted to a rotation matrix.
type RotationQuaternion struct{ X, Y, Z, W ScalarSpec }

func (RotationQuaternion) isRotationSpec() {}
func (r RotationQuaternion) Equals(other RotationSpec) bool {
	o, ok := other.(RotationQuaternion)
	return ok && r.X.Equals(o.X) && r.Y.Equals(o.Y) && r.Z.Equals(o.Z) && r.W.Equals(o.W)
}
func (r RotationQuaternion) Emit() doc.Node {
	return doc.Tag(TagQuaternion, doc.Seq(r.X.Emit(), r.Y.Emit(), r.Z.Emit(), r.W.Emit()))
}

// RotationMul is rotation-mul([r1...rk]); empty list is identity.
type RotationMul struct{ Factors []RotationSpec }

func (RotationMul) isRotationSpec() {}
func (r RotationMul) Equals(other RotationSpec) bool {
	o, ok := other.(RotationMul)
	return ok && equalRotationSlices(r.Factors, o.Factors)
}
func (r RotationMul) Emit() doc.Node { return doc.Tag(TagRotationMul, emitRotations(r.Factors)) }

// RotationInverse is inverse(R).
type RotationInverse struct{ R RotationSpec }

func (RotationInverse) isRotationSpec() {}
func (r RotationInverse) Equals(other RotationSpec) bool {
	o, ok := other.(RotationInverse)
	return ok && r.R.Equals(o.R)
}
func (r RotationInverse) Emit() doc.Node { return doc.Tag(TagInverseRotation, r.R.Emit()) }

// RotationOrientationOf is orientation-of(frame).
type RotationOrientationOf struct{ F FrameSpec }

func (RotationOrientationOf) isRotationSpec() {}
func (r RotationOrientationOf) Equals(other RotationSpec) bool {
	o, ok := other.(RotationOrientationOf)
	return ok && r.F.Equals(o.F)
}
func (r RotationOrientationOf) Emit() doc.Node { return doc.Tag(TagOrientationOf, r.F.Emit()) }

// RotationReference is reference(name).
type RotationReference struct{ Name string }

func (RotationReference) isRotationSpec() {}
func (r RotationReference) Equals(other RotationSpec) bool {
	o, ok := other.(RotationReference)
	return ok && o.Name == r.Name
}
func (r RotationReference) Emit() doc.Node { return doc.Str(r.Name) }

func equalRotationSlices(a, b []RotationSpec) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equals(b[i]) {
			return false
		}
	}
	return true
}

func emitRotations(specs []RotationSpec) doc.Node {
	items := make([]doc.Node, len(specs))
	for i, s := range specs {
		items[i] = s.Emit()
	}
	return doc.Seq(items...)
}
