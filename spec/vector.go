// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spec

import "github.com/cpmech/gocart/doc"

// VectorSpec is the sealed family of 3-vector AST nodes.
type VectorSpec interface {
	isVectorSpec()
	Equals(other VectorSpec) bool
	Emit() doc.Node
}

// VectorConstructor is constructor(x, y, z).
type VectorConstructor struct{ X, Y, Z ScalarSpec }

func (VectorConstructor) isVectorSpec() {}
func (v VectorConstructor) Equals(other VectorSpec) bool {
	o, ok := other.(VectorConstructor)
	return ok && v.X.Equals(o.X) && v.Y.Equals(o.Y) && v.Z.Equals(o.Z)
}
func (v VectorConstructor) Emit() doc.Node {
	return doc.Tag(TagVector3, doc.Seq(v.X.Emit(), v.Y.Emit(), v.Z.Emit()))
}

// VectorReference is reference(name).
type VectorReference struct{ Name string }

func (VectorReference) isVectorSpec() {}
func (v VectorReference) Equals(other VectorSpec) bool {
	o, ok := other.(VectorReference)
	return ok && o.Name == v.Name
}
func (v VectorReference) Emit() doc.Node { return doc.Str(v.Name) }

// VectorAdd is add-many(terms...).
type VectorAdd struct{ Terms []VectorSpec }

func (VectorAdd) isVectorSpec() {}
func (v VectorAdd) Equals(other VectorSpec) bool {
	o, ok := other.(VectorAdd)
	return ok && equalVectorSlices(v.Terms, o.Terms)
}
func (v VectorAdd) Emit() doc.Node { return doc.Tag(TagVectorAdd, emitVectors(v.Terms)) }

// VectorSub is sub(a, b).
type VectorSub struct{ A, B VectorSpec }

func (VectorSub) isVectorSpec() {}
func (v VectorSub) Equals(other VectorSpec) bool {
	o, ok := other.(VectorSub)
	return ok && v.A.Equals(o.A) && v.B.Equals(o.B)
}
func (v VectorSub) Emit() doc.Node {
	return doc.Tag(TagVectorSub, doc.Seq(v.A.Emit(), v.B.Emit()))
}

// VectorScale is scale(scalar, vector).
type VectorScale struct {
	S ScalarSpec
	V VectorSpec
}

func (VectorScale) isVectorSpec() {}
func (v VectorScale) Equals(other VectorSpec) bool {
	o, ok := other.(VectorScale)
	return ok && v.S.Equals(o.S) && v.V.Equals(o.V)
}
func (v VectorScale) Emit() doc.Node {
	return doc.Tag(TagScaleVector, doc.Seq(v.S.Emit(), v.V.Emit()))
}

// VectorCross is cross(a, b).
type VectorCross struct{ A, B VectorSpec }

func (VectorCross) isVectorSpec() {}
func (v VectorCross) Equals(other VectorSpec) bool {
	o, ok := other.(VectorCross)
	return ok && v.A.Equals(o.A) && v.B.Equals(o.B)
}
func (v VectorCross) Emit() doc.Node {
	return doc.Tag(TagCross, doc.Seq(v.A.Emit(), v.B.Emit()))
}

// VectorRotationVector is rotation-vector(R): the canonical log map.
type VectorRotationVector struct{ R RotationSpec }

func (VectorRotationVector) isVectorSpec() {}
func (v VectorRotationVector) Equals(other VectorSpec) bool {
	o, ok := other.(VectorRotationVector)
	return ok && v.R.Equals(o.R)
}
func (v VectorRotationVector) Emit() doc.Node { return doc.Tag(TagRotVector, v.R.Emit()) }

// VectorOriginOf is origin-of(frame).
type VectorOriginOf struct{ F FrameSpec }

func (VectorOriginOf) isVectorSpec() {}
func (v VectorOriginOf) Equals(other VectorSpec) bool {
	o, ok := other.(VectorOriginOf)
	return ok && v.F.Equals(o.F)
}
func (v VectorOriginOf) Emit() doc.Node { return doc.Tag(TagOriginOf, v.F.Emit()) }

// VectorRotate is rotate(rotation, vector).
type VectorRotate struct {
	R RotationSpec
	V VectorSpec
}

func (VectorRotate) isVectorSpec() {}
func (v VectorRotate) Equals(other VectorSpec) bool {
	o, ok := other.(VectorRotate)
	return ok && v.R.Equals(o.R) && v.V.Equals(o.V)
}
func (v VectorRotate) Emit() doc.Node {
	return doc.Tag(TagRotate, doc.Seq(v.R.Emit(), v.V.Emit()))
}

func equalVectorSlices(a, b []VectorSpec) bool {
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

func emitVectors(specs []VectorSpec) doc.Node {
	items := make([]doc.Node, len(specs))
	for i, s := range specs {
		items[i] = s.Emit()
	}
	return doc.Seq(items...)
}
