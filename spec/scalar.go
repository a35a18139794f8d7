// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package spec implements the typed specification AST of component B:
// one sealed variant family per value kind (scalar, vector, rotation,
// frame), each supporting structural equality and emission back to the
// neutral document form, plus the tag-dispatched decoder that builds
// these trees from a doc.Node.
package spec

import "github.com/cpmech/gocart/doc"

// ScalarSpec is the sealed family of scalar AST nodes. The unexported
// marker method keeps the family closed to this package, following the
// teacher's small-role-interface style (see ele/element.go) rather than
// a class hierarchy with downcasts.
type ScalarSpec interface {
	isScalarSpec()
	// Equals reports structural equality: same tag, recursively-equal
	// children. References compare by name.
	Equals(other ScalarSpec) bool
	// Emit renders this node back to the neutral document form.
	Emit() doc.Node
}

// ScalarConst is a literal constant(v).
type ScalarConst struct{ V float64 }

func (ScalarConst) isScalarSpec() {}
func (s ScalarConst) Equals(other ScalarSpec) bool {
	o, ok := other.(ScalarConst)
	return ok && o.V == s.V
}
func (s ScalarConst) Emit() doc.Node { return doc.Float(s.V) }

// ScalarInput is input(i): the i-th component of the input vector.
type ScalarInput struct{ Index int }

func (ScalarInput) isScalarSpec() {}
func (s ScalarInput) Equals(other ScalarSpec) bool {
	o, ok := other.(ScalarInput)
	return ok && o.Index == s.Index
}
func (s ScalarInput) Emit() doc.Node {
	return doc.Tag(TagInputVar, doc.Float(float64(s.Index)))
}

// ScalarReference is reference(name): resolved against the scope kind
// by kind at lowering time.
type ScalarReference struct{ Name string }

func (ScalarReference) isScalarSpec() {}
func (s ScalarReference) Equals(other ScalarSpec) bool {
	o, ok := other.(ScalarReference)
	return ok && o.Name == s.Name
}
func (s ScalarReference) Emit() doc.Node { return doc.Str(s.Name) }

// ScalarNegate is negate(x).
type ScalarNegate struct{ X ScalarSpec }

func (ScalarNegate) isScalarSpec() {}
func (s ScalarNegate) Equals(other ScalarSpec) bool {
	o, ok := other.(ScalarNegate)
	return ok && s.X.Equals(o.X)
}
func (s ScalarNegate) Emit() doc.Node { return doc.Tag(TagNegate, s.X.Emit()) }

// ScalarAdd is add-many(terms...).
type ScalarAdd struct{ Terms []ScalarSpec }

func (ScalarAdd) isScalarSpec() {}
func (s ScalarAdd) Equals(other ScalarSpec) bool {
	o, ok := other.(ScalarAdd)
	return ok && equalScalarSlices(s.Terms, o.Terms)
}
func (s ScalarAdd) Emit() doc.Node { return doc.Tag(TagDoubleAdd, emitScalars(s.Terms)) }

// ScalarSub is sub(a, b).
type ScalarSub struct{ A, B ScalarSpec }

func (ScalarSub) isScalarSpec() {}
func (s ScalarSub) Equals(other ScalarSpec) bool {
	o, ok := other.(ScalarSub)
	return ok && s.A.Equals(o.A) && s.B.Equals(o.B)
}
func (s ScalarSub) Emit() doc.Node {
	return doc.Tag(TagDoubleSub, doc.Seq(s.A.Emit(), s.B.Emit()))
}

// ScalarMul is mul-many(factors...).
type ScalarMul struct{ Factors []ScalarSpec }

func (ScalarMul) isScalarSpec() {}
func (s ScalarMul) Equals(other ScalarSpec) bool {
	o, ok := other.(ScalarMul)
	return ok && equalScalarSlices(s.Factors, o.Factors)
}
func (s ScalarMul) Emit() doc.Node { return doc.Tag(TagDoubleMul, emitScalars(s.Factors)) }

// ScalarDiv is div(a, b).
type ScalarDiv struct{ A, B ScalarSpec }

func (ScalarDiv) isScalarSpec() {}
func (s ScalarDiv) Equals(other ScalarSpec) bool {
	o, ok := other.(ScalarDiv)
	return ok && s.A.Equals(o.A) && s.B.Equals(o.B)
}
func (s ScalarDiv) Emit() doc.Node {
	return doc.Tag(TagDoubleDiv, doc.Seq(s.A.Emit(), s.B.Emit()))
}

// ScalarXOf, ScalarYOf, ScalarZOf project a Cartesian component out of
// a VectorSpec.
type ScalarXOf struct{ V VectorSpec }
type ScalarYOf struct{ V VectorSpec }
type ScalarZOf struct{ V VectorSpec }

func (ScalarXOf) isScalarSpec() {}
func (s ScalarXOf) Equals(other ScalarSpec) bool {
	o, ok := other.(ScalarXOf)
	return ok && s.V.Equals(o.V)
}
func (s ScalarXOf) Emit() doc.Node { return doc.Tag(TagXOf, s.V.Emit()) }

func (ScalarYOf) isScalarSpec() {}
func (s ScalarYOf) Equals(other ScalarSpec) bool {
	o, ok := other.(ScalarYOf)
	return ok && s.V.Equals(o.V)
}
func (s ScalarYOf) Emit() doc.Node { return doc.Tag(TagYOf, s.V.Emit()) }

func (ScalarZOf) isScalarSpec() {}
func (s ScalarZOf) Equals(other ScalarSpec) bool {
	o, ok := other.(ScalarZOf)
	return ok && s.V.Equals(o.V)
}
func (s ScalarZOf) Emit() doc.Node { return doc.Tag(TagZOf, s.V.Emit()) }

// ScalarNorm is norm(v).
type ScalarNorm struct{ V VectorSpec }

func (ScalarNorm) isScalarSpec() {}
func (s ScalarNorm) Equals(other ScalarSpec) bool {
	o, ok := other.(ScalarNorm)
	return ok && s.V.Equals(o.V)
}
func (s ScalarNorm) Emit() doc.Node { return doc.Tag(TagNorm, s.V.Emit()) }

// ScalarDot is dot(a, b).
type ScalarDot struct{ A, B VectorSpec }

func (ScalarDot) isScalarSpec() {}
func (s ScalarDot) Equals(other ScalarSpec) bool {
	o, ok := other.(ScalarDot)
	return ok && s.A.Equals(o.A) && s.B.Equals(o.B)
}
func (s ScalarDot) Emit() doc.Node {
	return doc.Tag(TagDot, doc.Seq(s.A.Emit(), s.B.Emit()))
}

// ScalarMin is min(a, b).
type ScalarMin struct{ A, B ScalarSpec }

func (ScalarMin) isScalarSpec() {}
func (s ScalarMin) Equals(other ScalarSpec) bool {
	o, ok := other.(ScalarMin)
	return ok && s.A.Equals(o.A) && s.B.Equals(o.B)
}
func (s ScalarMin) Emit() doc.Node {
	return doc.Tag(TagMin, doc.Seq(s.A.Emit(), s.B.Emit()))
}

// ScalarMax is max(a, b).
type ScalarMax struct{ A, B ScalarSpec }

func (ScalarMax) isScalarSpec() {}
func (s ScalarMax) Equals(other ScalarSpec) bool {
	o, ok := other.(ScalarMax)
	return ok && s.A.Equals(o.A) && s.B.Equals(o.B)
}
func (s ScalarMax) Emit() doc.Node {
	return doc.Tag(TagMax, doc.Seq(s.A.Emit(), s.B.Emit()))
}

// ScalarAbs is abs(x).
type ScalarAbs struct{ X ScalarSpec }

func (ScalarAbs) isScalarSpec() {}
func (s ScalarAbs) Equals(other ScalarSpec) bool {
	o, ok := other.(ScalarAbs)
	return ok && s.X.Equals(o.X)
}
func (s ScalarAbs) Emit() doc.Node { return doc.Tag(TagAbs, s.X.Emit()) }

// trig family: sin, cos, tan, asin, acos share one shape (single scalar
// argument); atan2 and fmod take two.

type ScalarSin struct{ X ScalarSpec }
type ScalarCos struct{ X ScalarSpec }
type ScalarTan struct{ X ScalarSpec }
type ScalarAsin struct{ X ScalarSpec }
type ScalarAcos struct{ X ScalarSpec }

func (ScalarSin) isScalarSpec() {}
func (s ScalarSin) Equals(other ScalarSpec) bool {
	o, ok := other.(ScalarSin)
	return ok && s.X.Equals(o.X)
}
func (s ScalarSin) Emit() doc.Node { return doc.Tag(TagSin, s.X.Emit()) }

func (ScalarCos) isScalarSpec() {}
func (s ScalarCos) Equals(other ScalarSpec) bool {
	o, ok := other.(ScalarCos)
	return ok && s.X.Equals(o.X)
}
func (s ScalarCos) Emit() doc.Node { return doc.Tag(TagCos, s.X.Emit()) }

func (ScalarTan) isScalarSpec() {}
func (s ScalarTan) Equals(other ScalarSpec) bool {
	o, ok := other.(ScalarTan)
	return ok && s.X.Equals(o.X)
}
func (s ScalarTan) Emit() doc.Node { return doc.Tag(TagTan, s.X.Emit()) }

func (ScalarAsin) isScalarSpec() {}
func (s ScalarAsin) Equals(other ScalarSpec) bool {
	o, ok := other.(ScalarAsin)
	return ok && s.X.Equals(o.X)
}
func (s ScalarAsin) Emit() doc.Node { return doc.Tag(TagAsin, s.X.Emit()) }

func (ScalarAcos) isScalarSpec() {}
func (s ScalarAcos) Equals(other ScalarSpec) bool {
	o, ok := other.(ScalarAcos)
	return ok && s.X.Equals(o.X)
}
func (s ScalarAcos) Emit() doc.Node { return doc.Tag(TagAcos, s.X.Emit()) }

// ScalarAtan2 is atan2(y, x).
type ScalarAtan2 struct{ Y, X ScalarSpec }

func (ScalarAtan2) isScalarSpec() {}
func (s ScalarAtan2) Equals(other ScalarSpec) bool {
	o, ok := other.(ScalarAtan2)
	return ok && s.Y.Equals(o.Y) && s.X.Equals(o.X)
}
func (s ScalarAtan2) Emit() doc.Node {
	return doc.Tag(TagAtan2, doc.Seq(s.Y.Emit(), s.X.Emit()))
}

// ScalarFmod is fmod(a, b).
type ScalarFmod struct{ A, B ScalarSpec }

func (ScalarFmod) isScalarSpec() {}
func (s ScalarFmod) Equals(other ScalarSpec) bool {
	o, ok := other.(ScalarFmod)
	return ok && s.A.Equals(o.A) && s.B.Equals(o.B)
}
func (s ScalarFmod) Emit() doc.Node {
	return doc.Tag(TagFmod, doc.Seq(s.A.Emit(), s.B.Emit()))
}

func equalScalarSlices(a, b []ScalarSpec) bool {
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

func emitScalars(specs []ScalarSpec) doc.Node {
	items := make([]doc.Node, len(specs))
	for i, s := range specs {
		items[i] = s.Emit()
	}
	return doc.Seq(items...)
}
