// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spec

import (
	"errors"
	"testing"

	"github.com/cpmech/gocart/doc"
	"github.com/cpmech/gocart/gerr"
)

// roundTrip decodes n, emits the result, decodes the emission again,
// and checks the two ASTs are structurally equal — spec.md §8's
// round-trip law, scenario 4 being the axis-angle instance of it.
func roundTrip(t *testing.T, n doc.Node) RotationSpec {
	t.Helper()
	ast1, err := DecodeRotation(n)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	ast2, err := DecodeRotation(ast1.Emit())
	if err != nil {
		t.Fatalf("re-decode: %v", err)
	}
	if !ast1.Equals(ast2) {
		t.Fatalf("round trip failed: %#v != %#v", ast1, ast2)
	}
	return ast1
}

func TestRoundTrip_AxisAngle(t *testing.T) {
	// {axis-angle: [{vector3: [1,0,0]}, {input-var: 3}]}
	n := doc.Tag(TagAxisAngle, doc.Seq(
		doc.Tag(TagVector3, doc.Seq(doc.Float(1), doc.Float(0), doc.Float(0))),
		doc.Tag(TagInputVar, doc.Float(3)),
	))
	ast := roundTrip(t, n)
	aa, ok := ast.(RotationAxisAngle)
	if !ok {
		t.Fatalf("expected RotationAxisAngle, got %T", ast)
	}
	axis, ok := aa.Axis.(VectorConstructor)
	if !ok {
		t.Fatalf("expected VectorConstructor axis, got %T", aa.Axis)
	}
	if axis.X.(ScalarConst).V != 1 {
		t.Fatalf("expected axis.x == 1")
	}
	if aa.Angle.(ScalarInput).Index != 3 {
		t.Fatalf("expected angle input index 3")
	}
}

// TestRejection_GithubIssueNo1 is the regression found in the original
// source's yaml_parser.cpp: a double-mul whose second factor is tagged
// as a vector3 must fail with KindMismatchError, not be silently
// coerced or accepted.
func TestRejection_GithubIssueNo1(t *testing.T) {
	n := doc.Tag(TagDoubleMul, doc.Seq(
		doc.Float(-1),
		doc.Tag(TagVector3, doc.Seq(doc.Float(1), doc.Float(2), doc.Float(3))),
	))
	_, err := DecodeScalar(n)
	if err == nil {
		t.Fatalf("expected an error")
	}
	var kme *gerr.KindMismatchError
	if !errors.As(err, &kme) {
		t.Fatalf("expected *gerr.KindMismatchError, got %T: %v", err, err)
	}
}

func TestBareScalarDecodesAsConstant(t *testing.T) {
	// exercised fully in package constraint; here we only check that a
	// bare scalar decodes as a constant inside that context.
	n := doc.Float(-0.1)
	s, err := DecodeScalar(n)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s.(ScalarConst).V != -0.1 {
		t.Fatalf("expected -0.1")
	}
}

func TestScopeEmptyRoundTrip(t *testing.T) {
	spec := ScopeSpec{}
	n := spec.Emit()
	items, ok := n.AsSeq()
	if !ok || len(items) != 0 {
		t.Fatalf("expected an empty sequence")
	}
	decoded, err := DecodeScope(n)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !decoded.Equals(spec) {
		t.Fatalf("round trip mismatch")
	}
}

func TestScopeBindingRoundTrip(t *testing.T) {
	original := ScopeSpec{
		ScalarBinding("a", ScalarConst{V: 2}),
		VectorBinding("v", VectorConstructor{X: ScalarConst{1}, Y: ScalarConst{2}, Z: ScalarConst{3}}),
		ScalarBinding("b", ScalarAdd{Terms: []ScalarSpec{ScalarReference{"a"}, ScalarConst{V: 1}}}),
	}
	n := original.Emit()
	decoded, err := DecodeScope(n)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !decoded.Equals(original) {
		t.Fatalf("round trip mismatch:\n%#v\n%#v", decoded, original)
	}
}
