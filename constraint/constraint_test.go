// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"testing"

	"github.com/cpmech/gocart/doc"
	"github.com/cpmech/gocart/spec"
)

// TestControllableConstraintDecoding is spec.md §8 scenario 6:
// controllable-constraint: [-0.1, 0.2, 5.0, 2, my name] decodes exactly.
func TestControllableConstraintDecoding(t *testing.T) {
	n := doc.Tag(spec.TagControllableConstraint, doc.Seq(
		doc.Float(-0.1), doc.Float(0.2), doc.Float(5.0), doc.Float(2), doc.Str("my name"),
	))
	c, err := DecodeControllable(n)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if c.Lower.(spec.ScalarConst).V != -0.1 {
		t.Fatalf("lower: got %v", c.Lower)
	}
	if c.Upper.(spec.ScalarConst).V != 0.2 {
		t.Fatalf("upper: got %v", c.Upper)
	}
	if c.Weight.(spec.ScalarConst).V != 5.0 {
		t.Fatalf("weight: got %v", c.Weight)
	}
	if c.InputIndex != 2 {
		t.Fatalf("input_index: got %d", c.InputIndex)
	}
	if c.Name != "my name" {
		t.Fatalf("name: got %q", c.Name)
	}
}

func TestSoftConstraintDecoding(t *testing.T) {
	n := doc.Tag(spec.TagSoftConstraint, doc.Seq(
		doc.Float(-10.1), doc.Float(120.2), doc.Float(5.0), doc.Float(1.1), doc.Str("some name"),
	))
	s, err := DecodeSoft(n)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s.Lower.(spec.ScalarConst).V != -10.1 || s.Upper.(spec.ScalarConst).V != 120.2 {
		t.Fatalf("bounds: got [%v, %v]", s.Lower, s.Upper)
	}
	if s.Weight.(spec.ScalarConst).V != 5.0 {
		t.Fatalf("weight: got %v", s.Weight)
	}
	if s.Expression.(spec.ScalarConst).V != 1.1 {
		t.Fatalf("expression: got %v", s.Expression)
	}
	if s.Name != "some name" {
		t.Fatalf("name: got %q", s.Name)
	}
}

func TestHardConstraintDecoding(t *testing.T) {
	n := doc.Tag(spec.TagHardConstraint, doc.Seq(doc.Float(-10.1), doc.Float(120.2), doc.Float(1.1)))
	h, err := DecodeHard(n)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if h.Lower.(spec.ScalarConst).V != -10.1 || h.Upper.(spec.ScalarConst).V != 120.2 {
		t.Fatalf("bounds: got [%v, %v]", h.Lower, h.Upper)
	}
	if h.Expression.(spec.ScalarConst).V != 1.1 {
		t.Fatalf("expression: got %v", h.Expression)
	}
}

func TestControllerSpecDecoding(t *testing.T) {
	n := doc.MapOf(
		doc.KV(spec.KeyScope, doc.Seq()),
		doc.KV(spec.KeyControllableConstraints, doc.Seq(
			doc.Tag(spec.TagControllableConstraint, doc.Seq(
				doc.Float(-1), doc.Float(1), doc.Float(1), doc.Float(0), doc.Str("j0"))),
		)),
		doc.KV(spec.KeySoftConstraints, doc.Seq()),
		doc.KV(spec.KeyHardConstraints, doc.Seq()),
	)
	cs, err := DecodeControllerSpec(n)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(cs.Controllables) != 1 || cs.Controllables[0].Name != "j0" {
		t.Fatalf("expected one controllable named j0, got %+v", cs.Controllables)
	}
	if len(cs.Scope) != 0 || len(cs.Softs) != 0 || len(cs.Hards) != 0 {
		t.Fatalf("expected empty scope/softs/hards")
	}
}
