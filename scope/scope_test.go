// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scope

import (
	"errors"
	"testing"

	"github.com/cpmech/gocart/gerr"
	"github.com/cpmech/gocart/spec"
)

func TestDuplicateBinding(t *testing.T) {
	s := spec.ScopeSpec{
		spec.ScalarBinding("a", spec.ScalarConst{V: 1}),
		spec.ScalarBinding("a", spec.ScalarConst{V: 2}),
	}
	_, err := Generate(1, s)
	var dup *gerr.DuplicateBindingError
	if !errors.As(err, &dup) {
		t.Fatalf("expected *gerr.DuplicateBindingError, got %T: %v", err, err)
	}
}

func TestUnresolvedReference(t *testing.T) {
	s := spec.ScopeSpec{
		spec.ScalarBinding("a", spec.ScalarReference{Name: "nope"}),
	}
	_, err := Generate(1, s)
	var unres *gerr.UnresolvedReferenceError
	if !errors.As(err, &unres) {
		t.Fatalf("expected *gerr.UnresolvedReferenceError, got %T: %v", err, err)
	}
}

func TestKindMismatchReference(t *testing.T) {
	s := spec.ScopeSpec{
		spec.ScalarBinding("a", spec.ScalarConst{V: 1}),
		spec.VectorBinding("v", spec.VectorConstructor{
			X: spec.ScalarReference{Name: "a"},
			Y: spec.ScalarReference{Name: "a"},
			Z: spec.ScalarReference{Name: "a"},
		}),
		spec.RotationBinding("bad", spec.RotationInverse{R: spec.RotationReference{Name: "a"}}),
	}
	_, err := Generate(1, s)
	var kme *gerr.KindMismatchError
	if !errors.As(err, &kme) {
		t.Fatalf("expected *gerr.KindMismatchError, got %T: %v", err, err)
	}
}

func TestNodeSharingViaReference(t *testing.T) {
	s := spec.ScopeSpec{
		spec.ScalarBinding("a", spec.ScalarConst{V: 2}),
		spec.ScalarBinding("b", spec.ScalarAdd{Terms: []spec.ScalarSpec{
			spec.ScalarReference{Name: "a"},
			spec.ScalarReference{Name: "a"},
		}}),
	}
	sc, err := Generate(0, s)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	aNode, _ := sc.FindScalarExpression("a")
	bNode, _ := sc.FindScalarExpression("b")
	ref, err := sc.LowerScalar(spec.ScalarReference{Name: "a"})
	if err != nil || ref != aNode {
		t.Fatalf("expected a reference to a to lower to the bound node itself, got %v (err %v)", ref, err)
	}
	aNode.SetInputs(nil)
	if bNode.Value() != 4 {
		t.Fatalf("expected b == 2*a == 4, got %v", bNode.Value())
	}
}

func TestInputIndexOutOfRange(t *testing.T) {
	s := spec.ScopeSpec{
		spec.ScalarBinding("a", spec.ScalarInput{Index: 5}),
	}
	_, err := Generate(2, s)
	var ie *gerr.InputIndexError
	if !errors.As(err, &ie) {
		t.Fatalf("expected *gerr.InputIndexError, got %T: %v", err, err)
	}
}
