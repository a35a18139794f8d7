// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"github.com/cpmech/gocart/doc"
	"github.com/cpmech/gocart/gerr"
	"github.com/cpmech/gocart/spec"
)

func tagArgs(n doc.Node, tag string, arity int) ([]doc.Node, error) {
	m, ok := n.AsMap()
	if !ok || m.Len() != 1 {
		return nil, gerr.Syntax("%s: expected a single-entry tagged map", tag)
	}
	got, argNode, _ := m.SoleEntry()
	if got != tag {
		return nil, gerr.Syntax("expected tag %q, got %q", tag, got)
	}
	items, ok := argNode.AsSeq()
	if !ok || len(items) != arity {
		return nil, gerr.Syntax("%s: expected %d arguments", tag, arity)
	}
	return items, nil
}

func decodeName(n doc.Node, context string) (string, error) {
	s, ok := n.AsString()
	if !ok {
		return "", gerr.Syntax("%s: name must be a string", context)
	}
	return s, nil
}

func decodeInputIndex(n doc.Node, context string) (int, error) {
	f, ok := n.AsFloat()
	if !ok {
		return 0, gerr.Syntax("%s: input_index must be a number", context)
	}
	return int(f), nil
}

// DecodeControllable decodes `controllable-constraint: [lower, upper,
// weight, input_index, name]`.
func DecodeControllable(n doc.Node) (Controllable, error) {
	items, err := tagArgs(n, spec.TagControllableConstraint, 5)
	if err != nil {
		return Controllable{}, err
	}
	lower, err := spec.DecodeScalar(items[0])
	if err != nil {
		return Controllable{}, err
	}
	upper, err := spec.DecodeScalar(items[1])
	if err != nil {
		return Controllable{}, err
	}
	weight, err := spec.DecodeScalar(items[2])
	if err != nil {
		return Controllable{}, err
	}
	idx, err := decodeInputIndex(items[3], "controllable-constraint")
	if err != nil {
		return Controllable{}, err
	}
	name, err := decodeName(items[4], "controllable-constraint")
	if err != nil {
		return Controllable{}, err
	}
	return Controllable{Lower: lower, Upper: upper, Weight: weight, InputIndex: idx, Name: name}, nil
}

// DecodeSoft decodes `soft-constraint: [lower, upper, weight,
// expression, name]`.
func DecodeSoft(n doc.Node) (Soft, error) {
	items, err := tagArgs(n, spec.TagSoftConstraint, 5)
	if err != nil {
		return Soft{}, err
	}
	lower, err := spec.DecodeScalar(items[0])
	if err != nil {
		return Soft{}, err
	}
	upper, err := spec.DecodeScalar(items[1])
	if err != nil {
		return Soft{}, err
	}
	weight, err := spec.DecodeScalar(items[2])
	if err != nil {
		return Soft{}, err
	}
	expr, err := spec.DecodeScalar(items[3])
	if err != nil {
		return Soft{}, err
	}
	name, err := decodeName(items[4], "soft-constraint")
	if err != nil {
		return Soft{}, err
	}
	return Soft{Lower: lower, Upper: upper, Weight: weight, Expression: expr, Name: name}, nil
}

// DecodeHard decodes `hard-constraint: [lower, upper, expression]`.
func DecodeHard(n doc.Node) (Hard, error) {
	items, err := tagArgs(n, spec.TagHardConstraint, 3)
	if err != nil {
		return Hard{}, err
	}
	lower, err := spec.DecodeScalar(items[0])
	if err != nil {
		return Hard{}, err
	}
	upper, err := spec.DecodeScalar(items[1])
	if err != nil {
		return Hard{}, err
	}
	expr, err := spec.DecodeScalar(items[2])
	if err != nil {
		return Hard{}, err
	}
	return Hard{Lower: lower, Upper: upper, Expression: expr}, nil
}

// DecodeControllerSpec decodes the composite document
// {scope: [...], controllable-constraints: [...], soft-constraints:
// [...], hard-constraints: [...]}.
func DecodeControllerSpec(n doc.Node) (ControllerSpec, error) {
	m, ok := n.AsMap()
	if !ok {
		return ControllerSpec{}, gerr.Syntax("controller spec: expected a map")
	}
	var out ControllerSpec
	if scopeNode, ok := m.Get(spec.KeyScope); ok {
		s, err := spec.DecodeScope(scopeNode)
		if err != nil {
			return ControllerSpec{}, err
		}
		out.Scope = s
	}
	if cs, ok := m.Get(spec.KeyControllableConstraints); ok {
		items, ok := cs.AsSeq()
		if !ok {
			return ControllerSpec{}, gerr.Syntax("%s: expected a sequence", spec.KeyControllableConstraints)
		}
		out.Controllables = make([]Controllable, len(items))
		for i, it := range items {
			c, err := DecodeControllable(it)
			if err != nil {
				return ControllerSpec{}, err
			}
			out.Controllables[i] = c
		}
	}
	if ss, ok := m.Get(spec.KeySoftConstraints); ok {
		items, ok := ss.AsSeq()
		if !ok {
			return ControllerSpec{}, gerr.Syntax("%s: expected a sequence", spec.KeySoftConstraints)
		}
		out.Softs = make([]Soft, len(items))
		for i, it := range items {
			s, err := DecodeSoft(it)
			if err != nil {
				return ControllerSpec{}, err
			}
			out.Softs[i] = s
		}
	}
	if hs, ok := m.Get(spec.KeyHardConstraints); ok {
		items, ok := hs.AsSeq()
		if !ok {
			return ControllerSpec{}, gerr.Syntax("%s: expected a sequence", spec.KeyHardConstraints)
		}
		out.Hards = make([]Hard, len(items))
		for i, it := range items {
			h, err := DecodeHard(it)
			if err != nil {
				return ControllerSpec{}, err
			}
			out.Hards[i] = h
		}
	}
	return out, nil
}
