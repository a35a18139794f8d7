// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spec

import (
	"github.com/cpmech/gocart/doc"
	"github.com/cpmech/gocart/gerr"
)

// DecodeBinding decodes one scope-spec entry: a map with "name", "type"
// and "ast" keys (see Binding.Emit).
func DecodeBinding(n doc.Node) (Binding, error) {
	m, ok := n.AsMap()
	if !ok {
		return Binding{}, gerr.Syntax("scope binding: expected a map")
	}
	nameNode, ok := m.Get(KeyBindingName)
	if !ok {
		return Binding{}, gerr.Syntax("scope binding: missing %q", KeyBindingName)
	}
	name, ok := nameNode.AsString()
	if !ok {
		return Binding{}, gerr.Syntax("scope binding: %q must be a string", KeyBindingName)
	}
	typeNode, ok := m.Get(KeyBindingType)
	if !ok {
		return Binding{}, gerr.Syntax("scope binding %q: missing %q", name, KeyBindingType)
	}
	typeName, ok := typeNode.AsString()
	if !ok {
		return Binding{}, gerr.Syntax("scope binding %q: %q must be a string", name, KeyBindingType)
	}
	astNode, ok := m.Get(bindingTagKey)
	if !ok {
		return Binding{}, gerr.Syntax("scope binding %q: missing %q", name, bindingTagKey)
	}
	switch typeName {
	case KindNameScalar:
		ast, err := DecodeScalar(astNode)
		if err != nil {
			return Binding{}, err
		}
		return ScalarBinding(name, ast), nil
	case KindNameVector:
		ast, err := DecodeVector(astNode)
		if err != nil {
			return Binding{}, err
		}
		return VectorBinding(name, ast), nil
	case KindNameRotation:
		ast, err := DecodeRotation(astNode)
		if err != nil {
			return Binding{}, err
		}
		return RotationBinding(name, ast), nil
	case KindNameFrame:
		ast, err := DecodeFrame(astNode)
		if err != nil {
			return Binding{}, err
		}
		return FrameBinding(name, ast), nil
	default:
		return Binding{}, gerr.Syntax("scope binding %q: unknown type %q", name, typeName)
	}
}

// DecodeScope decodes a `scope: [...]` document node into a ScopeSpec.
func DecodeScope(n doc.Node) (ScopeSpec, error) {
	items, err := seqOf(n, "scope")
	if err != nil {
		return nil, err
	}
	out := make(ScopeSpec, len(items))
	for i, it := range items {
		b, err := DecodeBinding(it)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}
