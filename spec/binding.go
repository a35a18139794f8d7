// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spec

import (
	"github.com/cpmech/gocart/doc"
	"github.com/cpmech/gocart/valkind"
)

// Binding is a named (name, kind, ast-node) triple. Exactly one of the
// per-kind fields is populated, matching Kind.
type Binding struct {
	Name     string
	Kind     valkind.Kind
	Scalar   ScalarSpec
	Vector   VectorSpec
	Rotation RotationSpec
	Frame    FrameSpec
}

// ScalarBinding builds a scalar-kind binding.
func ScalarBinding(name string, ast ScalarSpec) Binding {
	return Binding{Name: name, Kind: valkind.Scalar, Scalar: ast}
}

// VectorBinding builds a vector-kind binding.
func VectorBinding(name string, ast VectorSpec) Binding {
	return Binding{Name: name, Kind: valkind.Vector, Vector: ast}
}

// RotationBinding builds a rotation-kind binding.
func RotationBinding(name string, ast RotationSpec) Binding {
	return Binding{Name: name, Kind: valkind.Rotation, Rotation: ast}
}

// FrameBinding builds a frame-kind binding.
func FrameBinding(name string, ast FrameSpec) Binding {
	return Binding{Name: name, Kind: valkind.Frame, Frame: ast}
}

// ScopeSpec is an ordered sequence of bindings; a binding may reference
// earlier names but not later ones. Uniqueness of names is enforced at
// generation time, not here.
type ScopeSpec []Binding

// Emit renders a binding back to its document form:
// {name: <name>, type: <kind>, ast: {<tag>: <args>}}.
func (b Binding) Emit() doc.Node {
	var typeName string
	var astNode doc.Node
	switch b.Kind {
	case valkind.Scalar:
		typeName, astNode = KindNameScalar, b.Scalar.Emit()
	case valkind.Vector:
		typeName, astNode = KindNameVector, b.Vector.Emit()
	case valkind.Rotation:
		typeName, astNode = KindNameRotation, b.Rotation.Emit()
	case valkind.Frame:
		typeName, astNode = KindNameFrame, b.Frame.Emit()
	}
	m := doc.NewMap()
	m.Set(KeyBindingName, doc.Str(b.Name))
	m.Set(KeyBindingType, doc.Str(typeName))
	m.Set(bindingTagKey, astNode)
	return m
}

// bindingTagKey is the synthetic third key under which the AST itself
// is stored in an emitted binding map; DecodeBinding reads the AST back
// from this same key.
const bindingTagKey = "ast"

// Equals reports structural equality of two bindings (name, kind and
// AST must all match).
func (b Binding) Equals(other Binding) bool {
	if b.Name != other.Name || b.Kind != other.Kind {
		return false
	}
	switch b.Kind {
	case valkind.Scalar:
		return b.Scalar.Equals(other.Scalar)
	case valkind.Vector:
		return b.Vector.Equals(other.Vector)
	case valkind.Rotation:
		return b.Rotation.Equals(other.Rotation)
	case valkind.Frame:
		return b.Frame.Equals(other.Frame)
	}
	return false
}

// Equals reports structural equality of two scope specs.
func (s ScopeSpec) Equals(other ScopeSpec) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if !s[i].Equals(other[i]) {
			return false
		}
	}
	return true
}

// Emit renders a scope spec to `scope: [...]`.
func (s ScopeSpec) Emit() doc.Node {
	items := make([]doc.Node, len(s))
	for i, b := range s {
		items[i] = b.Emit()
	}
	return doc.Seq(items...)
}
