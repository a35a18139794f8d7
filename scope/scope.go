// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package scope implements component C: lowering a spec.ScopeSpec into
// a kernel expression graph, resolving named references to the shared
// kernel node they were bound to — the generalization of gofem's
// ele/factory.go tag-to-constructor dispatch from element allocation to
// AST-to-kernel-node allocation.
package scope

import (
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gocart/gerr"
	"github.com/cpmech/gocart/kernel"
	"github.com/cpmech/gocart/spec"
	"github.com/cpmech/gocart/valkind"
)

// Scope is a generated expression graph: an ordered set of named
// bindings, each resolved to a kernel node of its declared kind, plus
// every node reachable from request-time lookups that did not need a
// name (e.g. a controller's own constraint expressions, generated
// against the same Context so they share sub-expressions with named
// bindings).
type Scope struct {
	ctx       *kernel.Context
	order     []string
	kinds     map[string]valkind.Kind
	scalars   map[string]kernel.ScalarNode
	vectors   map[string]kernel.VectorNode
	rotations map[string]kernel.RotationNode
	frames    map[string]kernel.FrameNode
}

// Context returns the shared evaluation context backing every node
// this scope (and anything generated against it afterward) produced.
func (s *Scope) Context() *kernel.Context { return s.ctx }

// Generate lowers a ScopeSpec into kernel nodes, in order, over an
// input vector of the given arity. Each binding may reference any
// earlier binding by name; duplicate names and unresolved or
// kind-mismatched references are reported as the corresponding typed
// error.
func Generate(inputArity int, s spec.ScopeSpec) (*Scope, error) {
	sc := &Scope{
		ctx:       kernel.NewContext(inputArity),
		kinds:     make(map[string]valkind.Kind),
		scalars:   make(map[string]kernel.ScalarNode),
		vectors:   make(map[string]kernel.VectorNode),
		rotations: make(map[string]kernel.RotationNode),
		frames:    make(map[string]kernel.FrameNode),
	}
	for _, b := range s {
		// order, not kinds, is the bookkeeping of record for "have we
		// seen this name already" — the same utl.StrIndexSmall check
		// gofem runs against an accumulated []string before admitting
		// a new entry (fem/domain.go's conds slice, inp/facecond.go).
		if utl.StrIndexSmall(sc.order, b.Name) >= 0 {
			return nil, gerr.DuplicateBinding(b.Name)
		}
		switch b.Kind {
		case valkind.Scalar:
			n, err := sc.LowerScalar(b.Scalar)
			if err != nil {
				return nil, err
			}
			sc.scalars[b.Name] = n
		case valkind.Vector:
			n, err := sc.LowerVector(b.Vector)
			if err != nil {
				return nil, err
			}
			sc.vectors[b.Name] = n
		case valkind.Rotation:
			n, err := sc.LowerRotation(b.Rotation)
			if err != nil {
				return nil, err
			}
			sc.rotations[b.Name] = n
		case valkind.Frame:
			n, err := sc.LowerFrame(b.Frame)
			if err != nil {
				return nil, err
			}
			sc.frames[b.Name] = n
		}
		sc.kinds[b.Name] = b.Kind
		sc.order = append(sc.order, b.Name)
	}
	return sc, nil
}

// Names returns every bound name, in binding order.
func (s *Scope) Names() []string { return append([]string(nil), s.order...) }

// HasScalarExpression reports whether name is bound to a scalar.
func (s *Scope) HasScalarExpression(name string) bool {
	k, ok := s.kinds[name]
	return ok && k == valkind.Scalar
}

// FindScalarExpression resolves name to its kernel node.
func (s *Scope) FindScalarExpression(name string) (kernel.ScalarNode, bool) {
	n, ok := s.scalars[name]
	return n, ok
}

// HasVectorExpression reports whether name is bound to a vector.
func (s *Scope) HasVectorExpression(name string) bool {
	k, ok := s.kinds[name]
	return ok && k == valkind.Vector
}

// FindVectorExpression resolves name to its kernel node.
func (s *Scope) FindVectorExpression(name string) (kernel.VectorNode, bool) {
	n, ok := s.vectors[name]
	return n, ok
}

// HasRotationExpression reports whether name is bound to a rotation.
func (s *Scope) HasRotationExpression(name string) bool {
	k, ok := s.kinds[name]
	return ok && k == valkind.Rotation
}

// FindRotationExpression resolves name to its kernel node.
func (s *Scope) FindRotationExpression(name string) (kernel.RotationNode, bool) {
	n, ok := s.rotations[name]
	return n, ok
}

// HasFrameExpression reports whether name is bound to a frame.
func (s *Scope) HasFrameExpression(name string) bool {
	k, ok := s.kinds[name]
	return ok && k == valkind.Frame
}

// FindFrameExpression resolves name to its kernel node.
func (s *Scope) FindFrameExpression(name string) (kernel.FrameNode, bool) {
	n, ok := s.frames[name]
	return n, ok
}

func (s *Scope) resolveKind(name string) (valkind.Kind, bool) {
	k, ok := s.kinds[name]
	return k, ok
}
