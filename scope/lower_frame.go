// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scope

import (
	"github.com/cpmech/gocart/gerr"
	"github.com/cpmech/gocart/kernel"
	"github.com/cpmech/gocart/spec"
	"github.com/cpmech/gocart/valkind"
)

// LowerFrame lowers a FrameSpec AST node into a kernel.FrameNode.
func (s *Scope) LowerFrame(a spec.FrameSpec) (kernel.FrameNode, error) {
	switch x := a.(type) {
	case spec.FrameConstructor:
		rn, err := s.LowerRotation(x.R)
		if err != nil {
			return nil, err
		}
		tn, err := s.LowerVector(x.T)
		if err != nil {
			return nil, err
		}
		return kernel.NewFrameConstructor(s.ctx, rn, tn), nil
	case spec.FrameMul:
		factors := make([]kernel.FrameNode, len(x.Factors))
		for i, f := range x.Factors {
			n, err := s.LowerFrame(f)
			if err != nil {
				return nil, err
			}
			factors[i] = n
		}
		return kernel.NewFrameMul(s.ctx, factors...), nil
	case spec.FrameInverse:
		fn, err := s.LowerFrame(x.F)
		if err != nil {
			return nil, err
		}
		return kernel.NewFrameInverse(s.ctx, fn), nil
	case spec.FrameReference:
		k, ok := s.resolveKind(x.Name)
		if !ok {
			return nil, gerr.UnresolvedReference(x.Name, valkind.Frame)
		}
		if k != valkind.Frame {
			return nil, gerr.KindMismatch("reference "+x.Name, valkind.Frame, k)
		}
		n, _ := s.FindFrameExpression(x.Name)
		return n, nil
	default:
		return nil, gerr.Syntax("scope: unhandled frame AST node %T", a)
	}
}
