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

// LowerVector lowers a VectorSpec AST node into a kernel.VectorNode.
func (s *Scope) LowerVector(a spec.VectorSpec) (kernel.VectorNode, error) {
	switch x := a.(type) {
	case spec.VectorConstructor:
		xn, err := s.LowerScalar(x.X)
		if err != nil {
			return nil, err
		}
		yn, err := s.LowerScalar(x.Y)
		if err != nil {
			return nil, err
		}
		zn, err := s.LowerScalar(x.Z)
		if err != nil {
			return nil, err
		}
		return kernel.NewVectorConstructor(s.ctx, xn, yn, zn), nil
	case spec.VectorReference:
		k, ok := s.resolveKind(x.Name)
		if !ok {
			return nil, gerr.UnresolvedReference(x.Name, valkind.Vector)
		}
		if k != valkind.Vector {
			return nil, gerr.KindMismatch("reference "+x.Name, valkind.Vector, k)
		}
		n, _ := s.FindVectorExpression(x.Name)
		return n, nil
	case spec.VectorAdd:
		terms := make([]kernel.VectorNode, len(x.Terms))
		for i, t := range x.Terms {
			n, err := s.LowerVector(t)
			if err != nil {
				return nil, err
			}
			terms[i] = n
		}
		return kernel.NewVectorAdd(s.ctx, terms...), nil
	case spec.VectorSub:
		an, bn, err := s.lowerVectorPair(x.A, x.B)
		if err != nil {
			return nil, err
		}
		return kernel.NewVectorSub(s.ctx, an, bn), nil
	case spec.VectorScale:
		sn, err := s.LowerScalar(x.S)
		if err != nil {
			return nil, err
		}
		vn, err := s.LowerVector(x.V)
		if err != nil {
			return nil, err
		}
		return kernel.NewScaleVector(s.ctx, sn, vn), nil
	case spec.VectorCross:
		an, bn, err := s.lowerVectorPair(x.A, x.B)
		if err != nil {
			return nil, err
		}
		return kernel.NewCross(s.ctx, an, bn), nil
	case spec.VectorRotationVector:
		rn, err := s.LowerRotation(x.R)
		if err != nil {
			return nil, err
		}
		return kernel.NewRotationVectorLog(s.ctx, rn), nil
	case spec.VectorOriginOf:
		fn, err := s.LowerFrame(x.F)
		if err != nil {
			return nil, err
		}
		return kernel.NewOriginOf(s.ctx, fn), nil
	case spec.VectorRotate:
		rn, err := s.LowerRotation(x.R)
		if err != nil {
			return nil, err
		}
		vn, err := s.LowerVector(x.V)
		if err != nil {
			return nil, err
		}
		return kernel.NewRotate(s.ctx, rn, vn), nil
	default:
		return nil, gerr.Syntax("scope: unhandled vector AST node %T", a)
	}
}

func (s *Scope) lowerVectorPair(a, b spec.VectorSpec) (kernel.VectorNode, kernel.VectorNode, error) {
	an, err := s.LowerVector(a)
	if err != nil {
		return nil, nil, err
	}
	bn, err := s.LowerVector(b)
	if err != nil {
		return nil, nil, err
	}
	return an, bn, nil
}
