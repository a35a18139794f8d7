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

// LowerRotation lowers a RotationSpec AST node into a kernel.RotationNode.
func (s *Scope) LowerRotation(a spec.RotationSpec) (kernel.RotationNode, error) {
	switch x := a.(type) {
	case spec.RotationAxisAngle:
		axis, err := s.LowerVector(x.Axis)
		if err != nil {
			return nil, err
		}
		angle, err := s.LowerScalar(x.Angle)
		if err != nil {
			return nil, err
		}
		return kernel.NewAxisAngle(s.ctx, axis, angle), nil
	case spec.RotationQuaternion:
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
		wn, err := s.LowerScalar(x.W)
		if err != nil {
			return nil, err
		}
		return kernel.NewQuaternion(s.ctx, xn, yn, zn, wn), nil
	case spec.RotationMul:
		factors := make([]kernel.RotationNode, len(x.Factors))
		for i, f := range x.Factors {
			n, err := s.LowerRotation(f)
			if err != nil {
				return nil, err
			}
			factors[i] = n
		}
		return kernel.NewRotationMul(s.ctx, factors...), nil
	case spec.RotationInverse:
		rn, err := s.LowerRotation(x.R)
		if err != nil {
			return nil, err
		}
		return kernel.NewRotationInverse(s.ctx, rn), nil
	case spec.RotationOrientationOf:
		fn, err := s.LowerFrame(x.F)
		if err != nil {
			return nil, err
		}
		return kernel.NewOrientationOf(s.ctx, fn), nil
	case spec.RotationReference:
		k, ok := s.resolveKind(x.Name)
		if !ok {
			return nil, gerr.UnresolvedReference(x.Name, valkind.Rotation)
		}
		if k != valkind.Rotation {
			return nil, gerr.KindMismatch("reference "+x.Name, valkind.Rotation, k)
		}
		n, _ := s.FindRotationExpression(x.Name)
		return n, nil
	default:
		return nil, gerr.Syntax("scope: unhandled rotation AST node %T", a)
	}
}
