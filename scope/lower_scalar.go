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

// LowerScalar lowers a ScalarSpec AST node into a kernel.ScalarNode,
// resolving any ScalarReference against bindings already generated
// into this scope. Node sharing falls out naturally: two references
// to the same name return the identical kernel node, so the kernel's
// own per-generation memoization evaluates it once regardless of how
// many parents this call wires it into.
func (s *Scope) LowerScalar(a spec.ScalarSpec) (kernel.ScalarNode, error) {
	switch x := a.(type) {
	case spec.ScalarConst:
		return kernel.NewConst(s.ctx, x.V), nil
	case spec.ScalarInput:
		if x.Index < 0 || x.Index >= s.ctx.Arity() {
			return nil, gerr.InputIndex(x.Index, s.ctx.Arity())
		}
		return kernel.NewInput(s.ctx, x.Index), nil
	case spec.ScalarReference:
		k, ok := s.resolveKind(x.Name)
		if !ok {
			return nil, gerr.UnresolvedReference(x.Name, valkind.Scalar)
		}
		if k != valkind.Scalar {
			return nil, gerr.KindMismatch("reference "+x.Name, valkind.Scalar, k)
		}
		n, _ := s.FindScalarExpression(x.Name)
		return n, nil
	case spec.ScalarNegate:
		xn, err := s.LowerScalar(x.X)
		if err != nil {
			return nil, err
		}
		return kernel.NewNegate(s.ctx, xn), nil
	case spec.ScalarAdd:
		terms, err := s.lowerScalars(x.Terms)
		if err != nil {
			return nil, err
		}
		return kernel.NewAdd(s.ctx, terms...), nil
	case spec.ScalarSub:
		an, bn, err := s.lowerScalarPair(x.A, x.B)
		if err != nil {
			return nil, err
		}
		return kernel.NewSub(s.ctx, an, bn), nil
	case spec.ScalarMul:
		factors, err := s.lowerScalars(x.Factors)
		if err != nil {
			return nil, err
		}
		return kernel.NewMul(s.ctx, factors...), nil
	case spec.ScalarDiv:
		an, bn, err := s.lowerScalarPair(x.A, x.B)
		if err != nil {
			return nil, err
		}
		return kernel.NewDiv(s.ctx, an, bn), nil
	case spec.ScalarXOf:
		vn, err := s.LowerVector(x.V)
		if err != nil {
			return nil, err
		}
		return kernel.NewXOf(s.ctx, vn), nil
	case spec.ScalarYOf:
		vn, err := s.LowerVector(x.V)
		if err != nil {
			return nil, err
		}
		return kernel.NewYOf(s.ctx, vn), nil
	case spec.ScalarZOf:
		vn, err := s.LowerVector(x.V)
		if err != nil {
			return nil, err
		}
		return kernel.NewZOf(s.ctx, vn), nil
	case spec.ScalarNorm:
		vn, err := s.LowerVector(x.V)
		if err != nil {
			return nil, err
		}
		return kernel.NewNorm(s.ctx, vn), nil
	case spec.ScalarDot:
		an, bn, err := s.lowerVectorPair(x.A, x.B)
		if err != nil {
			return nil, err
		}
		return kernel.NewDot(s.ctx, an, bn), nil
	case spec.ScalarMin:
		an, bn, err := s.lowerScalarPair(x.A, x.B)
		if err != nil {
			return nil, err
		}
		return kernel.NewMin(s.ctx, an, bn), nil
	case spec.ScalarMax:
		an, bn, err := s.lowerScalarPair(x.A, x.B)
		if err != nil {
			return nil, err
		}
		return kernel.NewMax(s.ctx, an, bn), nil
	case spec.ScalarAbs:
		xn, err := s.LowerScalar(x.X)
		if err != nil {
			return nil, err
		}
		return kernel.NewAbs(s.ctx, xn), nil
	case spec.ScalarSin:
		xn, err := s.LowerScalar(x.X)
		if err != nil {
			return nil, err
		}
		return kernel.NewSin(s.ctx, xn), nil
	case spec.ScalarCos:
		xn, err := s.LowerScalar(x.X)
		if err != nil {
			return nil, err
		}
		return kernel.NewCos(s.ctx, xn), nil
	case spec.ScalarTan:
		xn, err := s.LowerScalar(x.X)
		if err != nil {
			return nil, err
		}
		return kernel.NewTan(s.ctx, xn), nil
	case spec.ScalarAsin:
		xn, err := s.LowerScalar(x.X)
		if err != nil {
			return nil, err
		}
		return kernel.NewAsin(s.ctx, xn), nil
	case spec.ScalarAcos:
		xn, err := s.LowerScalar(x.X)
		if err != nil {
			return nil, err
		}
		return kernel.NewAcos(s.ctx, xn), nil
	case spec.ScalarAtan2:
		yn, xn, err := s.lowerScalarPair(x.Y, x.X)
		if err != nil {
			return nil, err
		}
		return kernel.NewAtan2(s.ctx, yn, xn), nil
	case spec.ScalarFmod:
		an, bn, err := s.lowerScalarPair(x.A, x.B)
		if err != nil {
			return nil, err
		}
		return kernel.NewFmod(s.ctx, an, bn), nil
	default:
		return nil, gerr.Syntax("scope: unhandled scalar AST node %T", a)
	}
}

func (s *Scope) lowerScalars(specs []spec.ScalarSpec) ([]kernel.ScalarNode, error) {
	out := make([]kernel.ScalarNode, len(specs))
	for i, a := range specs {
		n, err := s.LowerScalar(a)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func (s *Scope) lowerScalarPair(a, b spec.ScalarSpec) (kernel.ScalarNode, kernel.ScalarNode, error) {
	an, err := s.LowerScalar(a)
	if err != nil {
		return nil, nil, err
	}
	bn, err := s.LowerScalar(b)
	if err != nil {
		return nil, nil, err
	}
	return an, bn, nil
}
