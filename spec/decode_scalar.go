// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spec

import (
	"github.com/cpmech/gocart/gerr"
	"github.com/cpmech/gocart/valkind"

	"github.com/cpmech/gocart/doc"
)

// DecodeScalar decodes a document node into a ScalarSpec.
func DecodeScalar(n doc.Node) (ScalarSpec, error) {
	if f, ok := n.AsFloat(); ok {
		return ScalarConst{V: f}, nil
	}
	if s, ok := n.AsString(); ok {
		return ScalarReference{Name: s}, nil
	}
	tag, args, err := soleTag(n)
	if err != nil {
		return nil, err
	}
	switch tag {
	case TagInputVar:
		f, ok := args.AsFloat()
		if !ok {
			return nil, gerr.Syntax("input-var: expected a numeric index")
		}
		return ScalarInput{Index: int(f)}, nil
	case TagNegate:
		x, err := decodeScalarChild(args, "negate")
		if err != nil {
			return nil, err
		}
		return ScalarNegate{X: x}, nil
	case TagDoubleAdd:
		terms, err := decodeScalarSeq(args, "double-add")
		if err != nil {
			return nil, err
		}
		return ScalarAdd{Terms: terms}, nil
	case TagDoubleSub:
		a, b, err := decodeScalarPair(args, "double-sub")
		if err != nil {
			return nil, err
		}
		return ScalarSub{A: a, B: b}, nil
	case TagDoubleMul:
		factors, err := decodeScalarSeq(args, "double-mul")
		if err != nil {
			return nil, err
		}
		return ScalarMul{Factors: factors}, nil
	case TagDoubleDiv:
		a, b, err := decodeScalarPair(args, "double-div")
		if err != nil {
			return nil, err
		}
		return ScalarDiv{A: a, B: b}, nil
	case TagXOf, TagYOf, TagZOf:
		v, err := decodeVectorChild(args, tag)
		if err != nil {
			return nil, err
		}
		switch tag {
		case TagXOf:
			return ScalarXOf{V: v}, nil
		case TagYOf:
			return ScalarYOf{V: v}, nil
		default:
			return ScalarZOf{V: v}, nil
		}
	case TagNorm:
		v, err := decodeVectorChild(args, "norm")
		if err != nil {
			return nil, err
		}
		return ScalarNorm{V: v}, nil
	case TagDot:
		items, err := seqOfLen(args, "dot", 2)
		if err != nil {
			return nil, err
		}
		a, err := DecodeVector(items[0])
		if err != nil {
			return nil, err
		}
		b, err := DecodeVector(items[1])
		if err != nil {
			return nil, err
		}
		return ScalarDot{A: a, B: b}, nil
	case TagMin:
		a, b, err := decodeScalarPair(args, "min")
		if err != nil {
			return nil, err
		}
		return ScalarMin{A: a, B: b}, nil
	case TagMax:
		a, b, err := decodeScalarPair(args, "max")
		if err != nil {
			return nil, err
		}
		return ScalarMax{A: a, B: b}, nil
	case TagAbs:
		x, err := decodeScalarChild(args, "abs")
		if err != nil {
			return nil, err
		}
		return ScalarAbs{X: x}, nil
	case TagSin:
		x, err := decodeScalarChild(args, "sin")
		if err != nil {
			return nil, err
		}
		return ScalarSin{X: x}, nil
	case TagCos:
		x, err := decodeScalarChild(args, "cos")
		if err != nil {
			return nil, err
		}
		return ScalarCos{X: x}, nil
	case TagTan:
		x, err := decodeScalarChild(args, "tan")
		if err != nil {
			return nil, err
		}
		return ScalarTan{X: x}, nil
	case TagAsin:
		x, err := decodeScalarChild(args, "asin")
		if err != nil {
			return nil, err
		}
		return ScalarAsin{X: x}, nil
	case TagAcos:
		x, err := decodeScalarChild(args, "acos")
		if err != nil {
			return nil, err
		}
		return ScalarAcos{X: x}, nil
	case TagAtan2:
		y, x, err := decodeScalarPair(args, "atan2")
		if err != nil {
			return nil, err
		}
		return ScalarAtan2{Y: y, X: x}, nil
	case TagFmod:
		a, b, err := decodeScalarPair(args, "fmod")
		if err != nil {
			return nil, err
		}
		return ScalarFmod{A: a, B: b}, nil
	default:
		return nil, wrongKind("scalar spec", valkind.Scalar, tag)
	}
}

func decodeScalarChild(n doc.Node, context string) (ScalarSpec, error) {
	s, err := DecodeScalar(n)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func decodeScalarSeq(n doc.Node, context string) ([]ScalarSpec, error) {
	items, err := seqOf(n, context)
	if err != nil {
		return nil, err
	}
	out := make([]ScalarSpec, len(items))
	for i, it := range items {
		s, err := DecodeScalar(it)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func decodeScalarPair(n doc.Node, context string) (a, b ScalarSpec, err error) {
	items, err := seqOfLen(n, context, 2)
	if err != nil {
		return nil, nil, err
	}
	a, err = DecodeScalar(items[0])
	if err != nil {
		return nil, nil, err
	}
	b, err = DecodeScalar(items[1])
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}
