// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spec

import (
	"github.com/cpmech/gocart/doc"
	"github.com/cpmech/gocart/valkind"
)

// DecodeVector decodes a document node into a VectorSpec.
func DecodeVector(n doc.Node) (VectorSpec, error) {
	if s, ok := n.AsString(); ok {
		return VectorReference{Name: s}, nil
	}
	tag, args, err := soleTag(n)
	if err != nil {
		return nil, err
	}
	switch tag {
	case TagVector3:
		items, err := seqOfLen(args, "vector3", 3)
		if err != nil {
			return nil, err
		}
		x, err := DecodeScalar(items[0])
		if err != nil {
			return nil, err
		}
		y, err := DecodeScalar(items[1])
		if err != nil {
			return nil, err
		}
		z, err := DecodeScalar(items[2])
		if err != nil {
			return nil, err
		}
		return VectorConstructor{X: x, Y: y, Z: z}, nil
	case TagVectorAdd:
		items, err := seqOf(args, "vector-add")
		if err != nil {
			return nil, err
		}
		terms := make([]VectorSpec, len(items))
		for i, it := range items {
			v, err := DecodeVector(it)
			if err != nil {
				return nil, err
			}
			terms[i] = v
		}
		return VectorAdd{Terms: terms}, nil
	case TagVectorSub:
		a, b, err := decodeVectorPair(args, "vector-sub")
		if err != nil {
			return nil, err
		}
		return VectorSub{A: a, B: b}, nil
	case TagScaleVector:
		items, err := seqOfLen(args, "scale-vector", 2)
		if err != nil {
			return nil, err
		}
		s, err := DecodeScalar(items[0])
		if err != nil {
			return nil, err
		}
		v, err := DecodeVector(items[1])
		if err != nil {
			return nil, err
		}
		return VectorScale{S: s, V: v}, nil
	case TagCross:
		a, b, err := decodeVectorPair(args, "cross")
		if err != nil {
			return nil, err
		}
		return VectorCross{A: a, B: b}, nil
	case TagRotVector:
		r, err := DecodeRotation(args)
		if err != nil {
			return nil, err
		}
		return VectorRotationVector{R: r}, nil
	case TagOriginOf:
		f, err := DecodeFrame(args)
		if err != nil {
			return nil, err
		}
		return VectorOriginOf{F: f}, nil
	case TagRotate:
		items, err := seqOfLen(args, "rotate", 2)
		if err != nil {
			return nil, err
		}
		r, err := DecodeRotation(items[0])
		if err != nil {
			return nil, err
		}
		v, err := DecodeVector(items[1])
		if err != nil {
			return nil, err
		}
		return VectorRotate{R: r, V: v}, nil
	default:
		return nil, wrongKind("vector spec", valkind.Vector, tag)
	}
}

func decodeVectorChild(n doc.Node, context string) (VectorSpec, error) {
	return DecodeVector(n)
}

func decodeVectorPair(n doc.Node, context string) (a, b VectorSpec, err error) {
	items, err := seqOfLen(n, context, 2)
	if err != nil {
		return nil, nil, err
	}
	a, err = DecodeVector(items[0])
	if err != nil {
		return nil, nil, err
	}
	b, err = DecodeVector(items[1])
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}
