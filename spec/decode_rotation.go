// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spec

import (
	"github.com/cpmech/gocart/doc"
	"github.com/cpmech/gocart/valkind"
)

// DecodeRotation decodes a document node into a RotationSpec.
func DecodeRotation(n doc.Node) (RotationSpec, error) {
	if s, ok := n.AsString(); ok {
		return RotationReference{Name: s}, nil
	}
	tag, args, err := soleTag(n)
	if err != nil {
		return nil, err
	}
	switch tag {
	case TagAxisAngle:
		items, err := seqOfLen(args, "axis-angle", 2)
		if err != nil {
			return nil, err
		}
		axis, err := DecodeVector(items[0])
		if err != nil {
			return nil, err
		}
		angle, err := DecodeScalar(items[1])
		if err != nil {
			return nil, err
		}
		return RotationAxisAngle{Axis: axis, Angle: angle}, nil
	case TagQuaternion:
		items, err := seqOfLen(args, "quaternion", 4)
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
		w, err := DecodeScalar(items[3])
		if err != nil {
			return nil, err
		}
		return RotationQuaternion{X: x, Y: y, Z: z, W: w}, nil
	case TagRotationMul:
		items, err := seqOf(args, "rotation-mul")
		if err != nil {
			return nil, err
		}
		factors := make([]RotationSpec, len(items))
		for i, it := range items {
			r, err := DecodeRotation(it)
			if err != nil {
				return nil, err
			}
			factors[i] = r
		}
		return RotationMul{Factors: factors}, nil
	case TagInverseRotation:
		r, err := DecodeRotation(args)
		if err != nil {
			return nil, err
		}
		return RotationInverse{R: r}, nil
	case TagOrientationOf:
		f, err := DecodeFrame(args)
		if err != nil {
			return nil, err
		}
		return RotationOrientationOf{F: f}, nil
	default:
		return nil, wrongKind("rotation spec", valkind.Rotation, tag)
	}
}
