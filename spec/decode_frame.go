// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spec

import (
	"github.com/cpmech/gocart/doc"
	"github.com/cpmech/gocart/valkind"
)

// DecodeFrame decodes a document node into a FrameSpec.
func DecodeFrame(n doc.Node) (FrameSpec, error) {
	if s, ok := n.AsString(); ok {
		return FrameReference{Name: s}, nil
	}
	tag, args, err := soleTag(n)
	if err != nil {
		return nil, err
	}
	switch tag {
	case TagFrame:
		items, err := seqOfLen(args, "frame", 2)
		if err != nil {
			return nil, err
		}
		r, err := DecodeRotation(items[0])
		if err != nil {
			return nil, err
		}
		t, err := DecodeVector(items[1])
		if err != nil {
			return nil, err
		}
		return FrameConstructor{R: r, T: t}, nil
	case TagFrameMul:
		items, err := seqOf(args, "frame-mul")
		if err != nil {
			return nil, err
		}
		factors := make([]FrameSpec, len(items))
		for i, it := range items {
			f, err := DecodeFrame(it)
			if err != nil {
				return nil, err
			}
			factors[i] = f
		}
		return FrameMul{Factors: factors}, nil
	case TagInverseFrame:
		f, err := DecodeFrame(args)
		if err != nil {
			return nil, err
		}
		return FrameInverse{F: f}, nil
	default:
		return nil, wrongKind("frame spec", valkind.Frame, tag)
	}
}
