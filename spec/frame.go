// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spec

import "github.com/cpmech/gocart/doc"

// FrameSpec is the sealed family of rigid-frame AST nodes.
type FrameSpec interface {
	isFrameSpec()
	Equals(other FrameSpec) bool
	Emit() doc.Node
}

// FrameConstructor is constructor(rotation, translation).
type FrameConstructor struct {
	R RotationSpec
	T VectorSpec
}

func (FrameConstructor) isFrameSpec() {}
func (f FrameConstructor) Equals(other FrameSpec) bool {
	o, ok := other.(FrameConstructor)
	return ok && f.R.Equals(o.R) && f.T.Equals(o.T)
}
func (f FrameConstructor) Emit() doc.Node {
	return doc.Tag(TagFrame, doc.Seq(f.R.Emit(), f.T.Emit()))
}

// FrameMul is frame-mul([f1...fk]); empty list is identity.
type FrameMul struct{ Factors []FrameSpec }

func (FrameMul) isFrameSpec() {}
func (f FrameMul) Equals(other FrameSpec) bool {
	o, ok := other.(FrameMul)
	return ok && equalFrameSlices(f.Factors, o.Factors)
}
func (f FrameMul) Emit() doc.Node { return doc.Tag(TagFrameMul, emitFrames(f.Factors)) }

// FrameInverse is inverse(F).
type FrameInverse struct{ F FrameSpec }

func (FrameInverse) isFrameSpec() {}
func (f FrameInverse) Equals(other FrameSpec) bool {
	o, ok := other.(FrameInverse)
	return ok && f.F.Equals(o.F)
}
func (f FrameInverse) Emit() doc.Node { return doc.Tag(TagInverseFrame, f.F.Emit()) }

// FrameReference is reference(name).
type FrameReference struct{ Name string }

func (FrameReference) isFrameSpec() {}
func (f FrameReference) Equals(other FrameSpec) bool {
	o, ok := other.(FrameReference)
	return ok && o.Name == f.Name
}
func (f FrameReference) Emit() doc.Node { return doc.Str(f.Name) }

func equalFrameSlices(a, b []FrameSpec) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equals(b[i]) {
			return false
		}
	}
	return true
}

func emitFrames(specs []FrameSpec) doc.Node {
	items := make([]doc.Node, len(specs))
	for i, s := range specs {
		items[i] = s.Emit()
	}
	return doc.Seq(items...)
}
