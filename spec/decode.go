// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spec

import (
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gocart/doc"
	"github.com/cpmech/gocart/gerr"
	"github.com/cpmech/gocart/valkind"
)

// tagKind maps every known document tag to the value kind it decodes
// to. Used to turn "wrong tag for this position" into a KindMismatchError
// carrying the kind the tag actually belongs to, rather than a bare
// SyntaxError, matching spec.md §7's distinction between the two.
var tagKind = map[string]valkind.Kind{
	TagNegate: valkind.Scalar, TagDoubleAdd: valkind.Scalar, TagDoubleSub: valkind.Scalar,
	TagDoubleMul: valkind.Scalar, TagDoubleDiv: valkind.Scalar, TagXOf: valkind.Scalar,
	TagYOf: valkind.Scalar, TagZOf: valkind.Scalar, TagNorm: valkind.Scalar,
	TagDot: valkind.Scalar, TagMin: valkind.Scalar, TagMax: valkind.Scalar,
	TagAbs: valkind.Scalar, TagSin: valkind.Scalar, TagCos: valkind.Scalar,
	TagTan: valkind.Scalar, TagAsin: valkind.Scalar, TagAcos: valkind.Scalar,
	TagAtan2: valkind.Scalar, TagFmod: valkind.Scalar, TagInputVar: valkind.Scalar,

	TagVector3: valkind.Vector, TagVectorAdd: valkind.Vector, TagVectorSub: valkind.Vector,
	TagScaleVector: valkind.Vector, TagCross: valkind.Vector, TagRotVector: valkind.Vector,
	TagOriginOf: valkind.Vector, TagRotate: valkind.Vector,

	TagAxisAngle: valkind.Rotation, TagQuaternion: valkind.Rotation,
	TagRotationMul: valkind.Rotation, TagInverseRotation: valkind.Rotation,
	TagOrientationOf: valkind.Rotation,

	TagFrame: valkind.Frame, TagFrameMul: valkind.Frame, TagInverseFrame: valkind.Frame,
}

// soleTag extracts the single (tag, args) entry of a tagged node.
func soleTag(n doc.Node) (tag string, args doc.Node, err error) {
	m, ok := n.AsMap()
	if !ok {
		return "", nil, gerr.Syntax("expected a tagged node (single-key map)")
	}
	tag, args, ok = m.SoleEntry()
	if !ok {
		return "", nil, gerr.Syntax("tagged node must have exactly one key, got %d", m.Len())
	}
	return tag, args, nil
}

// wrongKind reports a KindMismatchError naming the kind `tag` actually
// belongs to, or a SyntaxError if the tag is not recognized at all.
func wrongKind(context string, want valkind.Kind, tag string) error {
	if got, ok := tagKind[tag]; ok {
		return gerr.KindMismatch(context, want, got)
	}
	return gerr.Syntax("unknown tag %q in %s position; known tags: %v", tag, want, knownTagsFor(want))
}

// knownTagsFor lists the recognized tags for a value kind, sorted, for
// the unknown-tag error message above. Built the way gofem sorts an
// ad-hoc string set for deterministic reporting (tools/GenVtu.go's
// utl.StrBoolMapSort over a collected key set).
func knownTagsFor(kind valkind.Kind) []string {
	set := make(map[string]bool)
	for tag, k := range tagKind {
		if k == kind {
			set[tag] = true
		}
	}
	return utl.StrBoolMapSort(set)
}

func seqOf(n doc.Node, context string) ([]doc.Node, error) {
	items, ok := n.AsSeq()
	if !ok {
		return nil, gerr.Syntax("%s: expected a sequence", context)
	}
	return items, nil
}

func seqOfLen(n doc.Node, context string, want int) ([]doc.Node, error) {
	items, err := seqOf(n, context)
	if err != nil {
		return nil, err
	}
	if len(items) != want {
		return nil, gerr.Syntax("%s: expected %d elements, got %d", context, want, len(items))
	}
	return items, nil
}
