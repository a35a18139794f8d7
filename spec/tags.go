// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spec

// Document tags. The ones spelled out in the external interface list
// (spec.md §6) are used verbatim; the rest follow the same "<kind>-<op>"
// / "<noun>-of" convention the given tags already establish
// (double-mul, rot-vector, orientation-of, inverse-rotation).
const (
	TagInputVar   = "input-var"
	TagNegate     = "negate"
	TagDoubleAdd  = "double-add"
	TagDoubleSub  = "double-sub"
	TagDoubleMul  = "double-mul"
	TagDoubleDiv  = "double-div"
	TagXOf        = "x-of"
	TagYOf        = "y-of"
	TagZOf        = "z-of"
	TagNorm       = "norm"
	TagDot        = "dot"
	TagMin        = "min"
	TagMax        = "max"
	TagAbs        = "abs"
	TagSin        = "sin"
	TagCos        = "cos"
	TagTan        = "tan"
	TagAsin       = "asin"
	TagAcos       = "acos"
	TagAtan2      = "atan2"
	TagFmod       = "fmod"

	TagVector3     = "vector3"
	TagVectorAdd   = "vector-add"
	TagVectorSub   = "vector-sub"
	TagScaleVector = "scale-vector"
	TagCross       = "cross"
	TagRotVector   = "rot-vector"
	TagOriginOf    = "origin-of"
	TagRotate      = "rotate"

	TagAxisAngle       = "axis-angle"
	TagQuaternion      = "quaternion"
	TagRotationMul     = "rotation-mul"
	TagInverseRotation = "inverse-rotation"
	TagOrientationOf   = "orientation-of"

	TagFrame      = "frame"
	TagFrameMul   = "frame-mul"
	TagInverseFrame = "inverse-frame"

	// composite document keys (controller specification)
	KeyScope                 = "scope"
	KeyControllableConstraints = "controllable-constraints"
	KeySoftConstraints         = "soft-constraints"
	KeyHardConstraints         = "hard-constraints"

	TagControllableConstraint = "controllable-constraint"
	TagSoftConstraint         = "soft-constraint"
	TagHardConstraint         = "hard-constraint"

	// scope binding document keys
	KeyBindingName = "name"
	KeyBindingType = "type"
)

// KindNames maps the "type" field of a scope binding document to the
// value-kind tag strings.
const (
	KindNameScalar   = "scalar"
	KindNameVector   = "vector"
	KindNameRotation = "rotation"
	KindNameFrame    = "frame"
)
