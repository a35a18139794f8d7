// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package valkind defines the four value kinds that flow through the
// specification AST, the scope and the expression kernel.
package valkind

// Kind identifies one of the four primitive value kinds of the system.
type Kind int

const (
	Scalar Kind = iota
	Vector
	Rotation
	Frame
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Vector:
		return "vector"
	case Rotation:
		return "rotation"
	case Frame:
		return "frame"
	default:
		return "unknown"
	}
}
