// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package kernel implements component A: the differentiable expression
// graph over scalars, 3-vectors, rotations and rigid frames. Every node
// computes its value and its Jacobian with respect to a shared input
// vector by forward-mode dual propagation (value + dense derivative
// vector computed together), memoized per input generation so that a
// shared sub-DAG is evaluated once per SetInputs call — the kernel-level
// analogue of the teacher's consistent-tangent Update/CalcD pair
// (mdl/solid/elasticity.go), generalized from stress tensors to the
// four value kinds named in the specification.
package kernel

import "github.com/cpmech/gosl/chk"

// Context is the shared evaluation state of one generated graph: the
// current input vector and a generation counter bumped on every
// SetInputs call. All nodes built by one call to scope.Generate share
// a single Context, which is what lets a reference resolve to the same
// shared kernel node and be evaluated exactly once per generation
// regardless of how many parents reach it.
type Context struct {
	n      int
	inputs []float64
	gen    uint64
}

// NewContext allocates a context sized for n input-vector components.
func NewContext(n int) *Context {
	if n < 0 {
		chk.Panic("context arity must not be negative, got %d", n)
	}
	return &Context{n: n, inputs: make([]float64, n)}
}

// SetInputs installs a fresh input vector and bumps the generation
// counter. The caller's slice is copied, not retained: per the data
// model, the input vector is externally owned and the kernel never
// holds onto it across calls.
func (c *Context) SetInputs(v []float64) {
	if len(v) != c.n {
		chk.Panic("context expects %d inputs, got %d", c.n, len(v))
	}
	copy(c.inputs, v)
	c.gen++
}

// Arity returns n, the input-vector length every node's derivative
// slots range over.
func (c *Context) Arity() int { return c.n }
