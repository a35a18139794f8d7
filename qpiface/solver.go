// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package qpiface defines the contract qpctrl expects from a
// quadratic-programming solver. Per spec.md §6, the solver itself is
// an external black box ("construct with static sizing; cold-solve;
// warm-solve reusing internal state") — this package names only the
// interface, grounded on gofem's own pattern of depending on solver
// packages through a narrow Go interface (see fem/solver.go's Solver
// contract) rather than importing a concrete implementation directly.
package qpiface

// Solver drives one strictly-convex QP with box-bounded variables and
// linear inequality constraints:
//
//	minimize   (1/2) xᵀHx + gᵀx
//	subject to lbX <= x <= ubX
//	           lbA <= Ax <= ubA
//
// nVars and nConstraints are fixed for the solver's lifetime (the
// "static sizing" from the specification); H, A, lbX, ubX, lbA, ubA
// are supplied fresh on every solve call.
type Solver interface {
	// ColdSolve solves from scratch, with no warm-start state. h is
	// the nVars x nVars objective matrix (row-major), g its linear
	// term, a the nConstraints x nVars constraint matrix (row-major).
	ColdSolve(h, g, a []float64, lbX, ubX, lbA, ubA []float64, nWSR int) (x []float64, ok bool)
	// WarmSolve solves reusing the internal state left by the
	// previous ColdSolve or WarmSolve call.
	WarmSolve(h, g, a []float64, lbX, ubX, lbA, ubA []float64, nWSR int) (x []float64, ok bool)
	// NVars and NConstraints report the static sizing the solver was
	// constructed with.
	NVars() int
	NConstraints() int
}
