// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package qpsolve implements a small reference QP solver used only by
// this repository's own tests to drive qpctrl end-to-end, the same
// role the teacher's ana package plays for fem: an independent
// solution to check results against, never the production path (the
// real solver is an external black box per spec.md §6).
//
// The method is primal-dual projected gradient (Uzawa's method) on
// the saddle-point form of the QP: box constraints on x are enforced
// by clipping, and the two-sided linear constraints lbA <= Ax <= ubA
// are relaxed into the objective via non-negative multipliers updated
// by dual ascent. Step sizes come from a power-iteration estimate of
// the relevant operator norms, mirroring the convergence-rate
// estimates gofem's own iterative solvers (e.g. mconduct's fixed-point
// updates) size their step from the problem's own matrices rather
// than a hand-tuned constant.
//
// H and A arrive from qpiface.Solver's row-major flat slices (the
// external-black-box wire shape spec.md §6 specifies, modeled on a
// real QP solver's C binding); internally every matrix/vector
// operation on them goes through github.com/cpmech/gosl/la exactly
// as fem/domain.go assembles its element matrices, rather than
// hand-rolled loops.
package qpsolve

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Solver is a Uzawa-method QP solver of fixed size (nVars, nCons),
// implementing qpiface.Solver. It retains primal and dual iterates
// across calls so WarmSolve resumes from the previous solve.
type Solver struct {
	nVars, nCons int
	x, yl, yu    []float64
}

// New allocates a solver for a QP with nVars decision variables and
// nCons linear constraint rows.
func New(nVars, nCons int) *Solver {
	if nVars <= 0 {
		chk.Panic("qpsolve: nVars must be positive, got %d", nVars)
	}
	return &Solver{
		nVars: nVars, nCons: nCons,
		x:  make([]float64, nVars),
		yl: make([]float64, nCons),
		yu: make([]float64, nCons),
	}
}

func (s *Solver) NVars() int        { return s.nVars }
func (s *Solver) NConstraints() int { return s.nCons }

// ColdSolve resets the primal and dual iterates to zero before solving.
func (s *Solver) ColdSolve(h, g, a []float64, lbX, ubX, lbA, ubA []float64, nWSR int) ([]float64, bool) {
	la.VecFill(s.x, 0)
	la.VecFill(s.yl, 0)
	la.VecFill(s.yu, 0)
	return s.solve(h, g, a, lbX, ubX, lbA, ubA, nWSR)
}

// WarmSolve resumes from the iterate left by the previous solve call.
func (s *Solver) WarmSolve(h, g, a []float64, lbX, ubX, lbA, ubA []float64, nWSR int) ([]float64, bool) {
	return s.solve(h, g, a, lbX, ubX, lbA, ubA, nWSR)
}

const (
	innerStepsPerWSR = 60
	feasTol          = 1e-6
	statTol          = 1e-5
)

func (s *Solver) solve(h, g, a []float64, lbX, ubX, lbA, ubA []float64, nWSR int) ([]float64, bool) {
	n, m := s.nVars, s.nCons
	hRows := rowView(h, n, n)
	aRows := rowView(a, m, n)

	normH := powerIterationSym(hRows, n, 20)
	normA2 := 0.0
	if m > 0 {
		na := powerIterationRect(aRows, m, n, 20)
		normA2 = na * na
	}
	etaX := 0.5 / (normH + 1)
	etaY := 0.5 / (normA2 + 1)

	budget := nWSR * innerStepsPerWSR
	if budget <= 0 {
		budget = innerStepsPerWSR
	}

	gradX := make([]float64, n)
	ax := make([]float64, m)
	ok := false
	for iter := 0; iter < budget; iter++ {
		la.MatVecMul(gradX, 1, hRows, s.x)
		la.VecAdd(gradX, 1, g)
		la.MatVecMul(ax, 1, aRows, s.x)
		la.MatTrVecMulAdd(gradX, 1, aRows, s.yu)
		la.MatTrVecMulAdd(gradX, -1, aRows, s.yl)

		maxStat := 0.0
		for i := range s.x {
			s.x[i] -= etaX * gradX[i]
			if s.x[i] < lbX[i] {
				s.x[i] = lbX[i]
			}
			if s.x[i] > ubX[i] {
				s.x[i] = ubX[i]
			}
			d := math.Abs(gradX[i])
			if s.x[i] > lbX[i]+1e-12 && s.x[i] < ubX[i]-1e-12 {
				if d > maxStat {
					maxStat = d
				}
			}
		}

		la.MatVecMul(ax, 1, aRows, s.x)
		maxViol := 0.0
		for k := 0; k < m; k++ {
			if !math.IsInf(lbA[k], -1) {
				s.yl[k] += etaY * (lbA[k] - ax[k])
				if s.yl[k] < 0 {
					s.yl[k] = 0
				}
				if v := lbA[k] - ax[k]; v > maxViol {
					maxViol = v
				}
			}
			if !math.IsInf(ubA[k], 1) {
				s.yu[k] += etaY * (ax[k] - ubA[k])
				if s.yu[k] < 0 {
					s.yu[k] = 0
				}
				if v := ax[k] - ubA[k]; v > maxViol {
					maxViol = v
				}
			}
		}

		if maxViol < feasTol && maxStat < statTol {
			ok = true
			break
		}
	}
	out := la.VecClone(s.x)
	return out, ok
}

// rowView reshapes a row-major flat slice into the [][]float64 shape
// github.com/cpmech/gosl/la's dense-matrix helpers (la.MatAlloc and
// friends) operate on, without copying: row i aliases flat[i*cols :
// i*cols+cols], the same slice-of-slices-into-one-backing-array
// convention la.MatAlloc itself builds (see ele/auxiliary.go).
func rowView(flat []float64, rows, cols int) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		out[i] = flat[i*cols : i*cols+cols]
	}
	return out
}

// powerIterationSym estimates the spectral radius of a symmetric n x n
// matrix by the power method.
func powerIterationSym(a [][]float64, n, iters int) float64 {
	if n == 0 {
		return 0
	}
	v := make([]float64, n)
	la.VecFill(v, 1)
	out := make([]float64, n)
	lambda := 0.0
	for it := 0; it < iters; it++ {
		la.MatVecMul(out, 1, a, v)
		norm := la.VecNorm(out)
		if norm == 0 {
			return 0
		}
		la.VecCopy(v, 1/norm, out)
		lambda = norm
	}
	return lambda
}

// powerIterationRect estimates the spectral norm of a rows x cols
// matrix via power iteration on AᵀA.
func powerIterationRect(a [][]float64, rows, cols, iters int) float64 {
	if rows == 0 || cols == 0 {
		return 0
	}
	v := make([]float64, cols)
	la.VecFill(v, 1)
	av := make([]float64, rows)
	atav := make([]float64, cols)
	lambda := 0.0
	for it := 0; it < iters; it++ {
		la.MatVecMul(av, 1, a, v)
		la.VecFill(atav, 0)
		la.MatTrVecMulAdd(atav, 1, a, av)
		norm := la.VecNorm(atav)
		if norm == 0 {
			return 0
		}
		la.VecCopy(v, 1/norm, atav)
		lambda = norm
	}
	return math.Sqrt(lambda)
}
