// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package qpctrl implements component E: compiling a controller
// specification into a per-step QP problem and driving it through a
// solver satisfying qpiface.Solver. The compile/step split mirrors
// gofem's own Domain/Solver separation (fem/domain.go builds the
// static mesh and equation numbering once; fem/solver.go's Solver.Run
// re-assembles and re-solves every step) — here "assemble once" is
// the scope and constraint lowering done in Generate, and "re-solve
// every step" is Update re-evaluating the kernel DAG and re-filling H
// and A from the new derivatives.
package qpctrl

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/gocart/constraint"
	"github.com/cpmech/gocart/gerr"
	"github.com/cpmech/gocart/glog"
	"github.com/cpmech/gocart/kernel"
	"github.com/cpmech/gocart/qpiface"
	"github.com/cpmech/gocart/scope"
)

// state is the controller's position in the Fresh -> Started ->
// Started(looping) machine from spec.md §4.E.
type state int

const (
	stateFresh state = iota
	stateStarted
)

// SolverFactory builds a fresh qpiface.Solver sized for a QP with
// nVars decision variables and nCons linear constraint rows, the
// injection point that keeps qpctrl independent of any concrete
// solver, matching the external-black-box contract of spec.md §6 and
// gofem's own allocator-map pattern for pluggable solvers
// (fem/solver.go's `allocators`).
type SolverFactory func(nVars, nCons int) qpiface.Solver

// QPController is a compiled controller: a generated scope, the
// lowered constraint expressions, and a QP solver of fixed size ready
// to be stepped by Start/Update.
type QPController struct {
	sc *scope.Scope
	n  int // input-vector arity
	m  int // controllables (decision variables)
	s  int // softs (slack variables)
	h  int // hards (no slack)

	controllables []constraint.Controllable
	lowerC        []kernel.ScalarNode
	upperC        []kernel.ScalarNode
	weightC       []kernel.ScalarNode

	softs   []constraint.Soft
	lowerS  []kernel.ScalarNode
	upperS  []kernel.ScalarNode
	weightS []kernel.ScalarNode
	exprS   []kernel.ScalarNode

	hards  []constraint.Hard
	lowerH []kernel.ScalarNode
	upperH []kernel.ScalarNode
	exprH  []kernel.ScalarNode

	solver qpiface.Solver

	st      state
	command []float64 // length n, last successful full-length command

	// per-step scratch, allocated once in Generate so Update never
	// allocates in steady state (spec.md §5). hMat and aMat are built
	// as github.com/cpmech/gosl/la dense matrices (la.MatAlloc), the
	// same representation fem/domain.go assembles its element
	// matrices into, and flattened into hFlat/aFlat only at the
	// qpiface.Solver call boundary, which (mirroring a real QP
	// solver's C binding) takes row-major flat slices.
	hMat, aMat            [][]float64
	hFlat, aFlat          []float64
	g, lbX, ubX, lbA, ubA []float64
}

// Generate implements spec.md §4.E "compilation": build the scope,
// lower every constraint AST against it, and size the static QP
// skeleton. newSolver is called exactly once, with the QP's fixed
// (nVars, nCons).
func Generate(cs constraint.ControllerSpec, newSolver SolverFactory) (*QPController, error) {
	n := inferArity(cs)
	sc, err := scope.Generate(n, cs.Scope)
	if err != nil {
		return nil, err
	}

	c := &QPController{sc: sc, n: n, controllables: cs.Controllables, softs: cs.Softs, hards: cs.Hards}

	for _, cc := range cs.Controllables {
		if cc.InputIndex < 0 || cc.InputIndex >= n {
			return nil, gerr.InputIndex(cc.InputIndex, n)
		}
		lower, err := sc.LowerScalar(cc.Lower)
		if err != nil {
			return nil, err
		}
		upper, err := sc.LowerScalar(cc.Upper)
		if err != nil {
			return nil, err
		}
		weight, err := sc.LowerScalar(cc.Weight)
		if err != nil {
			return nil, err
		}
		c.lowerC = append(c.lowerC, lower)
		c.upperC = append(c.upperC, upper)
		c.weightC = append(c.weightC, weight)
	}

	for _, sft := range cs.Softs {
		lower, err := sc.LowerScalar(sft.Lower)
		if err != nil {
			return nil, err
		}
		upper, err := sc.LowerScalar(sft.Upper)
		if err != nil {
			return nil, err
		}
		weight, err := sc.LowerScalar(sft.Weight)
		if err != nil {
			return nil, err
		}
		expr, err := sc.LowerScalar(sft.Expression)
		if err != nil {
			return nil, err
		}
		c.lowerS = append(c.lowerS, lower)
		c.upperS = append(c.upperS, upper)
		c.weightS = append(c.weightS, weight)
		c.exprS = append(c.exprS, expr)
	}

	for _, hd := range cs.Hards {
		lower, err := sc.LowerScalar(hd.Lower)
		if err != nil {
			return nil, err
		}
		upper, err := sc.LowerScalar(hd.Upper)
		if err != nil {
			return nil, err
		}
		expr, err := sc.LowerScalar(hd.Expression)
		if err != nil {
			return nil, err
		}
		c.lowerH = append(c.lowerH, lower)
		c.upperH = append(c.upperH, upper)
		c.exprH = append(c.exprH, expr)
	}

	c.m = len(c.controllables)
	c.s = len(c.softs)
	c.h = len(c.hards)
	nVars := c.m + c.s
	nCons := c.s + c.h
	if nVars == 0 {
		chk.Panic("qpctrl: controller has no controllables or soft constraints, nothing to solve for")
	}

	c.solver = newSolver(nVars, nCons)
	c.hMat = la.MatAlloc(nVars, nVars)
	c.aMat = la.MatAlloc(nCons, nVars)
	c.hFlat = make([]float64, nVars*nVars)
	c.aFlat = make([]float64, nCons*nVars)
	c.g = make([]float64, nVars)
	c.lbX = make([]float64, nVars)
	c.ubX = make([]float64, nVars)
	c.lbA = make([]float64, nCons)
	c.ubA = make([]float64, nCons)
	c.command = make([]float64, n)

	return c, nil
}

// Arity returns n, the input-vector length the controller's kernel
// context was sized for.
func (c *QPController) Arity() int { return c.n }

// Start performs a cold QP solve from state and transitions
// Fresh -> Started on success. It may only be called from Fresh.
func (c *QPController) Start(state []float64, nWSR int) bool {
	if c.st != stateFresh {
		chk.Panic("qpctrl: Start called outside the Fresh state")
	}
	ok := c.step(state, nWSR, true)
	if ok {
		c.st = stateStarted
	}
	return ok
}

// Update performs a warm-started QP solve from state. It may only be
// called from Started; failure returns the controller to Fresh, per
// spec.md §4.E's state machine.
func (c *QPController) Update(state []float64, nWSR int) bool {
	if c.st != stateStarted {
		chk.Panic("qpctrl: Update called outside the Started state")
	}
	ok := c.step(state, nWSR, false)
	if !ok {
		c.st = stateFresh
	}
	return ok
}

// GetCommand returns the last successful length-n velocity command,
// zero at indices owned by no controllable.
func (c *QPController) GetCommand() []float64 {
	return append([]float64(nil), c.command...)
}

// step implements the per-step update algorithm of spec.md §4.E. A
// kernel EvaluationError (division by zero, a degenerate norm, ...)
// during re-evaluation is a runtime failure per spec.md §7, not a
// programmer error: it is recovered here and reported as a failed
// step (false), not a panic, matching "runtime errors ... cause the
// call to return false" for Start/Update.
func (c *QPController) step(input []float64, nWSR int, cold bool) (ok bool) {
	var evalErr error
	defer func() {
		if evalErr != nil {
			glog.Warn("qpctrl: step evaluation failed: %v\n", evalErr)
			ok = false
		}
	}()
	defer kernel.Recover("qpctrl.step", &evalErr)

	if len(input) != c.n {
		chk.Panic("qpctrl: expected state of length %d, got %d", c.n, len(input))
	}
	c.sc.Context().SetInputs(input)

	la.MatFill(c.hMat, 0)
	la.MatFill(c.aMat, 0)
	la.VecFill(c.g, 0)

	for j := range c.controllables {
		c.hMat[j][j] = c.weightC[j].Value()
		c.lbX[j] = c.lowerC[j].Value()
		c.ubX[j] = c.upperC[j].Value()
	}
	for k := range c.softs {
		j := c.m + k
		c.hMat[j][j] = c.weightS[k].Value()
		c.lbX[j] = math.Inf(-1)
		c.ubX[j] = math.Inf(1)
	}

	for k := range c.softs {
		val := c.exprS[k].Value()
		for j, cc := range c.controllables {
			c.aMat[k][j] = c.exprS[k].Derivative(cc.InputIndex)
		}
		c.aMat[k][c.m+k] = -1
		c.lbA[k] = c.lowerS[k].Value() - val
		c.ubA[k] = c.upperS[k].Value() - val
	}
	for k := range c.hards {
		row := c.s + k
		val := c.exprH[k].Value()
		for j, cc := range c.controllables {
			c.aMat[row][j] = c.exprH[k].Derivative(cc.InputIndex)
		}
		c.lbA[row] = c.lowerH[k].Value() - val
		c.ubA[row] = c.upperH[k].Value() - val
	}

	glog.Step("qpctrl: step cold=%v nWSR=%d m=%d s=%d h=%d\n", cold, nWSR, c.m, c.s, c.h)

	// qpiface.Solver takes row-major flat slices (the external
	// black-box wire shape, spec.md §6); flatten the assembled la
	// matrices into them here, at the one point a conversion is
	// needed, the way gofem copies a dense element matrix into a
	// sparse *la.Triplet via Kb.Put (ele/solid/elastrod.go).
	flattenInto(c.hFlat, c.hMat)
	flattenInto(c.aFlat, c.aMat)

	var x []float64
	if cold {
		x, ok = c.solver.ColdSolve(c.hFlat, c.g, c.aFlat, c.lbX, c.ubX, c.lbA, c.ubA, nWSR)
	} else {
		x, ok = c.solver.WarmSolve(c.hFlat, c.g, c.aFlat, c.lbX, c.ubX, c.lbA, c.ubA, nWSR)
	}
	if !ok {
		glog.Warn("qpctrl: step failed to converge within nWSR=%d\n", nWSR)
		return false
	}

	for i := range c.command {
		c.command[i] = 0
	}
	for j, cc := range c.controllables {
		c.command[cc.InputIndex] = x[j]
	}
	return true
}

// flattenInto copies a dense la matrix into a row-major flat slice
// sized rows*cols, where rows, cols := len(m), len(m[0]) (or rows==0).
func flattenInto(flat []float64, m [][]float64) {
	if len(m) == 0 {
		return
	}
	cols := len(m[0])
	for i, row := range m {
		copy(flat[i*cols:i*cols+cols], row)
	}
}
