// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qpctrl

import (
	"math"
	"testing"

	"github.com/cpmech/gocart/constraint"
	"github.com/cpmech/gocart/fkref"
	"github.com/cpmech/gocart/qpiface"
	"github.com/cpmech/gocart/qpsolve"
	"github.com/cpmech/gocart/spec"
)

func newQPSolver(nVars, nCons int) qpiface.Solver {
	return qpsolve.New(nVars, nCons)
}

// armControllerSpec builds a controller tracking the distance from the
// 7-joint fkref chain's tip to a fixed goal point, with the leading
// input index reserved as an uncontrolled "excess observable" per
// spec.md §8 scenario 3. Joint i's angle is input index i+1.
func armControllerSpec(goal spec.VectorSpec) constraint.ControllerSpec {
	chain := fkref.SevenDOFArm()
	tipSpec := chain.Spec(1)
	errSpec := spec.ScalarNorm{
		V: spec.VectorSub{A: spec.VectorOriginOf{F: spec.FrameReference{Name: "tip"}}, B: goal},
	}

	controllables := make([]constraint.Controllable, len(chain))
	for j := range chain {
		controllables[j] = constraint.Controllable{
			Lower:      spec.ScalarConst{V: -1},
			Upper:      spec.ScalarConst{V: 1},
			Weight:     spec.ScalarConst{V: 1},
			InputIndex: j + 1,
			Name:       "joint",
		}
	}

	return constraint.ControllerSpec{
		Scope: spec.ScopeSpec{
			spec.FrameBinding("tip", tipSpec),
			spec.ScalarBinding("err", errSpec),
		},
		Controllables: controllables,
		Softs: []constraint.Soft{{
			Lower:      spec.ScalarConst{V: math.Inf(-1)},
			Upper:      spec.ScalarConst{V: 0},
			Weight:     spec.ScalarConst{V: 100},
			Expression: spec.ScalarReference{Name: "err"},
			Name:       "track",
		}},
	}
}

// TestPositionControlConvergence is spec.md §8 scenario 2: iterating
// update with dt=0.01 drives the tracked error down, never rising by
// more than 1e-4 from one step to the next, and ending below 70% of
// its initial value. The exact numeric fixture in the grounding source
// (original_source/test/giskard/pr2_fk.cpp) depends on a real PR2
// URDF this repository does not have; the chain geometry here is a
// fixed stand-in (fkref.SevenDOFArm), so the test checks this
// decrease rather than the literal PR2 start and end values.
func TestPositionControlConvergence(t *testing.T) {
	goal := spec.VectorConstructor{X: spec.ScalarConst{V: 0.3}, Y: spec.ScalarConst{V: 0.1}, Z: spec.ScalarConst{V: -0.2}}
	cs := armControllerSpec(goal)
	ctrl, err := Generate(cs, newQPSolver)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	state := []float64{0, 0.02, 0.0, 0.0, -0.16, 0.0, -0.11, 0.0}
	errNode, _ := ctrl.sc.FindScalarExpression("err")

	errNode.SetInputs(state)
	initial := errNode.Value()

	const dt = 0.01
	const nWSR = 10
	const iterations = 300

	if !ctrl.Start(state, nWSR) {
		t.Fatalf("Start failed to converge")
	}
	last := initial
	for i := 0; i < iterations; i++ {
		cmd := ctrl.GetCommand()
		for j := range state {
			state[j] += dt * cmd[j]
		}
		if !ctrl.Update(state, nWSR) {
			t.Fatalf("Update failed to converge at iteration %d", i)
		}
		errNode.SetInputs(state)
		cur := errNode.Value()
		if cur > last+1e-4 {
			t.Fatalf("error increased at iteration %d: %v -> %v", i, last, cur)
		}
		last = cur
	}
	if last >= initial*0.7 {
		t.Fatalf("expected substantial convergence: initial=%v final=%v", initial, last)
	}
}

// TestExcessObservableGating is spec.md §8 scenario 3: an input with
// no owning controllable (index 0 here) always contributes a zero
// command component.
func TestExcessObservableGating(t *testing.T) {
	goal := spec.VectorConstructor{X: spec.ScalarConst{V: 0.2}, Y: spec.ScalarConst{V: 0.0}, Z: spec.ScalarConst{V: 0.1}}
	cs := armControllerSpec(goal)
	ctrl, err := Generate(cs, newQPSolver)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	state := []float64{0.5, 0.02, 0.0, 0.0, -0.16, 0.0, -0.11, 0.0}
	if !ctrl.Start(state, 10) {
		t.Fatalf("Start failed to converge")
	}
	for i := 0; i < 500; i++ {
		cmd := ctrl.GetCommand()
		if cmd[0] != 0.0 {
			t.Fatalf("iteration %d: expected command[0] == 0.0 exactly, got %v", i, cmd[0])
		}
		for j := range state {
			state[j] += 0.01 * cmd[j]
		}
		if !ctrl.Update(state, 10) {
			t.Fatalf("Update failed to converge at iteration %d", i)
		}
	}
}
