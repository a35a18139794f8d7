// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qpsolve

import (
	"math"
	"testing"
)

// TestUnconstrainedMinimum checks min 0.5*x^2 - x -> x = 1, with loose
// box bounds that never bind.
func TestUnconstrainedMinimum(t *testing.T) {
	s := New(1, 0)
	h := []float64{1}
	g := []float64{-1}
	x, ok := s.ColdSolve(h, g, nil, []float64{-100}, []float64{100}, nil, nil, 200)
	if !ok {
		t.Fatalf("expected convergence")
	}
	if math.Abs(x[0]-1) > 1e-3 {
		t.Fatalf("expected x ~= 1, got %v", x)
	}
}

// TestBoxClampsSolution checks that a tight upper bound binds.
func TestBoxClampsSolution(t *testing.T) {
	s := New(1, 0)
	h := []float64{1}
	g := []float64{-1}
	x, ok := s.ColdSolve(h, g, nil, []float64{-100}, []float64{0.3}, nil, nil, 200)
	if !ok {
		t.Fatalf("expected convergence")
	}
	if math.Abs(x[0]-0.3) > 1e-3 {
		t.Fatalf("expected x ~= 0.3 (clamped), got %v", x)
	}
}

// TestLinearConstraintBinds checks min 0.5*(x0^2+x1^2) s.t. x0+x1 >= 1,
// whose solution is x0=x1=0.5.
func TestLinearConstraintBinds(t *testing.T) {
	s := New(2, 1)
	h := []float64{1, 0, 0, 1}
	g := []float64{0, 0}
	a := []float64{1, 1}
	x, ok := s.ColdSolve(h, g, a, []float64{-100, -100}, []float64{100, 100}, []float64{1}, []float64{math.Inf(1)}, 400)
	if !ok {
		t.Fatalf("expected convergence")
	}
	if math.Abs(x[0]-0.5) > 1e-2 || math.Abs(x[1]-0.5) > 1e-2 {
		t.Fatalf("expected x ~= (0.5, 0.5), got %v", x)
	}
}

func TestWarmSolveResumes(t *testing.T) {
	s := New(1, 0)
	h := []float64{1}
	g := []float64{-1}
	s.ColdSolve(h, g, nil, []float64{-100}, []float64{100}, nil, nil, 200)
	x, ok := s.WarmSolve(h, g, nil, []float64{-100}, []float64{100}, nil, nil, 5)
	if !ok {
		t.Fatalf("expected warm-started convergence in a small budget")
	}
	if math.Abs(x[0]-1) > 1e-3 {
		t.Fatalf("expected x ~= 1, got %v", x)
	}
}
