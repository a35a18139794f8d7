// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qpctrl

import (
	"testing"

	"github.com/cpmech/gocart/constraint"
	"github.com/cpmech/gocart/spec"
)

func singleControllableSpec() constraint.ControllerSpec {
	return constraint.ControllerSpec{
		Controllables: []constraint.Controllable{{
			Lower:      spec.ScalarConst{V: -1},
			Upper:      spec.ScalarConst{V: 1},
			Weight:     spec.ScalarConst{V: 1},
			InputIndex: 0,
			Name:       "j0",
		}},
	}
}

func TestUpdateBeforeStartPanics(t *testing.T) {
	ctrl, err := Generate(singleControllableSpec(), newQPSolver)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic calling Update before Start")
		}
	}()
	ctrl.Update([]float64{0}, 10)
}

func TestStartTwicePanics(t *testing.T) {
	ctrl, err := Generate(singleControllableSpec(), newQPSolver)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !ctrl.Start([]float64{0}, 10) {
		t.Fatalf("expected Start to converge")
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic calling Start twice")
		}
	}()
	ctrl.Start([]float64{0}, 10)
}

func TestGenerateRejectsNegativeInputIndex(t *testing.T) {
	cs := singleControllableSpec()
	cs.Controllables[0].InputIndex = -1
	if _, err := Generate(cs, newQPSolver); err == nil {
		t.Fatalf("expected an InputIndexError")
	}
}

func TestStartThenUpdateRuns(t *testing.T) {
	ctrl, err := Generate(singleControllableSpec(), newQPSolver)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !ctrl.Start([]float64{0.5}, 10) {
		t.Fatalf("expected Start to converge")
	}
	if !ctrl.Update([]float64{0.5}, 10) {
		t.Fatalf("expected Update to converge")
	}
	cmd := ctrl.GetCommand()
	if len(cmd) != 1 {
		t.Fatalf("expected a length-1 command, got %v", cmd)
	}
}
