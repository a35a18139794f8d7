// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel_test

import (
	"math"
	"testing"

	"github.com/cpmech/gocart/fkref"
	"github.com/cpmech/gocart/scope"
	"github.com/cpmech/gocart/spec"
)

// TestForwardKinematicsParity is spec.md §8 scenario 1: a frame
// expression along a 7-joint chain must equal fkref's independently
// computed pose within 1e-9, for joint vectors whose components all
// take the same angle, swept over {-1.1, -1.0, ..., 1.1}.
func TestForwardKinematicsParity(t *testing.T) {
	chain := fkref.SevenDOFArm()
	n := len(chain)
	sc, err := scope.Generate(n, spec.ScopeSpec{
		spec.FrameBinding("tip", chain.Spec(0)),
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !sc.HasFrameExpression("tip") {
		t.Fatalf("expected a frame binding named tip")
	}
	tip, _ := sc.FindFrameExpression("tip")

	q := make([]float64, n)
	for i := -11; i <= 11; i++ {
		angle := 0.1 * float64(i)
		for j := range q {
			q[j] = angle
		}
		tip.SetInputs(q)
		got := tip.Value()
		want := chain.Value(q)

		if math.Abs(got.T.X-want.T.X) > 1e-9 || math.Abs(got.T.Y-want.T.Y) > 1e-9 || math.Abs(got.T.Z-want.T.Z) > 1e-9 {
			t.Fatalf("q=%v: translation got %v, want %v", q, got.T, want.T)
		}
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				if math.Abs(got.R[r][c]-want.R[r][c]) > 1e-9 {
					t.Fatalf("q=%v: rotation[%d][%d] got %v, want %v", q, r, c, got.R[r][c], want.R[r][c])
				}
			}
		}
	}
}
