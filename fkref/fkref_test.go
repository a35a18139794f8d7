// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fkref

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestSevenDOFArmHomePose(t *testing.T) {
	c := SevenDOFArm()
	q := make([]float64, len(c))
	pose := c.Value(q)
	var want r3.Vec
	for _, j := range c {
		want = r3.Add(want, j.Translation)
	}
	if r3.Norm(r3.Sub(pose.T, want)) > 1e-12 {
		t.Fatalf("home translation: got %v, want %v", pose.T, want)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if math.Abs(pose.R[i][j]-want) > 1e-12 {
				t.Fatalf("home rotation not identity: %v", pose.R)
			}
		}
	}
}

func TestSevenDOFArmPanicsOnWrongLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on mismatched angle count")
		}
	}()
	SevenDOFArm().Value([]float64{0, 0})
}
