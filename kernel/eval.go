// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import "github.com/cpmech/gocart/gerr"

// Recover turns an in-flight evalPanic raised by a node's eval (e.g.
// division by zero, norm of a zero vector) into an EvaluationError.
// A caller that drives node evaluation from user-controlled inputs
// defers this around SetInputs and the evaluation that follows, as
// qpctrl's per-step assembly does, mirroring how fem drivers guard a
// constitutive-model Update call against a non-physical state.
func Recover(where string, errp *error) {
	if r := recover(); r != nil {
		if ep, ok := r.(evalPanic); ok {
			*errp = gerr.Evaluation("%s: %s", where, ep.msg)
			return
		}
		panic(r)
	}
}
