// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package constraint implements component D: the controllable, soft
// and hard constraint records consumed by qpctrl. Records carry
// spec.ScalarSpec ASTs, not kernel nodes — lowering to kernel happens
// at qpctrl generation time, against the controller's own scope.
package constraint

import "github.com/cpmech/gocart/spec"

// Controllable declares that input index InputIndex is a decision
// variable, box-bounded by [Lower, Upper] evaluated at each step, with
// objective Weight.
type Controllable struct {
	Lower, Upper, Weight spec.ScalarSpec
	InputIndex           int
	Name                 string
}

// Soft declares that Expression must stay within [Lower, Upper], with
// violation penalized (not forbidden) by Weight.
type Soft struct {
	Lower, Upper, Weight, Expression spec.ScalarSpec
	Name                             string
}

// Hard declares that Expression must stay within [Lower, Upper] with
// no slack; infeasibility aborts the step.
type Hard struct {
	Lower, Upper, Expression spec.ScalarSpec
}

// ControllerSpec is the full input to qpctrl.Generate: a scope plus
// the three constraint lists.
type ControllerSpec struct {
	Scope         spec.ScopeSpec
	Controllables []Controllable
	Softs         []Soft
	Hards         []Hard
}
