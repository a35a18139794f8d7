// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package glog carries the ambient step-tracing idiom of the teacher
// codebase: a package-level Verbose switch gating colored Pf-style
// progress printing, not a general logging framework.
package glog

import "github.com/cpmech/gosl/io"

// Verbose turns per-step tracing on. Off by default, as in the teacher.
var Verbose = false

// Step prints a per-control-step trace line when Verbose is set.
func Step(format string, a ...interface{}) {
	if Verbose {
		io.Pfyel(format, a...)
	}
}

// Warn prints a warning line when Verbose is set.
func Warn(format string, a ...interface{}) {
	if Verbose {
		io.PfRed(format, a...)
	}
}
