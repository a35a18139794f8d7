// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package gerr defines the structured error kinds raised by the
// document decoder, the scope generator and the QP controller, per the
// error-handling design: parse-time errors are typed so a caller can
// dispatch on kind with errors.As, instead of matching on strings.
package gerr

import (
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gocart/valkind"
)

// SyntaxError reports a document node that cannot be decoded under any
// recognized tag, or whose children have the wrong arity or kind.
type SyntaxError struct{ Msg string }

func (e *SyntaxError) Error() string { return e.Msg }

// Syntax builds a *SyntaxError with a formatted message.
func Syntax(format string, a ...interface{}) *SyntaxError {
	return &SyntaxError{Msg: io.Sf(format, a...)}
}

// KindMismatchError reports an AST position that expects one value kind
// but receives another.
type KindMismatchError struct {
	Want, Got valkind.Kind
	Context   string
}

func (e *KindMismatchError) Error() string {
	return io.Sf("kind mismatch in %s: want %s, got %s", e.Context, e.Want, e.Got)
}

// KindMismatch builds a *KindMismatchError.
func KindMismatch(context string, want, got valkind.Kind) *KindMismatchError {
	return &KindMismatchError{Want: want, Got: got, Context: context}
}

// UnresolvedReferenceError reports a reference(name) with no prior
// binding in scope.
type UnresolvedReferenceError struct {
	Name string
	Kind valkind.Kind
}

func (e *UnresolvedReferenceError) Error() string {
	return io.Sf("unresolved %s reference %q", e.Kind, e.Name)
}

// UnresolvedReference builds an *UnresolvedReferenceError.
func UnresolvedReference(name string, kind valkind.Kind) *UnresolvedReferenceError {
	return &UnresolvedReferenceError{Name: name, Kind: kind}
}

// DuplicateBindingError reports two bindings sharing a name.
type DuplicateBindingError struct{ Name string }

func (e *DuplicateBindingError) Error() string {
	return io.Sf("duplicate binding name %q", e.Name)
}

// DuplicateBinding builds a *DuplicateBindingError.
func DuplicateBinding(name string) *DuplicateBindingError {
	return &DuplicateBindingError{Name: name}
}

// InputIndexError reports an input index (of a controllable or of an
// input-var node) that is negative or out of range. Whether the
// controllables' indices cover [0, m) exactly once is not checked.
type InputIndexError struct {
	Index, N int
	Msg      string
}

func (e *InputIndexError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return io.Sf("input index %d out of range [0, %d)", e.Index, e.N)
}

// InputIndex builds an *InputIndexError for an out-of-range index.
func InputIndex(index, n int) *InputIndexError {
	return &InputIndexError{Index: index, N: n}
}

// InputIndexMsg builds an *InputIndexError with a custom message, for
// failures that aren't about a single index.
func InputIndexMsg(format string, a ...interface{}) *InputIndexError {
	return &InputIndexError{Msg: io.Sf(format, a...)}
}

// EvaluationError reports a numeric failure during evaluation: division
// by zero, an inverse-trig argument out of domain, or a zero quaternion.
type EvaluationError struct{ Msg string }

func (e *EvaluationError) Error() string { return e.Msg }

// Evaluation builds an *EvaluationError with a formatted message.
func Evaluation(format string, a ...interface{}) *EvaluationError {
	return &EvaluationError{Msg: io.Sf(format, a...)}
}

// InfeasibleError reports that the QP solver found no point satisfying
// the hard constraints.
type InfeasibleError struct{ Msg string }

func (e *InfeasibleError) Error() string { return e.Msg }

// Infeasible builds an *InfeasibleError.
func Infeasible(format string, a ...interface{}) *InfeasibleError {
	return &InfeasibleError{Msg: io.Sf(format, a...)}
}

// SolverBudgetError reports that the solver exceeded its working-set
// recalculation budget (nWSR). Step-level and retriable.
type SolverBudgetError struct{ NWSR int }

func (e *SolverBudgetError) Error() string {
	return io.Sf("solver exceeded working-set budget (nWSR=%d)", e.NWSR)
}

// SolverBudget builds a *SolverBudgetError.
func SolverBudget(nWSR int) *SolverBudgetError {
	return &SolverBudgetError{NWSR: nWSR}
}
