// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package doc

// scalarFloat is a numeric leaf node.
type scalarFloat float64

func (n scalarFloat) AsFloat() (float64, bool) { return float64(n), true }
func (n scalarFloat) AsString() (string, bool) { return "", false }
func (n scalarFloat) AsSeq() ([]Node, bool)    { return nil, false }
func (n scalarFloat) AsMap() (*Map, bool)      { return nil, false }

// scalarString is a string leaf node, used for bare references and
// constraint/binding names.
type scalarString string

func (n scalarString) AsFloat() (float64, bool) { return 0, false }
func (n scalarString) AsString() (string, bool) { return string(n), true }
func (n scalarString) AsSeq() ([]Node, bool)    { return nil, false }
func (n scalarString) AsMap() (*Map, bool)      { return nil, false }

// seq is a sequence node.
type seq []Node

func (n seq) AsFloat() (float64, bool) { return 0, false }
func (n seq) AsString() (string, bool) { return "", false }
func (n seq) AsSeq() ([]Node, bool)    { return []Node(n), true }
func (n seq) AsMap() (*Map, bool)      { return nil, false }

// Float builds a numeric leaf node.
func Float(v float64) Node { return scalarFloat(v) }

// Str builds a string leaf node.
func Str(s string) Node { return scalarString(s) }

// Seq builds a sequence node from the given children.
func Seq(items ...Node) Node { return seq(items) }

// Tag builds the single-entry map `{tag: args}` every AST constructor
// decodes from.
func Tag(tag string, args Node) Node {
	return NewMap().Set(tag, args)
}

// Pair is a (key, value) entry used to build multi-key maps, e.g. for
// scope bindings and constraint specifications.
type Pair struct {
	Key   string
	Value Node
}

// KV builds a Pair.
func KV(key string, value Node) Pair { return Pair{Key: key, Value: value} }

// MapOf builds a multi-key map from ordered pairs.
func MapOf(pairs ...Pair) *Map {
	m := NewMap()
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
	return m
}
