// Copyright 2016 The Gocart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package doc defines the neutral document-tree shape this system
// consumes: a tree of scalars, sequences and maps, exactly as produced
// by any surface-syntax parser (YAML, JSON, ...). This package owns
// only the shape, never a concrete surface syntax — parsing text into
// this tree is an external collaborator, out of scope here.
package doc

// Node is one node of a neutral document tree. Exactly one of the
// As* accessors reports ok for any given node.
type Node interface {
	// AsFloat reports the node's scalar value as a float64, if it is a
	// numeric scalar.
	AsFloat() (float64, bool)
	// AsString reports the node's scalar value as a string, if it is a
	// string scalar (used for bare references and constraint names).
	AsString() (string, bool)
	// AsSeq reports the node's children, if it is a sequence.
	AsSeq() ([]Node, bool)
	// AsMap reports the node's children, if it is a map.
	AsMap() (*Map, bool)
}

// Map is an ordered string-keyed collection of document nodes: still a
// Node accessor target, but preserving insertion order so tagged nodes
// (single-entry maps) and binding lists round-trip deterministically.
type Map struct {
	keys   []string
	values map[string]Node
}

// NewMap builds an empty ordered map.
func NewMap() *Map {
	return &Map{values: make(map[string]Node)}
}

// Set inserts or overwrites a key, preserving first-insertion order.
func (m *Map) Set(key string, value Node) *Map {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
	return m
}

// Get looks up a key.
func (m *Map) Get(key string) (Node, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.keys)
}

// SoleEntry returns the single (key, value) pair of a one-entry map,
// the shape every tagged AST node decodes from.
func (m *Map) SoleEntry() (key string, value Node, ok bool) {
	if m.Len() != 1 {
		return "", nil, false
	}
	key = m.keys[0]
	return key, m.values[key], true
}

// AsFloat implements Node for *Map: a map is never a scalar.
func (m *Map) AsFloat() (float64, bool) { return 0, false }

// AsString implements Node for *Map: a map is never a scalar.
func (m *Map) AsString() (string, bool) { return "", false }

// AsSeq implements Node for *Map: a map is never a sequence.
func (m *Map) AsSeq() ([]Node, bool) { return nil, false }

// AsMap implements Node for *Map.
func (m *Map) AsMap() (*Map, bool) { return m, true }
