// Package ir provides the value representation used by the diff engine.
//
// # Overview
//
// The ir package defines a tagged-union tree over JSON-like values. Two
// documents are compared as ir.Node trees, and diff results address
// locations in those trees with path strings.
//
// # Node Structure
//
// A Node represents a single value. Nodes can be:
//
//   - Atomic types: null, boolean, number, string
//   - Composite types: object (ordered key-value pairs), array (ordered list)
//
// Each node maintains parent-child relationships, allowing navigation
// through the tree structure. The Type field dispatches the union; values
// are placed in fields depending on the node type.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	flag := ir.FromBool(true)
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//
// # Structure Constraints
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i], so
// there are always the same number of fields as values. Fields are string
// typed and appear at most once per object. Object field order is preserved
// from the input document; comparison does not depend on it.
//
// Number values are placed under Int64 if the literal is integral, and
// Float64 otherwise.
//
// # Paths
//
// Three path renderings address nodes:
//
//   - numeric paths, e.g. "$.items[2].name": array segments are always
//     positional and identify exactly one location in one tree
//   - display paths, e.g. "$.items[id=7].name": array segments may carry an
//     identity key instead of a position
//   - array patterns, e.g. "$.items[].name": empty-bracket array segments
//     mean "some matching element"
//
// ParsePath accepts all three; Node.Path() renders the numeric path of a
// node from its parent links.
//
// # Thread Safety
//
// Node structures are not thread-safe. The diff engine never mutates its
// inputs, so sharing trees across comparisons is safe as long as callers do
// not mutate them either.
package ir
