// Package libdiff computes structural diffs between two ir.Node trees.
//
// # Usage
//
//	res := libdiff.Compare(left, right)
//	for _, e := range res.Diffs {
//	    // e.DisplayPath, e.NumericPath, e.Kind, e.Left, e.Right
//	}
//
// Arrays of objects are matched element-to-element by a discovered identity
// key where one qualifies, so reordering, insertion and deletion inside an
// array are reported as exactly those operations.  Arrays without a
// qualifying key fall back to index-to-index comparison.
//
// # Related Packages
//
//   - github.com/jsonrecon/jsonrecon/ir - value representation
//   - github.com/jsonrecon/jsonrecon - path resolution over diff results
package libdiff
