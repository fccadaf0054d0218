// Package jsonrecon computes identity-aware structural diffs between two
// JSON-like value trees and resolves paths over the results.
//
// # Overview
//
// Any two trees can be compared:
//
//	res := jsonrecon.Compare(left, right)
//
// Arrays whose elements carry a discoverable identity key are matched
// element-to-element rather than index-to-index, so reordering, insertion
// and deletion inside an array are reported as exactly those operations.
// Every diff entry carries two paths: a display path whose array segments
// may name identities ("$.items[id=7].name"), and a numeric path that is
// purely positional.
//
// The resolver layer translates between these representations for a
// rendering/navigation layer that addresses nodes per side:
//
//	vp, err := jsonrecon.ToViewerPath("$.items[id=7].name", jsonrecon.LeftSide, trees, res.IdentityKeys)
//	m, err := jsonrecon.ResolveArrayPattern("$.items[].tags[]", trees, res.IdentityKeys)
//
// Both degrade to "not found" rather than failing when a path addresses
// something absent on one side, which is the expected case for entries
// reporting additions and removals.
//
// # Related Packages
//
//   - github.com/jsonrecon/jsonrecon/ir - value representation and paths
//   - github.com/jsonrecon/jsonrecon/libdiff - the diff engine
//   - github.com/jsonrecon/jsonrecon/parse - JSON/YAML decoding
//   - github.com/jsonrecon/jsonrecon/encode - rendering
package jsonrecon
