// Package encode renders IR nodes and diff results to text.
//
// # Usage
//
//	// Encode a value as indented JSON
//	err := encode.Encode(node, os.Stdout)
//
//	// Compact form
//	err := encode.Encode(node, w, encode.EncodeWire(true))
//
//	// Render a diff listing, with color when writing to a terminal
//	err := encode.EncodeDiff(res, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// # Related Packages
//
//   - github.com/jsonrecon/jsonrecon/ir - value representation
//   - github.com/jsonrecon/jsonrecon/libdiff - diff computation
package encode
