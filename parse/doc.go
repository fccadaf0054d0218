// Package parse decodes JSON and YAML documents into IR nodes.
//
// # Usage
//
//	// Parse JSON (the default)
//	node, err := parse.Parse([]byte(`{"name": "alice", "age": 30}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse YAML
//	node, err := parse.Parse(data, parse.ParseFormat(format.YAMLFormat))
//
// Object key order is preserved: the decoder streams tokens rather than
// round-tripping through Go maps.  Duplicate object keys are an error.
//
// # Related Packages
//
//   - github.com/jsonrecon/jsonrecon/ir - value representation
//   - github.com/jsonrecon/jsonrecon/encode - encode IR back to text
package parse
