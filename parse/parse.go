package parse

import (
	"github.com/jsonrecon/jsonrecon/format"
	"github.com/jsonrecon/jsonrecon/ir"
)

// Parse decodes d into an IR node.  The input format defaults to JSON.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	ps := &parseState{}
	for _, opt := range opts {
		opt(ps)
	}
	switch ps.format {
	case format.YAMLFormat:
		return parseYAML(d)
	default:
		return parseJSON(d)
	}
}
