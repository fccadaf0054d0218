package parse

import "github.com/jsonrecon/jsonrecon/format"

type ParseOption func(*parseState)

type parseState struct {
	format format.Format
}

func ParseFormat(f format.Format) ParseOption {
	return func(ps *parseState) { ps.format = f }
}
