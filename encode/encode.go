package encode

import (
	"fmt"
	"io"

	"github.com/jsonrecon/jsonrecon/ir"

	"github.com/go-json-experiment/json/jsontext"
)

// Encode writes node to w as JSON, indented unless EncodeWire is set.
// Object field order is preserved.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: "  "}
	for _, opt := range opts {
		opt(es)
	}
	var encOpts []jsontext.Options
	if !es.wire {
		encOpts = append(encOpts, jsontext.WithIndent(es.indent))
	}
	enc := jsontext.NewEncoder(w, encOpts...)
	return writeValue(enc, node)
}

func writeValue(enc *jsontext.Encoder, node *ir.Node) error {
	switch node.Type {
	case ir.NullType:
		return enc.WriteToken(jsontext.Null)
	case ir.BoolType:
		return enc.WriteToken(jsontext.Bool(node.Bool))
	case ir.NumberType:
		if node.Int64 != nil {
			return enc.WriteToken(jsontext.Int(*node.Int64))
		}
		if node.Float64 != nil {
			return enc.WriteToken(jsontext.Float(*node.Float64))
		}
		return fmt.Errorf("number node with no value")
	case ir.StringType:
		return enc.WriteToken(jsontext.String(node.String))
	case ir.ArrayType:
		if err := enc.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		for _, v := range node.Values {
			if err := writeValue(enc, v); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndArray)
	case ir.ObjectType:
		if err := enc.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}
		for i, f := range node.Fields {
			if err := enc.WriteToken(jsontext.String(f.String)); err != nil {
				return err
			}
			if err := writeValue(enc, node.Values[i]); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndObject)
	default:
		return fmt.Errorf("unknown node type %d", node.Type)
	}
}
