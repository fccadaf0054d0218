package parse

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/jsonrecon/jsonrecon/ir"

	"github.com/go-json-experiment/json/jsontext"
)

func parseJSON(d []byte) (*ir.Node, error) {
	dec := jsontext.NewDecoder(bytes.NewReader(d))
	node, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ir.ErrParse, err)
	}
	return node, nil
}

func decodeValue(dec *jsontext.Decoder) (*ir.Node, error) {
	switch dec.PeekKind() {
	case '{':
		return decodeObject(dec)
	case '[':
		return decodeArray(dec)
	}
	tok, err := dec.ReadToken()
	if err != nil {
		return nil, fmt.Errorf("read value: %w", err)
	}
	switch tok.Kind() {
	case 'n':
		return ir.Null(), nil
	case 't':
		return ir.FromBool(true), nil
	case 'f':
		return ir.FromBool(false), nil
	case '"':
		return ir.FromString(tok.String()), nil
	case '0':
		return numberNode(tok.String())
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

// numberNode keeps integral literals as Int64 and everything else as
// Float64, matching how the diff engine renders numbers back out.
func numberNode(raw string) (*ir.Node, error) {
	if !strings.ContainsAny(raw, ".eE") {
		if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return ir.FromInt(i), nil
		}
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("bad number %q: %w", raw, err)
	}
	return ir.FromFloat(f), nil
}

func decodeObject(dec *jsontext.Decoder) (*ir.Node, error) {
	if _, err := dec.ReadToken(); err != nil { // '{'
		return nil, fmt.Errorf("read object open: %w", err)
	}
	var kvs []ir.KeyVal
	seen := map[string]bool{}
	for dec.PeekKind() != '}' {
		tok, err := dec.ReadToken()
		if err != nil {
			return nil, fmt.Errorf("read object key: %w", err)
		}
		key := tok.String()
		if seen[key] {
			return nil, fmt.Errorf("duplicate object key %q", key)
		}
		seen[key] = true
		val, err := decodeValue(dec)
		if err != nil {
			return nil, fmt.Errorf("read object value for key %q: %w", key, err)
		}
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(key), Val: val})
	}
	if _, err := dec.ReadToken(); err != nil { // '}'
		return nil, fmt.Errorf("read object close: %w", err)
	}
	return ir.FromKeyVals(kvs), nil
}

func decodeArray(dec *jsontext.Decoder) (*ir.Node, error) {
	if _, err := dec.ReadToken(); err != nil { // '['
		return nil, fmt.Errorf("read array open: %w", err)
	}
	var vals []*ir.Node
	for dec.PeekKind() != ']' {
		v, err := decodeValue(dec)
		if err != nil {
			return nil, fmt.Errorf("read array element: %w", err)
		}
		vals = append(vals, v)
	}
	if _, err := dec.ReadToken(); err != nil { // ']'
		return nil, fmt.Errorf("read array close: %w", err)
	}
	return ir.FromSlice(vals), nil
}
