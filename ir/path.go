package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path returns the numeric path of this node's position in the tree,
// e.g. "$.items[2].name".
func (y *Node) Path() string {
	if y.Parent == nil {
		return "$"
	}
	switch y.Parent.Type {
	case ObjectType:
		return y.Parent.Path() + "." + FieldString(y.ParentField)
	case ArrayType:
		return y.Parent.Path() + "[" + strconv.Itoa(y.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}

// Path is one segment of a parsed path, linked to the next.  Exactly one
// of Field, Index, Key or AnyIndex is set per segment:
//
//   - Field: object segment ".name"
//   - Index: positional array segment "[2]"
//   - Key (with KeyValue): identity array segment "[id=7]"
//   - AnyIndex: pattern array segment "[]" (also accepted as "[*]")
type Path struct {
	Field    *string
	Index    *int
	Key      string
	KeyValue string
	AnyIndex bool
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	x := p
	for x != nil {
		switch {
		case x.AnyIndex:
			buf.WriteString("[]")
		case x.Key != "":
			fmt.Fprintf(buf, "[%s=%s]", x.Key, ValueString(x.KeyValue))
		case x.Field != nil:
			buf.WriteString("." + FieldString(*x.Field))
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
		x = x.Next
	}
	return buf.String()
}

// IsNumeric reports whether every array segment of p is positional.
func (p *Path) IsNumeric() bool {
	for x := p; x != nil; x = x.Next {
		if x.AnyIndex || x.Key != "" {
			return false
		}
	}
	return true
}

// ParsePath parses numeric paths, display paths and array patterns.  The
// leading "$" is optional, so "$.a[0]" and "a[0]" parse the same way.
func ParsePath(p string) (*Path, error) {
	frag := p
	if len(frag) != 0 && frag[0] == '$' {
		frag = frag[1:]
	}
	root := &Path{}
	if len(frag) == 0 {
		return root, nil
	}
	// relative form: leading bare field as in "items[].name"
	if frag[0] != '.' && frag[0] != '[' {
		frag = "." + frag
	}
	if err := parseFrag(frag, root); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrPathSyntax, p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	switch frag[0] {
	case '.':
		field, rest, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		if len(rest) == 0 {
			return nil
		}
		next := &Path{}
		if err := parseFrag(rest, next); err != nil {
			return err
		}
		parent.Next = next
		return nil
	case '[':
		i, err := bracketEnd(frag)
		if err != nil {
			return err
		}
		if err := parseBracket(frag[1:i], parent); err != nil {
			return err
		}
		if len(frag) == i+1 {
			return nil
		}
		next := &Path{}
		if err := parseFrag(frag[i+1:], next); err != nil {
			return err
		}
		parent.Next = next
		return nil
	default:
		return fmt.Errorf("expected '.' or '['")
	}
}

// bracketEnd finds the closing ']' of the bracket segment starting frag,
// skipping quoted identity values such as "[id='a]b']".
func bracketEnd(frag string) (int, error) {
	quoted, escaped := false, false
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		if quoted {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '\'':
				quoted = false
			}
			continue
		}
		switch c {
		case '\'':
			quoted = true
		case ']':
			return i, nil
		}
	}
	return 0, fmt.Errorf("expected '[' <index> ']'")
}

func parseBracket(is string, parent *Path) error {
	if len(is) == 0 || is == "*" {
		parent.AnyIndex = true
		return nil
	}
	if eq := strings.IndexByte(is, '='); eq != -1 {
		if eq == 0 {
			return fmt.Errorf("empty key in %q", "["+is+"]")
		}
		parent.Key = is[:eq]
		v := is[eq+1:]
		if len(v) > 0 && v[0] == '\'' {
			val, rest, err := unquote(v)
			if err != nil {
				return err
			}
			if rest != "" {
				return fmt.Errorf("trailing %q after quoted value", rest)
			}
			parent.KeyValue = val
			return nil
		}
		parent.KeyValue = v
		return nil
	}
	u64, err := strconv.ParseUint(is, 10, 64)
	if err != nil {
		return err
	}
	index := int(u64)
	parent.Index = &index
	return nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == 0 {
			return "", "", fmt.Errorf("empty field")
		}
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	return unquote(frag)
}

// unquote scans a single-quoted token starting at frag[0] == '\'' and
// returns its contents plus whatever follows the closing quote.
func unquote(frag string) (string, string, error) {
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			escaped = true
		case '\'':
			if !escaped {
				return string(res), frag[i+1:], nil
			}
			fallthrough
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

const pathMeta = "'.*$[]= "

// FieldString renders an object field for embedding in a path, quoting it
// when it contains path metacharacters or whitespace.
func FieldString(f string) string {
	if f != "" && strings.IndexAny(f, pathMeta) == -1 {
		return f
	}
	return "'" + strings.Replace(f, "'", "\\'", -1) + "'"
}

// ValueString renders an identity value for embedding in a bracket
// segment, under the same quoting rule as FieldString.
func ValueString(v string) string {
	return FieldString(v)
}

// GetPath resolves a numeric path against y.  A missing field resolves to
// (nil, nil); identity or pattern segments are errors here, they require
// the resolver layer.
func (y *Node) GetPath(yPath string) (*Node, error) {
	yp, err := ParsePath(yPath)
	if err != nil {
		return nil, err
	}
	res := y
	for yp != nil {
		if yp.AnyIndex {
			return nil, fmt.Errorf("pattern index in get: %q", yPath)
		}
		if yp.Key != "" {
			return nil, fmt.Errorf("identity segment in get: %q", yPath)
		}
		if yp.Index != nil {
			if res.Type != ArrayType {
				return nil, fmt.Errorf("expected array, got %s", res.Type)
			}
			index := *yp.Index
			if index < 0 || index >= len(res.Values) {
				return nil, fmt.Errorf("index out of bounds %d (len %d)", index, len(res.Values))
			}
			res = res.Values[index]
			yp = yp.Next
			continue
		}
		if yp.Field != nil {
			if res.Type != ObjectType {
				return nil, fmt.Errorf("expected object got %s", res.Type)
			}
			field := *yp.Field
			found := false
			for i, yf := range res.Fields {
				if yf.String != field {
					continue
				}
				res = res.Values[i]
				yp = yp.Next
				found = true
				break
			}
			if found {
				continue
			}
			return nil, nil
		}
		yp = yp.Next
	}
	return res, nil
}
