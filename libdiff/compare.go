package libdiff

import (
	"strconv"
	"strings"

	"github.com/jsonrecon/jsonrecon/ir"
)

// Compare walks two value trees in lock-step and returns the flat ordered
// diff list plus the identity keys discovered along the way.  Inputs are
// never mutated, and identical inputs always produce identical results.
func Compare(from, to *ir.Node) *Result {
	d := &differ{res: &Result{
		Diffs:        []Entry{},
		IdentityKeys: []IdentityKey{},
	}}
	d.compare(from, to, rootCursor())
	return d.res
}

// DetectKeys runs identity key discovery over every array of a single
// document, comparing each array against itself.  Used for advisory
// display of which arrays would be identity-matched.
func DetectKeys(doc *ir.Node) []IdentityKey {
	d := &differ{res: &Result{IdentityKeys: []IdentityKey{}}}
	d.detect(doc, rootCursor())
	return d.res.IdentityKeys
}

type differ struct {
	res *Result
}

func (d *differ) compare(from, to *ir.Node, at cursor) {
	if from.Type != to.Type {
		d.emit(Changed, at, from, to)
		return
	}
	switch from.Type {
	case ir.ObjectType:
		d.compareObjects(from, to, at)
	case ir.ArrayType:
		d.compareArrays(from, to, at)
	default:
		if ir.Compare(from, to) != 0 {
			d.emit(Changed, at, from, to)
		}
	}
}

// compareObjects diffs the key union: left-only fields are Removed,
// right-only fields are Added, shared fields recurse.  Left field order
// first, then right-only fields in right order, keeps output
// deterministic without sorting.
func (d *differ) compareObjects(from, to *ir.Node, at cursor) {
	for i, f := range from.Fields {
		name := f.String
		tv := ir.Get(to, name)
		if tv == nil {
			d.emit(Removed, at.field(name), from.Values[i], nil)
			continue
		}
		d.compare(from.Values[i], tv, at.field(name))
	}
	for i, f := range to.Fields {
		if ir.Get(from, f.String) == nil {
			d.emit(Added, at.field(f.String), nil, to.Values[i])
		}
	}
}

func (d *differ) compareArrays(from, to *ir.Node, at cursor) {
	key, composite, ok := FindKey(from, to)
	if ok {
		d.res.IdentityKeys = append(d.res.IdentityKeys, IdentityKey{
			ArrayPath: at.display,
			Key:       key,
			Composite: composite,
			LeftLen:   len(from.Values),
			RightLen:  len(to.Values),
		})
		d.alignByKey(from, to, key, at)
		return
	}
	n := max(len(from.Values), len(to.Values))
	for i := 0; i < n; i++ {
		switch {
		case i >= len(to.Values):
			d.emit(Removed, at.index(i), from.Values[i], nil)
		case i >= len(from.Values):
			d.emit(Added, at.index(i), nil, to.Values[i])
		default:
			d.compare(from.Values[i], to.Values[i], at.index(i))
		}
	}
}

func (d *differ) detect(node *ir.Node, at cursor) {
	switch node.Type {
	case ir.ObjectType:
		for i, f := range node.Fields {
			d.detect(node.Values[i], at.field(f.String))
		}
	case ir.ArrayType:
		key, composite, ok := FindKey(node, node)
		if !ok {
			for i, v := range node.Values {
				d.detect(v, at.index(i))
			}
			return
		}
		d.res.IdentityKeys = append(d.res.IdentityKeys, IdentityKey{
			ArrayPath: at.display,
			Key:       key,
			Composite: composite,
			LeftLen:   len(node.Values),
			RightLen:  len(node.Values),
		})
		parts := strings.Split(key, CompositeSep)
		for i, v := range node.Values {
			d.detect(v, at.element(key, projectionOf(v, parts), i, i))
		}
	}
}

func projectionOf(el *ir.Node, parts []string) projection {
	if el.Type == ir.ObjectType {
		if v, ok := projectIdentity(el, parts); ok {
			return projection{value: v, isID: true}
		}
	}
	return projection{value: summaryStr(el)}
}

func (d *differ) emit(kind Kind, at cursor, left, right *ir.Node) {
	num := at.leftNum
	if kind == Added {
		num = at.rightNum
	}
	d.res.Diffs = append(d.res.Diffs, Entry{
		DisplayPath: at.display,
		NumericPath: num,
		Kind:        kind,
		Left:        left,
		Right:       right,
		IdentityKey: at.key,
	})
}

// cursor tracks the two parallel path representations as the comparator
// descends: the identity-aware display path and a positional path per
// side.  The sides diverge only below identity-matched array boundaries.
type cursor struct {
	display  string
	leftNum  string
	rightNum string

	// key is the identity key in force at the nearest enclosing
	// identity-matched array boundary.
	key string
}

func rootCursor() cursor {
	return cursor{display: "$", leftNum: "$", rightNum: "$"}
}

func (c cursor) field(name string) cursor {
	seg := "." + ir.FieldString(name)
	c.display += seg
	c.leftNum += seg
	c.rightNum += seg
	return c
}

func (c cursor) index(i int) cursor {
	seg := "[" + strconv.Itoa(i) + "]"
	c.display += seg
	c.leftNum += seg
	c.rightNum += seg
	return c
}

// identity descends into an identity-matched element: the display path
// gets the "[key=value]" segment while each numeric path gets that side's
// own index.
func (c cursor) identity(key, value string, li, ri int) cursor {
	c.display += "[" + key + "=" + ir.ValueString(value) + "]"
	c.leftNum += "[" + strconv.Itoa(li) + "]"
	c.rightNum += "[" + strconv.Itoa(ri) + "]"
	c.key = key
	return c
}

// element is identity() for elements that projected through the summary
// fallback: those keep a positional display segment.
func (c cursor) element(key string, pr projection, li, ri int) cursor {
	if pr.isID {
		return c.identity(key, pr.value, li, ri)
	}
	di := li
	if di < 0 {
		di = ri
	}
	c.display += "[" + strconv.Itoa(di) + "]"
	c.leftNum += "[" + strconv.Itoa(li) + "]"
	c.rightNum += "[" + strconv.Itoa(ri) + "]"
	c.key = key
	return c
}
