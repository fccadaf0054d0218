package jsonrecon

import (
	"fmt"
	"strconv"

	"github.com/jsonrecon/jsonrecon/debug"
	"github.com/jsonrecon/jsonrecon/ir"
	"github.com/jsonrecon/jsonrecon/libdiff"
)

// ToViewerPath translates a display path, possibly holding identity
// segments, into a viewer path addressing the given side's tree.  Identity
// segments are substituted by the matching element's position in that
// side's array; numeric segments pass through unchanged.  It returns ""
// with a nil error when a segment does not resolve on that side, which is
// the expected outcome for the absent side of an added or removed entry.
// Only path syntax errors are reported as errors.
func ToViewerPath(path string, side Side, trees *Trees, keys []libdiff.IdentityKey) (string, error) {
	p, err := ir.ParsePath(path)
	if err != nil {
		return "", fmt.Errorf("%s side: %w", side, err)
	}
	for x := p; x != nil; x = x.Next {
		if x.AnyIndex {
			return "", fmt.Errorf("%w: pattern segment in display path %q (%s side)", ir.ErrPathSyntax, path, side)
		}
	}
	if debug.Resolve() {
		debug.Logf("resolve %q on %s (%d identity keys known)\n", path, side, len(keys))
	}
	node := trees.side(side)
	if node == nil {
		return "", nil
	}
	numeric := "$"
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Key != "":
			if node.Type != ir.ArrayType {
				return "", nil
			}
			idx := libdiff.FindElement(node, x.Key, x.KeyValue)
			if idx < 0 {
				return "", nil
			}
			node = node.Values[idx]
			numeric += "[" + strconv.Itoa(idx) + "]"
		case x.Field != nil:
			if node.Type != ir.ObjectType {
				return "", nil
			}
			v := ir.Get(node, *x.Field)
			if v == nil {
				return "", nil
			}
			node = v
			numeric += "." + ir.FieldString(*x.Field)
		case x.Index != nil:
			if node.Type != ir.ArrayType || *x.Index < 0 || *x.Index >= len(node.Values) {
				return "", nil
			}
			node = node.Values[*x.Index]
			numeric += "[" + strconv.Itoa(*x.Index) + "]"
		}
	}
	return side.prefix() + numeric, nil
}

// PatternMatch holds the per-side numeric paths a pattern resolved to.
// An empty side means the array or a matching element does not exist
// there.
type PatternMatch struct {
	Left  string
	Right string
}

// ResolveArrayPattern resolves a structural pattern whose empty-bracket
// array segments mean "some matching element".  Both sides are walked
// together: at each pattern boundary the matching IdentityKey record, when
// one exists, picks the first left element whose identity value also
// occurs on the right, so the two sides may resolve to different indices.
// Without a record, each side independently resolves to its first element.
func ResolveArrayPattern(pattern string, trees *Trees, keys []libdiff.IdentityKey) (*PatternMatch, error) {
	p, err := ir.ParsePath(pattern)
	if err != nil {
		return nil, err
	}
	segs := flatten(p)
	if debug.Resolve() {
		debug.Logf("resolve pattern %q (%d segments, %d identity keys known)\n", pattern, len(segs), len(keys))
	}
	lnode, rnode := trees.Left, trees.Right
	lnum, rnum := "$", "$"
	for i, x := range segs {
		switch {
		case x.Field != nil:
			seg := "." + ir.FieldString(*x.Field)
			if lnode != nil {
				if lnode.Type == ir.ObjectType {
					lnode = ir.Get(lnode, *x.Field)
				} else {
					lnode = nil
				}
				lnum += seg
			}
			if rnode != nil {
				if rnode.Type == ir.ObjectType {
					rnode = ir.Get(rnode, *x.Field)
				} else {
					rnode = nil
				}
				rnum += seg
			}
		case x.Index != nil:
			lnode = elementAt(lnode, *x.Index)
			rnode = elementAt(rnode, *x.Index)
			seg := "[" + strconv.Itoa(*x.Index) + "]"
			lnum += seg
			rnum += seg
		case x.Key != "":
			li := -1
			if lnode != nil && lnode.Type == ir.ArrayType {
				li = libdiff.FindElement(lnode, x.Key, x.KeyValue)
			}
			ri := -1
			if rnode != nil && rnode.Type == ir.ArrayType {
				ri = libdiff.FindElement(rnode, x.Key, x.KeyValue)
			}
			lnode, rnode = pick(lnode, li), pick(rnode, ri)
			lnum += "[" + strconv.Itoa(li) + "]"
			rnum += "[" + strconv.Itoa(ri) + "]"
		case x.AnyIndex:
			li, ri := matchElements(lnode, rnode, segs[:i], keys)
			lnode, rnode = pick(lnode, li), pick(rnode, ri)
			lnum += "[" + strconv.Itoa(li) + "]"
			rnum += "[" + strconv.Itoa(ri) + "]"
		}
	}
	res := &PatternMatch{}
	if lnode != nil {
		res.Left = lnum
	}
	if rnode != nil {
		res.Right = rnum
	}
	return res, nil
}

// matchElements picks the per-side element indices for a pattern boundary,
// returning -1 for a side with no match.
func matchElements(lnode, rnode *ir.Node, prefix []*ir.Path, keys []libdiff.IdentityKey) (int, int) {
	larr := lnode != nil && lnode.Type == ir.ArrayType && len(lnode.Values) > 0
	rarr := rnode != nil && rnode.Type == ir.ArrayType && len(rnode.Values) > 0
	if !larr && !rarr {
		return -1, -1
	}
	rec := findKeyRecord(keys, prefix)
	if rec == nil || !larr || !rarr {
		// no identity info to correlate with, or only one side has
		// elements: first element per live side
		li, ri := -1, -1
		if larr {
			li = 0
		}
		if rarr {
			ri = 0
		}
		return li, ri
	}
	for li, el := range lnode.Values {
		v, ok := libdiff.ProjectValue(el, rec.Key)
		if !ok {
			continue
		}
		if ri := libdiff.FindElement(rnode, rec.Key, v); ri >= 0 {
			return li, ri
		}
	}
	return -1, -1
}

// findKeyRecord finds an IdentityKey whose array path structurally matches
// the pattern prefix: fields must agree, and a pattern's array boundary
// matches any array segment of the record path.
func findKeyRecord(keys []libdiff.IdentityKey, prefix []*ir.Path) *libdiff.IdentityKey {
	for i := range keys {
		rec := &keys[i]
		rp, err := ir.ParsePath(rec.ArrayPath)
		if err != nil {
			continue
		}
		if structMatch(flatten(rp), prefix) {
			return rec
		}
	}
	return nil
}

func structMatch(rec, pat []*ir.Path) bool {
	if len(rec) != len(pat) {
		return false
	}
	for i := range pat {
		p, r := pat[i], rec[i]
		switch {
		case p.Field != nil:
			if r.Field == nil || *r.Field != *p.Field {
				return false
			}
		case p.AnyIndex:
			if r.Index == nil && r.Key == "" && !r.AnyIndex {
				return false
			}
		case p.Index != nil:
			if r.Index == nil || *r.Index != *p.Index {
				return false
			}
		case p.Key != "":
			if r.Key != p.Key || r.KeyValue != p.KeyValue {
				return false
			}
		}
	}
	return true
}

// flatten linearizes a parsed path, dropping the empty root segment.
func flatten(p *ir.Path) []*ir.Path {
	var segs []*ir.Path
	for x := p; x != nil; x = x.Next {
		if x.Field == nil && x.Index == nil && x.Key == "" && !x.AnyIndex {
			continue
		}
		segs = append(segs, x)
	}
	return segs
}

func elementAt(arr *ir.Node, i int) *ir.Node {
	if arr == nil || arr.Type != ir.ArrayType || i < 0 || i >= len(arr.Values) {
		return nil
	}
	return arr.Values[i]
}

func pick(arr *ir.Node, i int) *ir.Node {
	return elementAt(arr, i)
}
