package libdiff

import (
	"strings"

	"github.com/jsonrecon/jsonrecon/debug"
	"github.com/jsonrecon/jsonrecon/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// alignByKey reconciles two arrays under an identity key:
//
//  1. project every element to its identity value (non-object elements
//     fall back to a type/value summary)
//  2. intern the projections into runes and diff the two rune sequences;
//     the diff's equality predicate is then exactly "equal identity"
//  3. walk the delete/equal/insert runs with separate from/to cursors,
//     emitting Removed and Added entries and recursing on paired elements
//
// An identity that occurs in a delete run and again in an insert run is a
// reordered element, not a removal plus an addition; it is compared
// in place at its two (differing) positional indices.
func (d *differ) alignByKey(from, to *ir.Node, key string, at cursor) {
	parts := strings.Split(key, CompositeSep)
	fromIDs := projectAll(from, parts)
	toIDs := projectAll(to, parts)

	toIndex := make(map[string]int, len(toIDs))
	for i, pr := range toIDs {
		if _, ok := toIndex[pr.value]; !ok {
			toIndex[pr.value] = i
		}
	}
	fromSet := make(map[string]bool, len(fromIDs))
	for _, pr := range fromIDs {
		fromSet[pr.value] = true
	}

	m := map[string]rune{}
	fromRunes := internRunes(m, fromIDs)
	toRunes := internRunes(m, toIDs)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	if debug.Align() {
		debug.Logf("align %s by %q: %d runs\n", at.display, key, len(diffs))
	}

	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range diff.Text {
				pr := fromIDs[fi]
				if ri, moved := toIndex[pr.value]; moved && pr.isID {
					d.compare(from.Values[fi], to.Values[ri], at.identity(key, pr.value, fi, ri))
				} else {
					d.emit(Removed, at.element(key, pr, fi, -1), from.Values[fi], nil)
				}
				fi++
			}
		case diffpatch.DiffEqual:
			for range diff.Text {
				d.compare(from.Values[fi], to.Values[ti], at.element(key, fromIDs[fi], fi, ti))
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				pr := toIDs[ti]
				if !pr.isID || !fromSet[pr.value] {
					d.emit(Added, at.element(key, pr, -1, ti), nil, to.Values[ti])
				}
				ti++
			}
		}
	}
}

// projection is one element's identity value; isID is false for elements
// projected through the summary fallback.
type projection struct {
	value string
	isID  bool
}

func projectAll(arr *ir.Node, parts []string) []projection {
	res := make([]projection, len(arr.Values))
	for i, el := range arr.Values {
		if el.Type == ir.ObjectType {
			if v, ok := projectIdentity(el, parts); ok {
				res[i] = projection{value: v, isID: true}
				continue
			}
		}
		res[i] = projection{value: summaryStr(el)}
	}
	return res
}

func internRunes(m map[string]rune, prs []projection) []rune {
	rs := make([]rune, len(prs))
	for i, pr := range prs {
		r, ok := m[pr.value]
		if !ok {
			r = rune(len(m))
			m[pr.value] = r
		}
		rs[i] = r
	}
	return rs
}
