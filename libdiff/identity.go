package libdiff

import (
	"sort"
	"strconv"
	"strings"

	"github.com/jsonrecon/jsonrecon/debug"
	"github.com/jsonrecon/jsonrecon/ir"
)

// CompositeSep joins the parts of a composite key and of its projected
// values, both in key encodings ("type+subtype") and in display segments
// ("[type+subtype=A+x]").
const CompositeSep = "+"

// objectProportion is the minimum share of object elements an array must
// have on each side to be considered for identity matching.
const objectProportion = 0.8

// preferredKeys sort ahead of other candidate keys, in this order.
var preferredKeys = []string{"id", "key", "uuid", "name", "_id"}

// categoricalFields are promoted ahead of everything else when the sample
// object also carries a volatile identifier: volatile identifiers tend to
// regenerate across snapshots and make poor primary identity.
var categoricalFields = map[string]bool{"type": true, "kind": true}

var volatileFields = map[string]bool{"uuid": true, "_id": true, "guid": true}

// FindKey discovers an identity key for matching the elements of two
// arrays.  It returns the key (composites encoded "k1+k2"), whether it is
// composite, and whether any key qualified.  No key qualifies when both
// arrays are empty, when either side is not mostly objects, or when no
// single or composite candidate passes presence, uniqueness and overlap
// validation; the caller then falls back to positional comparison.
// Singleton arrays still identity-match when their values overlap, so a
// one-element change reports under its identity segment.
func FindKey(from, to *ir.Node) (string, bool, bool) {
	if len(from.Values) == 0 && len(to.Values) == 0 {
		return "", false, false
	}
	if !mostlyObjects(from) || !mostlyObjects(to) {
		return "", false, false
	}
	sample := firstObject(from)
	if sample == nil {
		sample = firstObject(to)
	}
	if sample == nil {
		return "", false, false
	}
	cands := candidateKeys(sample)
	for _, k := range cands {
		if validKey(from, to, []string{k}) {
			if debug.Keys() {
				debug.Logf("identity key %q for arrays %dx%d\n", k, len(from.Values), len(to.Values))
			}
			return k, false, true
		}
	}
	for i := range cands {
		for j := i + 1; j < len(cands); j++ {
			parts := []string{cands[i], cands[j]}
			if validKey(from, to, parts) {
				k := strings.Join(orderByFields(sample, parts), CompositeSep)
				if debug.Keys() {
					debug.Logf("composite identity key %q for arrays %dx%d\n", k, len(from.Values), len(to.Values))
				}
				return k, true, true
			}
		}
	}
	return "", false, false
}

func mostlyObjects(arr *ir.Node) bool {
	n := len(arr.Values)
	if n == 0 {
		return true
	}
	objs := 0
	for _, v := range arr.Values {
		if v.Type == ir.ObjectType {
			objs++
		}
	}
	return float64(objs)/float64(n) >= objectProportion
}

func firstObject(arr *ir.Node) *ir.Node {
	for _, v := range arr.Values {
		if v.Type == ir.ObjectType {
			return v
		}
	}
	return nil
}

// candidateKeys orders the sample object's field names: preferred names
// first, the rest lexicographically; categorical fields jump the queue
// when a volatile identifier co-occurs with them.
func candidateKeys(sample *ir.Node) []string {
	has := make(map[string]bool, len(sample.Fields))
	for _, f := range sample.Fields {
		has[f.String] = true
	}
	res := make([]string, 0, len(sample.Fields))
	for _, p := range preferredKeys {
		if has[p] {
			res = append(res, p)
		}
	}
	preferred := make(map[string]bool, len(preferredKeys))
	for _, p := range preferredKeys {
		preferred[p] = true
	}
	rest := make([]string, 0, len(sample.Fields))
	for _, f := range sample.Fields {
		if !preferred[f.String] {
			rest = append(rest, f.String)
		}
	}
	sort.Strings(rest)
	res = append(res, rest...)

	volatile := false
	for v := range volatileFields {
		if has[v] {
			volatile = true
			break
		}
	}
	if !volatile {
		return res
	}
	promoted := make([]string, 0, len(res))
	for _, k := range res {
		if categoricalFields[k] {
			promoted = append(promoted, k)
		}
	}
	if len(promoted) == 0 {
		return res
	}
	for _, k := range res {
		if !categoricalFields[k] {
			promoted = append(promoted, k)
		}
	}
	return promoted
}

// orderByFields orders composite parts by their position on the sample
// object, so the emitted key reads in document field order.
func orderByFields(sample *ir.Node, parts []string) []string {
	pos := func(name string) int {
		for i, f := range sample.Fields {
			if f.String == name {
				return i
			}
		}
		return len(sample.Fields)
	}
	sort.SliceStable(parts, func(i, j int) bool { return pos(parts[i]) < pos(parts[j]) })
	return parts
}

// validKey checks presence and type on every object element of both
// arrays, per-array uniqueness of the projected values, and a non-empty
// overlap between the two sides' value sets.
func validKey(from, to *ir.Node, parts []string) bool {
	fromVals, ok := projectObjects(from, parts)
	if !ok {
		return false
	}
	toVals, ok := projectObjects(to, parts)
	if !ok {
		return false
	}
	if len(from.Values) > 1 && !allUnique(fromVals) {
		return false
	}
	if len(to.Values) > 1 && !allUnique(toVals) {
		return false
	}
	fromSet := make(map[string]bool, len(fromVals))
	for _, v := range fromVals {
		fromSet[v] = true
	}
	for _, v := range toVals {
		if fromSet[v] {
			return true
		}
	}
	return false
}

// projectObjects projects the object elements of arr through parts,
// skipping non-object elements.  It fails if any object element lacks a
// part or holds a non-scalar value for it.
func projectObjects(arr *ir.Node, parts []string) ([]string, bool) {
	res := make([]string, 0, len(arr.Values))
	for _, el := range arr.Values {
		if el.Type != ir.ObjectType {
			continue
		}
		v, ok := projectIdentity(el, parts)
		if !ok {
			return nil, false
		}
		res = append(res, v)
	}
	return res, true
}

// projectIdentity renders an object's identity value under parts.
func projectIdentity(el *ir.Node, parts []string) (string, bool) {
	vals := make([]string, len(parts))
	for i, p := range parts {
		v := ir.Get(el, p)
		if v == nil {
			return "", false
		}
		switch v.Type {
		case ir.StringType:
			vals[i] = v.String
		case ir.NumberType:
			vals[i] = v.NumberString()
		default:
			return "", false
		}
	}
	if len(vals) == 1 {
		return vals[0], true
	}
	for i, v := range vals {
		vals[i] = compositeEscaper.Replace(v)
	}
	return strings.Join(vals, CompositeSep), true
}

// compositeEscaper escapes the separator inside composite value parts so
// distinct part tuples never join to the same identity value.
var compositeEscaper = strings.NewReplacer(`\`, `\\`, CompositeSep, `\`+CompositeSep)

// ProjectValue renders el's identity value under key (composites encoded
// "k1+k2").  ok is false when el is not an object carrying the key(s)
// with scalar values.
func ProjectValue(el *ir.Node, key string) (string, bool) {
	if el.Type != ir.ObjectType {
		return "", false
	}
	return projectIdentity(el, strings.Split(key, CompositeSep))
}

// FindElement returns the index of the element of arr whose identity
// value under key equals value, or -1.
func FindElement(arr *ir.Node, key, value string) int {
	parts := strings.Split(key, CompositeSep)
	for i, el := range arr.Values {
		if el.Type != ir.ObjectType {
			continue
		}
		if v, ok := projectIdentity(el, parts); ok && v == value {
			return i
		}
	}
	return -1
}

func allUnique(vals []string) bool {
	seen := make(map[string]bool, len(vals))
	for _, v := range vals {
		if seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// summaryStr is the non-identity projection used for array elements that
// do not carry the identity key (scalars mixed into a keyed array).  The
// leading NUL keeps summaries out of the identity value space.
func summaryStr(node *ir.Node) string {
	switch node.Type {
	case ir.ObjectType, ir.ArrayType, ir.NullType:
		return "\x00" + node.Type.String()
	case ir.BoolType:
		return "\x00Bool-" + strconv.FormatBool(node.Bool)
	case ir.StringType:
		return "\x00String-" + node.String
	case ir.NumberType:
		return "\x00Number-" + node.NumberString()
	default:
		panic("type")
	}
}
