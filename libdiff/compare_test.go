package libdiff_test

import (
	"fmt"
	"testing"

	"github.com/jsonrecon/jsonrecon/ir"
	"github.com/jsonrecon/jsonrecon/libdiff"
	"github.com/jsonrecon/jsonrecon/parse"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return n
}

// render projects an entry to a comparable line, dropping the value nodes.
func render(e *libdiff.Entry) string {
	return fmt.Sprintf("%s %s (%s) key=%s", e.Kind, e.DisplayPath, e.NumericPath, e.IdentityKey)
}

func renderAll(res *libdiff.Result) []string {
	lines := make([]string, len(res.Diffs))
	for i := range res.Diffs {
		lines[i] = render(&res.Diffs[i])
	}
	return lines
}

type compareTest struct {
	name string
	a    string
	b    string
	want []string
	keys []libdiff.IdentityKey
}

var compareTests = []compareTest{
	{
		name: "leaf change under identity key",
		a:    `{"items":[{"id":1,"name":"a"},{"id":2,"name":"b"}]}`,
		b:    `{"items":[{"id":1,"name":"z"},{"id":2,"name":"b"}]}`,
		want: []string{
			"changed $.items[id=1].name ($.items[0].name) key=id",
		},
		keys: []libdiff.IdentityKey{
			{ArrayPath: "$.items", Key: "id", LeftLen: 2, RightLen: 2},
		},
	},
	{
		name: "reorder with add and remove",
		a:    `{"items":[{"id":1},{"id":2},{"id":3}]}`,
		b:    `{"items":[{"id":3},{"id":2},{"id":4}]}`,
		want: []string{
			"removed $.items[id=1] ($.items[0]) key=id",
			"added $.items[id=4] ($.items[2]) key=id",
		},
		keys: []libdiff.IdentityKey{
			{ArrayPath: "$.items", Key: "id", LeftLen: 3, RightLen: 3},
		},
	},
	{
		name: "changed element that also moved",
		a:    `{"items":[{"id":1},{"id":2,"name":"b"},{"id":3,"name":"c"}]}`,
		b:    `{"items":[{"id":3,"name":"C"},{"id":2,"name":"b"},{"id":1}]}`,
		want: []string{
			"changed $.items[id=3].name ($.items[2].name) key=id",
		},
		keys: []libdiff.IdentityKey{
			{ArrayPath: "$.items", Key: "id", LeftLen: 3, RightLen: 3},
		},
	},
	{
		name: "positional fallback for scalar arrays",
		a:    `{"arr":[1,2,3]}`,
		b:    `{"arr":[1,5]}`,
		want: []string{
			"changed $.arr[1] ($.arr[1]) key=",
			"removed $.arr[2] ($.arr[2]) key=",
		},
		keys: []libdiff.IdentityKey{},
	},
	{
		name: "composite identity key",
		a: `{"recs":[
			{"type":"A","subtype":"x","cfg":{"depth":1}},
			{"type":"A","subtype":"y","cfg":{"depth":2}},
			{"type":"B","subtype":"x","cfg":{"depth":3}}]}`,
		b: `{"recs":[
			{"type":"A","subtype":"x","cfg":{"depth":1}},
			{"type":"A","subtype":"y","cfg":{"depth":9}},
			{"type":"B","subtype":"x","cfg":{"depth":3}}]}`,
		want: []string{
			"changed $.recs[type+subtype=A+y].cfg.depth ($.recs[1].cfg.depth) key=type+subtype",
		},
		keys: []libdiff.IdentityKey{
			{ArrayPath: "$.recs", Key: "type+subtype", Composite: true, LeftLen: 3, RightLen: 3},
		},
	},
	{
		name: "non-object element in keyed array keeps positional display",
		a:    `{"items":[{"id":1},{"id":2},{"id":3},{"id":4},"x"]}`,
		b:    `{"items":[{"id":1},{"id":2},{"id":3},{"id":4}]}`,
		want: []string{
			"removed $.items[4] ($.items[4]) key=id",
		},
		keys: []libdiff.IdentityKey{
			{ArrayPath: "$.items", Key: "id", LeftLen: 5, RightLen: 4},
		},
	},
	{
		name: "object field add and remove",
		a:    `{"a":1,"b":2}`,
		b:    `{"b":2,"c":3}`,
		want: []string{
			"removed $.a ($.a) key=",
			"added $.c ($.c) key=",
		},
		keys: []libdiff.IdentityKey{},
	},
	{
		name: "type change reports the boundary",
		a:    `{"a":[1,2]}`,
		b:    `{"a":{"x":1}}`,
		want: []string{
			"changed $.a ($.a) key=",
		},
		keys: []libdiff.IdentityKey{},
	},
	{
		name: "singleton array change keeps its identity segment",
		a:    `{"items":[{"id":1,"name":"a"}]}`,
		b:    `{"items":[{"id":1,"name":"b"}]}`,
		want: []string{
			"changed $.items[id=1].name ($.items[0].name) key=id",
		},
		keys: []libdiff.IdentityKey{
			{ArrayPath: "$.items", Key: "id", LeftLen: 1, RightLen: 1},
		},
	},
	{
		name: "equal documents",
		a:    `{"items":[{"id":1,"name":"a"}],"n":3}`,
		b:    `{"items":[{"id":1,"name":"a"}],"n":3}`,
		want: []string{},
		keys: []libdiff.IdentityKey{
			{ArrayPath: "$.items", Key: "id", LeftLen: 1, RightLen: 1},
		},
	},
}

func TestCompare(t *testing.T) {
	for _, tc := range compareTests {
		t.Run(tc.name, func(t *testing.T) {
			a, b := mustParse(t, tc.a), mustParse(t, tc.b)
			res := libdiff.Compare(a, b)
			if d := cmp.Diff(tc.want, renderAll(res)); d != "" {
				t.Errorf("entries mismatch (-want +got):\n%s", d)
			}
			if d := cmp.Diff(tc.keys, res.IdentityKeys); d != "" {
				t.Errorf("identity keys mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestCompare_Reflexive(t *testing.T) {
	doc := mustParse(t, `{
		"items":[{"id":1,"name":"a"},{"id":2,"name":"b"}],
		"tags":["x","y"],
		"meta":{"rev":1,"null":null,"f":1.25}
	}`)
	res := libdiff.Compare(doc, doc)
	if len(res.Diffs) != 0 {
		t.Errorf("compare(v, v) produced %d entries: %v", len(res.Diffs), renderAll(res))
	}
}

func TestCompare_SymmetricCardinality(t *testing.T) {
	a := mustParse(t, `{"items":[{"id":1},{"id":2},{"id":3}],"x":[1,2,3],"o":{"k":1}}`)
	b := mustParse(t, `{"items":[{"id":3},{"id":4}],"x":[1],"o":{"j":2}}`)
	count := func(res *libdiff.Result, k libdiff.Kind) int {
		n := 0
		for i := range res.Diffs {
			if res.Diffs[i].Kind == k {
				n++
			}
		}
		return n
	}
	ab := libdiff.Compare(a, b)
	ba := libdiff.Compare(b, a)
	if got, want := count(ba, libdiff.Removed), count(ab, libdiff.Added); got != want {
		t.Errorf("reverse removed = %d, forward added = %d", got, want)
	}
	if got, want := count(ba, libdiff.Added), count(ab, libdiff.Removed); got != want {
		t.Errorf("reverse added = %d, forward removed = %d", got, want)
	}
	if got, want := count(ba, libdiff.Changed), count(ab, libdiff.Changed); got != want {
		t.Errorf("reverse changed = %d, forward changed = %d", got, want)
	}
}

func TestCompare_Deterministic(t *testing.T) {
	a := mustParse(t, `{"items":[{"id":3},{"id":1},{"id":2}],"x":[1,2],"y":{"k":"v"}}`)
	b := mustParse(t, `{"items":[{"id":2},{"id":9}],"x":[2],"y":{"k":"w"}}`)
	first := renderAll(libdiff.Compare(a, b))
	for i := 0; i < 10; i++ {
		if d := cmp.Diff(first, renderAll(libdiff.Compare(a, b))); d != "" {
			t.Fatalf("run %d differs (-first +got):\n%s", i, d)
		}
	}
}

func TestCompare_EntrySides(t *testing.T) {
	a := mustParse(t, `{"items":[{"id":1},{"id":2}]}`)
	b := mustParse(t, `{"items":[{"id":2},{"id":3}]}`)
	res := libdiff.Compare(a, b)
	for i := range res.Diffs {
		e := &res.Diffs[i]
		switch e.Kind {
		case libdiff.Removed:
			if e.Left == nil || e.Right != nil {
				t.Errorf("%s: removed entry wants left only", e.DisplayPath)
			}
		case libdiff.Added:
			if e.Left != nil || e.Right == nil {
				t.Errorf("%s: added entry wants right only", e.DisplayPath)
			}
		case libdiff.Changed:
			if e.Left == nil || e.Right == nil {
				t.Errorf("%s: changed entry wants both sides", e.DisplayPath)
			}
		}
	}
}

func TestDetectKeys(t *testing.T) {
	doc := mustParse(t, `{
		"items":[{"id":1},{"id":2}],
		"tags":["a","b"],
		"nested":{"rows":[{"name":"x"},{"name":"y"}]}
	}`)
	got := libdiff.DetectKeys(doc)
	want := []libdiff.IdentityKey{
		{ArrayPath: "$.items", Key: "id", LeftLen: 2, RightLen: 2},
		{ArrayPath: "$.nested.rows", Key: "name", LeftLen: 2, RightLen: 2},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("detect mismatch (-want +got):\n%s", d)
	}
}
