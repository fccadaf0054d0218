package jsonrecon

import (
	"errors"
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

// Every entry's display path must resolve, on the side the entry's
// numeric path addresses, back to exactly that numeric path.
func TestToViewerPath_RoundTrip(t *testing.T) {
	left := mustParse(t, `{
		"items":[{"id":1,"name":"a"},{"id":2,"name":"b"},{"id":3,"name":"c"}],
		"tags":["x","y","z"],
		"meta":{"rev":1}
	}`)
	right := mustParse(t, `{
		"items":[{"id":3,"name":"C"},{"id":2,"name":"b"},{"id":4,"name":"d"}],
		"tags":["x","y"],
		"meta":{"rev":2}
	}`)
	trees := &Trees{Left: left, Right: right}
	res := Compare(left, right)
	if len(res.Diffs) == 0 {
		t.Fatalf("expected differences")
	}
	for i := range res.Diffs {
		e := &res.Diffs[i]
		side := LeftSide
		if e.Kind == libdiff.Added {
			side = RightSide
		}
		vp, err := ToViewerPath(e.DisplayPath, side, trees, res.IdentityKeys)
		if err != nil {
			t.Errorf("%s: %v", e.DisplayPath, err)
			continue
		}
		want := side.prefix() + e.NumericPath
		if vp != want {
			t.Errorf("%s: viewer path %q, want %q", e.DisplayPath, vp, want)
		}
	}
}

// Identity values holding path metacharacters must still round-trip:
// the display segment quotes them and the resolver reads them back.
func TestToViewerPath_QuotedIdentityValues(t *testing.T) {
	left := mustParse(t, `{"items":[{"id":"a]b","v":1},{"id":"c","v":2}]}`)
	right := mustParse(t, `{"items":[{"id":"a]b","v":9},{"id":"c","v":2}]}`)
	trees := &Trees{Left: left, Right: right}
	res := Compare(left, right)
	if len(res.Diffs) != 1 {
		t.Fatalf("diffs = %d, want 1", len(res.Diffs))
	}
	e := &res.Diffs[0]
	if want := "$.items[id='a]b'].v"; e.DisplayPath != want {
		t.Errorf("display path %q, want %q", e.DisplayPath, want)
	}
	vp, err := ToViewerPath(e.DisplayPath, LeftSide, trees, res.IdentityKeys)
	if err != nil {
		t.Fatal(err)
	}
	if want := "left_" + e.NumericPath; vp != want {
		t.Errorf("viewer path %q, want %q", vp, want)
	}
}

func TestToViewerPath_SidesDiverge(t *testing.T) {
	left := mustParse(t, `{"items":[{"id":1},{"id":2},{"id":3}]}`)
	right := mustParse(t, `{"items":[{"id":3},{"id":2}]}`)
	trees := &Trees{Left: left, Right: right}
	keys := Compare(left, right).IdentityKeys

	lvp, err := ToViewerPath("$.items[id=3]", LeftSide, trees, keys)
	if err != nil {
		t.Fatal(err)
	}
	if lvp != "left_$.items[2]" {
		t.Errorf("left viewer path %q", lvp)
	}
	rvp, err := ToViewerPath("$.items[id=3]", RightSide, trees, keys)
	if err != nil {
		t.Fatal(err)
	}
	if rvp != "right_$.items[0]" {
		t.Errorf("right viewer path %q", rvp)
	}
}

func TestToViewerPath_NotFound(t *testing.T) {
	left := mustParse(t, `{"items":[{"id":1}],"n":1}`)
	right := mustParse(t, `{"items":[],"n":1}`)
	trees := &Trees{Left: left, Right: right}

	tests := []struct {
		path string
		side Side
	}{
		{"$.items[id=1]", RightSide}, // element only on the left
		{"$.missing", LeftSide},
		{"$.items[5]", LeftSide},
		{"$.n.deeper", LeftSide}, // descend into a scalar
	}
	for _, tc := range tests {
		vp, err := ToViewerPath(tc.path, tc.side, trees, nil)
		if err != nil {
			t.Errorf("%s on %s: unexpected error %v", tc.path, tc.side, err)
			continue
		}
		if vp != "" {
			t.Errorf("%s on %s: got %q, want not found", tc.path, tc.side, vp)
		}
	}
}

func TestToViewerPath_Errors(t *testing.T) {
	trees := &Trees{
		Left:  mustParse(t, `{}`),
		Right: mustParse(t, `{}`),
	}
	for _, p := range []string{"$.a[", "$.items[].x"} {
		_, err := ToViewerPath(p, LeftSide, trees, nil)
		if err == nil {
			t.Errorf("%q: expected error", p)
			continue
		}
		if !errors.Is(err, ir.ErrPathSyntax) {
			t.Errorf("%q: error %v does not wrap ErrPathSyntax", p, err)
		}
	}
}

func TestResolveArrayPattern(t *testing.T) {
	left := mustParse(t, `{
		"items":[{"id":1,"name":"a"},{"id":2,"name":"b"}],
		"tags":["x","y"]
	}`)
	right := mustParse(t, `{
		"items":[{"id":2,"name":"B"},{"id":3,"name":"c"}],
		"tags":["x"]
	}`)
	trees := &Trees{Left: left, Right: right}
	keys := Compare(left, right).IdentityKeys

	tests := []struct {
		pattern string
		want    PatternMatch
	}{
		// identity correlation: id=2 sits at different indices
		{"$.items[].name", PatternMatch{Left: "$.items[1].name", Right: "$.items[0].name"}},
		// no identity key for scalar arrays: element 0 per side
		{"$.tags[]", PatternMatch{Left: "$.tags[0]", Right: "$.tags[0]"}},
		// no pattern segment at all: plain joint walk
		{"$.items[0].name", PatternMatch{Left: "$.items[0].name", Right: "$.items[0].name"}},
		// missing array on both sides
		{"$.nothing[].x", PatternMatch{}},
	}
	for _, tc := range tests {
		got, err := ResolveArrayPattern(tc.pattern, trees, keys)
		if err != nil {
			t.Errorf("%s: %v", tc.pattern, err)
			continue
		}
		if d := cmp.Diff(&tc.want, got); d != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", tc.pattern, d)
		}
	}
}

func TestResolveArrayPattern_OneSided(t *testing.T) {
	left := mustParse(t, `{"items":[{"id":1}]}`)
	right := mustParse(t, `{"items":[]}`)
	trees := &Trees{Left: left, Right: right}

	got, err := ResolveArrayPattern("$.items[]", trees, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := &PatternMatch{Left: "$.items[0]"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestSplitViewerPath(t *testing.T) {
	tests := []struct {
		in   string
		side Side
		rest string
		ok   bool
	}{
		{"left_$.a[0]", LeftSide, "$.a[0]", true},
		{"right_$", RightSide, "$", true},
		{"$.a", 0, "", false},
		{"", 0, "", false},
	}
	for _, tc := range tests {
		side, rest, ok := SplitViewerPath(tc.in)
		if side != tc.side || rest != tc.rest || ok != tc.ok {
			t.Errorf("SplitViewerPath(%q) = (%v, %q, %v), want (%v, %q, %v)",
				tc.in, side, rest, ok, tc.side, tc.rest, tc.ok)
		}
	}
}

func TestParseSide(t *testing.T) {
	for _, v := range []string{"left", "l"} {
		s, err := ParseSide(v)
		if err != nil || s != LeftSide {
			t.Errorf("ParseSide(%q) = (%v, %v)", v, s, err)
		}
	}
	for _, v := range []string{"right", "r"} {
		s, err := ParseSide(v)
		if err != nil || s != RightSide {
			t.Errorf("ParseSide(%q) = (%v, %v)", v, s, err)
		}
	}
	if _, err := ParseSide("middle"); err == nil {
		t.Errorf("ParseSide(\"middle\"): expected error")
	}
}
