package jsonrecon

import (
	"fmt"
	"strings"

	"github.com/jsonrecon/jsonrecon/ir"
	"github.com/jsonrecon/jsonrecon/libdiff"
)

// Compare computes the structural difference between two value trees.
// The returned result is owned by the caller; neither input is mutated,
// and identical inputs always produce identical results.
func Compare(left, right *ir.Node) *libdiff.Result {
	return libdiff.Compare(left, right)
}

// DetectIdentityKeys reports which arrays of a single document would be
// identity-matched, running discovery with each array compared against
// itself.
func DetectIdentityKeys(doc *ir.Node) []libdiff.IdentityKey {
	return libdiff.DetectKeys(doc)
}

// Trees holds the two compared documents for path resolution.
type Trees struct {
	Left  *ir.Node
	Right *ir.Node
}

func (t *Trees) side(s Side) *ir.Node {
	if s == LeftSide {
		return t.Left
	}
	return t.Right
}

// Side discriminates the two compared trees in viewer paths.  The engine
// only prepends and strips the discriminator; interpreting it is the
// rendering layer's business.
type Side int

const (
	LeftSide Side = iota
	RightSide
)

func (s Side) String() string {
	if s == LeftSide {
		return "left"
	}
	return "right"
}

func (s Side) prefix() string {
	return s.String() + "_"
}

func ParseSide(v string) (Side, error) {
	switch v {
	case "left", "l":
		return LeftSide, nil
	case "right", "r":
		return RightSide, nil
	}
	return 0, fmt.Errorf("bad side %q", v)
}

// SplitViewerPath splits a viewer path into its side and numeric path.
func SplitViewerPath(vp string) (Side, string, bool) {
	for _, s := range []Side{LeftSide, RightSide} {
		if rest, ok := strings.CutPrefix(vp, s.prefix()); ok {
			return s, rest, true
		}
	}
	return 0, "", false
}
