package libdiff

import (
	"fmt"

	"github.com/jsonrecon/jsonrecon/ir"
)

type Kind int

const (
	Added Kind = iota
	Removed
	Changed
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		Added:   "added",
		Removed: "removed",
		Changed: "changed",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"added":   Added,
		"removed": Removed,
		"changed": Changed,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

// Entry is one reported difference at leaf or boundary granularity.
//
// DisplayPath embeds identity segments ("[id=7]") for array boundaries that
// were identity-matched; NumericPath is purely positional.  NumericPath
// addresses the left tree for Removed and Changed entries and the right
// tree for Added entries, since the two trees may place the same logical
// element at different indices.
type Entry struct {
	DisplayPath string
	NumericPath string
	Kind        Kind
	Left        *ir.Node
	Right       *ir.Node

	// IdentityKey is the key in force at the nearest enclosing
	// identity-matched array boundary, or "" outside of one.
	IdentityKey string
}

// IdentityKey records a successful key discovery at one array boundary.
type IdentityKey struct {
	// ArrayPath is the display path of the array.
	ArrayPath string
	// Key is the discovered key; composites are encoded "k1+k2".
	Key       string
	Composite bool
	LeftLen   int
	RightLen  int
}

// Result is owned by the caller; the engine keeps no state across calls.
type Result struct {
	Diffs        []Entry
	IdentityKeys []IdentityKey
}
