package encode

import (
	"fmt"
	"io"

	"github.com/jsonrecon/jsonrecon/libdiff"
)

// EncodeDiff renders a diff result as a line-oriented listing.  Each entry
// prints its display path with a kind marker, the numeric path when it
// differs, and the value on the side(s) that carry one:
//
//	~ $.items[id=7].name ($.items[2].name)
//	  - "a"
//	  + "b"
//	- $.items[id=3] ($.items[0])
//	  - {"id":3}
//
// With EncodeKeys, the identity key records follow the listing.
func EncodeDiff(res *libdiff.Result, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: "  "}
	for _, opt := range opts {
		opt(es)
	}
	for i := range res.Diffs {
		if err := writeEntry(es, w, &res.Diffs[i]); err != nil {
			return err
		}
	}
	if !es.keys || len(res.IdentityKeys) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "identity keys:\n"); err != nil {
		return err
	}
	return EncodeIdentityKeys(res.IdentityKeys, w, opts...)
}

// EncodeIdentityKeys renders discovered identity key records, one per line.
func EncodeIdentityKeys(keys []libdiff.IdentityKey, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: "  "}
	for _, opt := range opts {
		opt(es)
	}
	for _, k := range keys {
		line := fmt.Sprintf("  %s @ %s (%dx%d)\n",
			es.color(KeyColor, k.Key), es.color(PathColor, k.ArrayPath),
			k.LeftLen, k.RightLen)
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeEntry(es *EncState, w io.Writer, e *libdiff.Entry) error {
	var marker string
	var attr ColorAttr
	switch e.Kind {
	case libdiff.Added:
		marker, attr = "+", AddedColor
	case libdiff.Removed:
		marker, attr = "-", RemovedColor
	case libdiff.Changed:
		marker, attr = "~", ChangedColor
	}
	head := es.color(attr, marker) + " " + es.color(PathColor, e.DisplayPath)
	if e.NumericPath != e.DisplayPath {
		head += " " + es.color(NumPathColor, "("+e.NumericPath+")")
	}
	if _, err := io.WriteString(w, head+"\n"); err != nil {
		return err
	}
	if e.Left != nil {
		line := "  " + es.color(RemovedColor, "- "+MustString(e.Left, EncodeWire(true)))
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	if e.Right != nil {
		line := "  " + es.color(AddedColor, "+ "+MustString(e.Right, EncodeWire(true)))
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}
