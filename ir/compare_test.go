package ir

import "testing"

func TestCompare_TypeRank(t *testing.T) {
	ranked := []*Node{
		Null(),
		FromBool(false),
		FromInt(0),
		FromString(""),
		FromSlice(nil),
		FromMap(nil),
	}
	for i := range ranked {
		for j := range ranked {
			got := Compare(ranked[i], ranked[j])
			switch {
			case i < j && got >= 0:
				t.Errorf("Compare(%s, %s) = %d, want < 0", ranked[i].Type, ranked[j].Type, got)
			case i > j && got <= 0:
				t.Errorf("Compare(%s, %s) = %d, want > 0", ranked[i].Type, ranked[j].Type, got)
			case i == j && got != 0:
				t.Errorf("Compare(%s, %s) = %d, want 0", ranked[i].Type, ranked[j].Type, got)
			}
		}
	}
}

func TestCompare_Numbers(t *testing.T) {
	tests := []struct {
		a, b *Node
		want int
	}{
		{FromInt(1), FromInt(2), -1},
		{FromInt(2), FromInt(2), 0},
		{FromInt(3), FromInt(2), 1},
		{FromInt(1), FromFloat(1.5), -1},
		{FromFloat(2.0), FromInt(2), 0},
		{FromFloat(2.5), FromFloat(2.25), 1},
	}
	for _, tc := range tests {
		got := Compare(tc.a, tc.b)
		if (got < 0) != (tc.want < 0) || (got > 0) != (tc.want > 0) {
			t.Errorf("Compare(%s, %s) = %d, want sign of %d",
				tc.a.NumberString(), tc.b.NumberString(), got, tc.want)
		}
	}
}

func TestEqual_ObjectOrderInsensitive(t *testing.T) {
	a := FromKeyVals([]KeyVal{
		{Key: FromString("x"), Val: FromInt(1)},
		{Key: FromString("y"), Val: FromInt(2)},
	})
	b := FromKeyVals([]KeyVal{
		{Key: FromString("y"), Val: FromInt(2)},
		{Key: FromString("x"), Val: FromInt(1)},
	})
	if !Equal(a, b) {
		t.Errorf("Equal: field order should not matter")
	}
	c := FromKeyVals([]KeyVal{
		{Key: FromString("x"), Val: FromInt(1)},
	})
	if Equal(a, c) {
		t.Errorf("Equal: missing field should matter")
	}
}

func TestEqual_Arrays(t *testing.T) {
	a := FromSlice([]*Node{FromInt(1), FromInt(2)})
	b := FromSlice([]*Node{FromInt(1), FromInt(2)})
	c := FromSlice([]*Node{FromInt(2), FromInt(1)})
	if !Equal(a, b) {
		t.Errorf("Equal: identical arrays")
	}
	if Equal(a, c) {
		t.Errorf("Equal: array order should matter")
	}
}

func TestNumberString(t *testing.T) {
	tests := []struct {
		n    *Node
		want string
	}{
		{FromInt(7), "7"},
		{FromInt(-3), "-3"},
		{FromFloat(1.5), "1.5"},
		{FromFloat(2), "2"},
	}
	for _, tc := range tests {
		if got := tc.n.NumberString(); got != tc.want {
			t.Errorf("NumberString() = %q, want %q", got, tc.want)
		}
	}
}
