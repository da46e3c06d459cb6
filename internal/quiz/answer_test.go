package quiz

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestCoerceIndex(t *testing.T) {
	cases := []struct {
		in   any
		want int
		ok   bool
	}{
		{3, 3, true},
		{int64(2), 2, true},
		{float64(1), 1, true},
		{json.Number("4"), 4, true},
		{"0", 0, true},
		{" 2 ", 2, true},
		{"two", 0, false},
		{nil, 0, false},
		{true, 0, false},
	}
	for _, tc := range cases {
		got, ok := CoerceIndex(tc.in)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("CoerceIndex(%v) = (%d, %v), want (%d, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestNormalizeIndices(t *testing.T) {
	got := NormalizeIndices([]any{"2", float64(0), "garbage", 2, float64(1)})
	if !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Errorf("NormalizeIndices = %v, want [0 1 2]", got)
	}
}

func TestSameIndexSet(t *testing.T) {
	cases := []struct {
		a, b []int
		want bool
	}{
		{[]int{0, 1}, []int{1, 0}, true},
		{[]int{0, 0, 1}, []int{0, 1}, true},
		{[]int{0}, []int{1}, false},
		{[]int{0, 1}, []int{0}, false},
		{nil, nil, true},
		{nil, []int{0}, false},
	}
	for _, tc := range cases {
		if got := SameIndexSet(tc.a, tc.b); got != tc.want {
			t.Errorf("SameIndexSet(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
