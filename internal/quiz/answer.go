package quiz

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// CoerceIndex converts a JSON-decoded value to a zero-based option index.
// Models return indices as numbers or as numeric strings depending on the
// chunk, so both forms must compare equal downstream.
func CoerceIndex(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int64:
		return int(x), true
	case float64:
		return int(x), true
	case json.Number:
		n, err := x.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// NormalizeIndices coerces a raw index list to a sorted, de-duplicated
// []int. Values that cannot be coerced are dropped.
func NormalizeIndices(raw []any) []int {
	seen := make(map[int]bool, len(raw))
	var out []int
	for _, v := range raw {
		i, ok := CoerceIndex(v)
		if !ok || seen[i] {
			continue
		}
		seen[i] = true
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// SameIndexSet reports whether a and b contain the same indices,
// ignoring order and duplicates.
func SameIndexSet(a, b []int) bool {
	as := make(map[int]bool, len(a))
	for _, i := range a {
		as[i] = true
	}
	bs := make(map[int]bool, len(b))
	for _, i := range b {
		bs[i] = true
	}
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if !bs[i] {
			return false
		}
	}
	return true
}
