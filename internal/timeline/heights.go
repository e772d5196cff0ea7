package timeline

import "math"

// Heights holds the tallest detail-panel height reported per record.
type Heights map[string]int

// Aggregate folds one height report into current. The height is rounded up
// to whole pixels and kept only if it exceeds the recorded value; otherwise
// current is returned as is. current is never modified.
func Aggregate(current Heights, id string, height float64) Heights {
	if math.IsNaN(height) || math.IsInf(height, 0) {
		return current
	}
	next := int(math.Ceil(height))
	if current[id] >= next {
		return current
	}
	updated := make(Heights, len(current)+1)
	for k, v := range current {
		updated[k] = v
	}
	updated[id] = next
	return updated
}

// MaxHeight returns the tallest reported height, 0 when none.
func MaxHeight(h Heights) int {
	tallest := 0
	for _, v := range h {
		tallest = max(tallest, v)
	}
	return tallest
}

// BottomPadding is the space reserved below the timeline so the last card's
// expanded panel is not clipped.
func BottomPadding(h Heights, config Config) int {
	tallest := MaxHeight(h)
	if tallest == 0 {
		return 0
	}
	return tallest + config.DetailMargin
}
