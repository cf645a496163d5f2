package domain

import "math"

// Statistics is the three-count summary of document states shown on the
// dashboard. It is built fresh on every render and never stored.
type Statistics struct {
	Valid    int
	Expiring int
	Expired  int
}

// Total returns the number of documents across all three states. Counts are
// non-negative, so the sum saturates at math.MaxInt instead of wrapping.
func (s Statistics) Total() int {
	total := 0
	for _, n := range []int{s.Valid, s.Expiring, s.Expired} {
		if n > math.MaxInt-total {
			return math.MaxInt
		}
		total += n
	}
	return total
}
