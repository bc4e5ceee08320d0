package peaks

import (
	"log"

	"github.com/vertgenlab/gonomics/numbers"
)

// RelMin returns the indices of x that are strictly less than every sample within order
// positions on either side. Neighbors past the ends of x are clipped to the end sample, so
// the first and last sample are never minima. Output is in ascending order.
func RelMin(x []float64, order int) []int {
	if order < 1 {
		log.Panicf("ERROR: order must be at least 1, got %d", order)
	}
	var ans []int
	var i, j, lo, hi int
	var isMin bool
	last := len(x) - 1
	for i = 1; i < last; i++ {
		lo = numbers.Max(0, i-order)
		hi = numbers.Min(last, i+order)
		isMin = true
		for j = lo; j <= hi && isMin; j++ {
			if j != i && x[i] >= x[j] {
				isMin = false
			}
		}
		if isMin {
			ans = append(ans, i)
		}
	}
	return ans
}
