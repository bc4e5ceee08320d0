// Package peaks finds local maxima and minima in evenly spaced one-dimensional data such as
// the count column of a coverage histogram.
package peaks

import (
	"golang.org/x/exp/slices"
)

// Find returns the indices of local maxima in x whose width at half prominence is at least minWidth.
// A flat peak is reported at its middle sample, rounding down. Output is in ascending order.
func Find(x []float64, minWidth float64) []int {
	peaks := localMaxima(x)
	prominences, leftBases, rightBases := Prominences(x, peaks)
	widths := Widths(x, peaks, 0.5, prominences, leftBases, rightBases)
	ans := peaks[:0]
	for i := range peaks {
		if widths[i] >= minWidth {
			ans = append(ans, peaks[i])
		}
	}
	return slices.Clip(ans)
}

// localMaxima finds samples (or runs of equal samples) strictly greater than both neighbors.
// The first and last sample are never maxima.
func localMaxima(x []float64) []int {
	var ans []int
	var i, ahead int
	last := len(x) - 1
	for i = 1; i < last; i++ {
		if x[i-1] >= x[i] {
			continue
		}
		ahead = i + 1
		for ahead < last && x[ahead] == x[i] {
			ahead++
		}
		if x[ahead] < x[i] {
			ans = append(ans, (i+ahead-1)/2)
			i = ahead
		}
	}
	return ans
}

// Prominences calculates how far each peak stands out from the higher of its two bases.
// A base is the lowest point reached walking away from the peak before either hitting a
// higher sample or the edge of the data.
func Prominences(x []float64, peaks []int) (prominences []float64, leftBases, rightBases []int) {
	prominences = make([]float64, len(peaks))
	leftBases = make([]int, len(peaks))
	rightBases = make([]int, len(peaks))
	var i, peak int
	var leftMin, rightMin float64
	for p := range peaks {
		peak = peaks[p]

		leftBases[p] = peak
		leftMin = x[peak]
		for i = peak; i >= 0 && x[i] <= x[peak]; i-- {
			if x[i] < leftMin {
				leftMin = x[i]
				leftBases[p] = i
			}
		}

		rightBases[p] = peak
		rightMin = x[peak]
		for i = peak; i < len(x) && x[i] <= x[peak]; i++ {
			if x[i] < rightMin {
				rightMin = x[i]
				rightBases[p] = i
			}
		}

		if leftMin > rightMin {
			prominences[p] = x[peak] - leftMin
		} else {
			prominences[p] = x[peak] - rightMin
		}
	}
	return
}

// Widths calculates the width of each peak at relHeight of its prominence below the peak.
// Intersections with the data are linearly interpolated and bounded by the peak bases.
func Widths(x []float64, peaks []int, relHeight float64, prominences []float64, leftBases, rightBases []int) []float64 {
	ans := make([]float64, len(peaks))
	var i, peak int
	var height, leftIp, rightIp float64
	for p := range peaks {
		peak = peaks[p]
		height = x[peak] - prominences[p]*relHeight

		i = peak
		for leftBases[p] < i && height < x[i] {
			i--
		}
		leftIp = float64(i)
		if x[i] < height {
			leftIp += (height - x[i]) / (x[i+1] - x[i])
		}

		i = peak
		for i < rightBases[p] && height < x[i] {
			i++
		}
		rightIp = float64(i)
		if x[i] < height {
			rightIp -= (height - x[i]) / (x[i-1] - x[i])
		}

		ans[p] = rightIp - leftIp
	}
	return ans
}
