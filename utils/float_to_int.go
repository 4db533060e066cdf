// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 converts a normalized sample in [-1, 1] to 16-bit PCM,
// clamping out of range input and rounding to the nearest integer.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 on both sides keeps the scale symmetric around zero.
	return int16(math.Round(float64(x) * math.MaxInt16))
}

// Float32sToInt16s converts as many samples as fit into dst and returns the
// number converted.
func Float32sToInt16s(dst []int16, src []float32) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = Float32ToInt16(src[i])
	}

	return n
}
