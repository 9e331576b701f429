package utils

import "math"

// floatEpsilon absorbs binary rounding so that e.g. 10 * 1.15 floors to 11, not 10
const floatEpsilon = 1e-9

// FloorScale multiplies value by factor and rounds down
func FloorScale(value int64, factor float64) int64 {
	if value <= 0 || factor <= 0 {
		return 0
	}
	return int64(math.Floor(float64(value)*factor + floatEpsilon))
}

// CeilHalf returns n/2 rounded up
func CeilHalf(n int) int {
	return (n + 1) / 2
}

// MaxInt returns the larger of a and b
func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
