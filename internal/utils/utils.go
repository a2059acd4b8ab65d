package utils

import (
	"math"
	"strconv"
)

// F64ToS converts float to string using the maximum accuracy
func F64ToS(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// MaxElemF computes the max value of vs
// MaxElemF returns 0 if len(vs) = 0
func MaxElemF(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	vm := vs[0]
	for _, v := range vs {
		if v > vm {
			vm = v
		}
	}
	return vm
}

// RootMeanSquare computes sqrt(sum(v²)/n).
// RootMeanSquare returns 0 if len(vs) = 0
func RootMeanSquare(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	var s float64
	for _, v := range vs {
		s += v * v
	}
	return math.Sqrt(s / float64(len(vs)))
}

// MinI computes the min value between two integers
func MinI(a, b int) int {
	if a < b {
		return a
	}
	return b
}
