package utils

import (
	"math"
)

// Find returns the indices of v whose value satisfies op against target
func Find(v []float64, op EvalOp, target float64, abs bool) (I []int) {
	for i, val := range v {
		if abs {
			val = math.Abs(val)
		}
		if op.Eval(val, target) {
			I = append(I, i)
		}
	}
	return
}

func Count(v []float64, op EvalOp, target float64, abs bool) (count int) {
	for _, val := range v {
		if abs {
			val = math.Abs(val)
		}
		if op.Eval(val, target) {
			count++
		}
	}
	return
}

// Clamp limits every entry of v to [min, max] in place
func Clamp(v []float64, min, max float64) {
	for i, val := range v {
		switch {
		case val < min:
			v[i] = min
		case val > max:
			v[i] = max
		}
	}
}

func MaxAbs(v []float64) (m float64) {
	for _, val := range v {
		if a := math.Abs(val); a > m {
			m = a
		}
	}
	return
}
