package common

import (
	"cmp"
	"math"
)

func IsTFloat64[T float64 | float32](v T) bool {
	var tmp any = v
	_, ok := tmp.(float64)
	return ok
}

func GetTFloatMax[T float64 | float32](v T) T {
	if IsTFloat64(v) {
		t1 := math.MaxFloat64
		return T(t1)
	}
	return T(math.MaxFloat32)
}

// Clamp returns value limited to [minInclusive, maxInclusive].
func Clamp[T cmp.Ordered](value, minInclusive, maxInclusive T) T {
	if value < minInclusive {
		return minInclusive
	}
	if value > maxInclusive {
		return maxInclusive
	}
	return value
}

func IsFinite[T float64 | float32](v T) bool {
	f := float64(v)
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
