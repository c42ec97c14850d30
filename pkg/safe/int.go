// Package safe provides checked integer conversions.
package safe

import (
	"fmt"
	"math"
)

// Integer is any built-in integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Uint32 converts v to uint32, rejecting negatives and values above MaxUint32.
func Uint32[T Integer](v T) (uint32, error) {
	if v < 0 || uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(v), nil
}

// Int64 converts v to int64, rejecting unsigned values above MaxInt64.
func Int64[T Integer](v T) (int64, error) {
	if v > 0 && uint64(v) > math.MaxInt64 {
		return 0, fmt.Errorf("value %d out of int64 range", v)
	}
	return int64(v), nil
}
