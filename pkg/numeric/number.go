package numeric

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Number is the set of types a numeric input can edit.
type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// ErrNotFinite is returned by Parse for NaN and infinite values.
var ErrNotFinite = errors.New("numeric: value is not finite")

// Zero returns the additive identity of T.
func Zero[T Number]() T {
	return 0
}

// One returns the default step of T.
func One[T Number]() T {
	return 1
}

// IsFloat reports whether T is a floating point type.
func IsFloat[T Number]() bool {
	switch any(Zero[T]()).(type) {
	case float32, float64:
		return true
	}
	return false
}

// IsSigned reports whether T admits negative values.
func IsSigned[T Number]() bool {
	return MinValue[T]() < 0
}

// MinValue returns the smallest finite value of T.
func MinValue[T Number]() T {
	var v any
	switch any(Zero[T]()).(type) {
	case int:
		v = int(math.MinInt)
	case int8:
		v = int8(math.MinInt8)
	case int16:
		v = int16(math.MinInt16)
	case int32:
		v = int32(math.MinInt32)
	case int64:
		v = int64(math.MinInt64)
	case float32:
		v = float32(-math.MaxFloat32)
	case float64:
		v = -math.MaxFloat64
	default:
		return 0
	}
	return v.(T)
}

// MaxValue returns the largest finite value of T.
func MaxValue[T Number]() T {
	var v any
	switch any(Zero[T]()).(type) {
	case int:
		v = int(math.MaxInt)
	case int8:
		v = int8(math.MaxInt8)
	case int16:
		v = int16(math.MaxInt16)
	case int32:
		v = int32(math.MaxInt32)
	case int64:
		v = int64(math.MaxInt64)
	case uint:
		v = uint(math.MaxUint)
	case uint8:
		v = uint8(math.MaxUint8)
	case uint16:
		v = uint16(math.MaxUint16)
	case uint32:
		v = uint32(math.MaxUint32)
	case uint64:
		v = uint64(math.MaxUint64)
	case float32:
		v = float32(math.MaxFloat32)
	case float64:
		v = math.MaxFloat64
	}
	return v.(T)
}

// Parse parses s as a base-10 value of T.
func Parse[T Number](s string) (T, error) {
	switch any(Zero[T]()).(type) {
	case int, int8, int16, int32, int64:
		n, err := strconv.ParseInt(s, 10, bitSize[T]())
		if err != nil {
			return 0, err
		}
		return T(n), nil
	case uint, uint8, uint16, uint32, uint64:
		n, err := strconv.ParseUint(s, 10, bitSize[T]())
		if err != nil {
			return 0, err
		}
		return T(n), nil
	default:
		f, err := strconv.ParseFloat(s, bitSize[T]())
		if err != nil {
			return 0, err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("parse %q: %w", s, ErrNotFinite)
		}
		return T(f), nil
	}
}

// Format renders v in base 10. Floats use the shortest representation that
// round-trips, without an exponent.
func Format[T Number](v T) string {
	switch n := any(v).(type) {
	case int:
		return strconv.FormatInt(int64(n), 10)
	case int8:
		return strconv.FormatInt(int64(n), 10)
	case int16:
		return strconv.FormatInt(int64(n), 10)
	case int32:
		return strconv.FormatInt(int64(n), 10)
	case int64:
		return strconv.FormatInt(n, 10)
	case uint:
		return strconv.FormatUint(uint64(n), 10)
	case uint8:
		return strconv.FormatUint(uint64(n), 10)
	case uint16:
		return strconv.FormatUint(uint64(n), 10)
	case uint32:
		return strconv.FormatUint(uint64(n), 10)
	case uint64:
		return strconv.FormatUint(n, 10)
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return ""
}

func bitSize[T Number]() int {
	switch any(Zero[T]()).(type) {
	case int8, uint8:
		return 8
	case int16, uint16:
		return 16
	case int32, uint32, float32:
		return 32
	case int, uint:
		return strconv.IntSize
	default:
		return 64
	}
}
