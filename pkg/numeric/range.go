package numeric

// Range is an inclusive interval [Min, Max].
type Range[T Number] struct {
	Min T
	Max T
}

// Inclusive returns [lo, hi]. Reversed bounds are swapped.
func Inclusive[T Number](lo, hi T) Range[T] {
	if hi < lo {
		lo, hi = hi, lo
	}
	return Range[T]{Min: lo, Max: hi}
}

// HalfOpen returns [lo, hi), stored as [lo, hi-1].
func HalfOpen[T Number](lo, hi T) Range[T] {
	if hi < lo {
		lo, hi = hi, lo
	}
	if hi > lo {
		hi = max(hi-One[T](), lo)
	}
	return Range[T]{Min: lo, Max: hi}
}

// AtLeast returns [lo, MaxValue].
func AtLeast[T Number](lo T) Range[T] {
	return Range[T]{Min: lo, Max: MaxValue[T]()}
}

// AtMost returns [MinValue, hi].
func AtMost[T Number](hi T) Range[T] {
	return Range[T]{Min: MinValue[T](), Max: hi}
}

// Full returns [MinValue, MaxValue].
func Full[T Number]() Range[T] {
	return Range[T]{Min: MinValue[T](), Max: MaxValue[T]()}
}

// Contains reports whether v lies within the range.
func (r Range[T]) Contains(v T) bool {
	return v >= r.Min && v <= r.Max
}

// Clamp returns v limited to the range.
func (r Range[T]) Clamp(v T) T {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}
