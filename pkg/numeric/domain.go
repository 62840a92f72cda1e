package numeric

import "fmt"

// Verdict is the outcome of evaluating candidate text against a domain.
type Verdict int

const (
	// Reject leaves both the text and the committed value unchanged.
	Reject Verdict = iota
	// Defer accepts the text edit without committing a value.
	Defer
	// Commit accepts the text edit and commits Edit.Value.
	Commit
)

// String returns a human-readable representation of the verdict.
func (v Verdict) String() string {
	switch v {
	case Reject:
		return "reject"
	case Defer:
		return "defer"
	case Commit:
		return "commit"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}

// Edit is the result of Domain.Evaluate.
type Edit[T Number] struct {
	Verdict Verdict
	// Value is the parsed candidate; meaningful only for Commit.
	Value T
}

// Domain is a closed interval with a step size.
type Domain[T Number] struct {
	Min  T
	Max  T
	Step T
}

// NewDomain returns the domain of r stepped by step. A negative step is
// replaced by its magnitude.
func NewDomain[T Number](r Range[T], step T) Domain[T] {
	if step < 0 {
		step = -step
	}
	return Domain[T]{Min: r.Min, Max: r.Max, Step: step}
}

// Inert reports whether the domain holds a single value.
func (d Domain[T]) Inert() bool {
	return d.Min == d.Max
}

// Increase steps v up, clamping to Max. It reports whether the value changed.
func (d Domain[T]) Increase(v T) (T, bool) {
	if d.Inert() {
		return v, false
	}
	if v >= d.Max {
		return d.Max, v != d.Max
	}
	// room is negative only when the subtraction wrapped, which means it
	// exceeds any step.
	if room := d.Max - v; room >= 0 && room < d.Step {
		return d.Max, true
	}
	next := v + d.Step
	return next, next != v
}

// Decrease steps v down, clamping to Min. It reports whether the value changed.
func (d Domain[T]) Decrease(v T) (T, bool) {
	if d.Inert() {
		return v, false
	}
	if v <= d.Min {
		return d.Min, v != d.Min
	}
	if room := v - d.Min; room >= 0 && room < d.Step {
		return d.Min, true
	}
	next := v - d.Step
	return next, next != v
}

// DecreaseDisabled reports whether the decrease control should be disabled.
func (d Domain[T]) DecreaseDisabled(v T) bool {
	return v <= d.Min || d.Inert()
}

// IncreaseDisabled reports whether the increase control should be disabled.
func (d Domain[T]) IncreaseDisabled(v T) bool {
	return v >= d.Max || d.Inert()
}

// Contains reports whether v lies within [Min, Max].
func (d Domain[T]) Contains(v T) bool {
	return v >= d.Min && v <= d.Max
}

// Evaluate decides what to do with candidate text while current is committed.
//
// Text that parses to an in-range value different from current commits.
// Text that parses but is unchanged or out of range defers, as does a sign
// or decimal point that may start a valid number. Anything else is rejected.
func (d Domain[T]) Evaluate(candidate string, current T) Edit[T] {
	v, err := Parse[T](candidate)
	if err != nil {
		if IsPrefix[T](candidate) {
			return Edit[T]{Verdict: Defer}
		}
		return Edit[T]{Verdict: Reject}
	}
	if d.Contains(v) && v != current {
		return Edit[T]{Verdict: Commit, Value: v}
	}
	return Edit[T]{Verdict: Defer}
}

// IsPrefix reports whether s does not parse yet but can become a number of
// T by appending digits.
func IsPrefix[T Number](s string) bool {
	switch s {
	case "-":
		return IsSigned[T]()
	case ".", "-.":
		return IsFloat[T]()
	}
	return false
}
