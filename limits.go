package pidctrl

import "fmt"

// Limits is a closed clamp range [lower, upper].
//
// The zero value is the degenerate range [0, 0]; use NewLimits for the
// unclamped range. Every constructor in this package does.
type Limits[T Float] struct {
	lower T
	upper T
}

// NewLimits returns the widest range, (-Inf, +Inf).
func NewLimits[T Float]() Limits[T] {
	return Limits[T]{lower: Inf[T](-1), upper: Inf[T](1)}
}

// Lower returns the lower bound.
func (l Limits[T]) Lower() T { return l.lower }

// Upper returns the upper bound.
func (l Limits[T]) Upper() T { return l.upper }

// Clamp returns v limited to [lower, upper].
//
// NaN is not handled; callers must not pass it.
func (l Limits[T]) Clamp(v T) T {
	return min(l.upper, max(l.lower, v))
}

// Contains reports whether v lies inside [lower, upper].
func (l Limits[T]) Contains(v T) bool {
	return l.lower <= v && v <= l.upper
}

// SetLimit sets a symmetric range [-|v|, |v|] around zero.
func (l *Limits[T]) SetLimit(v T) *Limits[T] {
	if v < 0 {
		v = -v
	}
	l.lower = -v
	l.upper = v
	return l
}

// TrySetUpper sets the upper bound if it is not below the current lower
// bound.
func (l *Limits[T]) TrySetUpper(v T) error {
	if !(l.lower <= v) {
		return fmt.Errorf("upper %v below lower %v: %w", v, l.lower, ErrLimitOutOfBounds)
	}
	l.upper = v
	return nil
}

// TrySetLower sets the lower bound if it is not above the current upper
// bound.
func (l *Limits[T]) TrySetLower(v T) error {
	if !(v <= l.upper) {
		return fmt.Errorf("lower %v above upper %v: %w", v, l.upper, ErrLimitOutOfBounds)
	}
	l.lower = v
	return nil
}
