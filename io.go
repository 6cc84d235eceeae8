package pidctrl

import "math"

// Input is one control cycle's measurement and elapsed time.
//
// Build it with NewInput. The zero value has a zero tdelta and makes the
// derivative term divide by zero.
type Input[T Float] struct {
	measurement T
	tdelta      T
}

// NewInput builds an Input. tdelta is clamped to [Epsilon, +Inf]: zero and
// negative deltas become Epsilon, +Inf is kept and NaN is taken as +Inf.
func NewInput[T Float](measurement, tdelta T) Input[T] {
	if math.IsNaN(float64(tdelta)) {
		tdelta = Inf[T](1)
	}
	if tdelta < Epsilon[T]() {
		tdelta = Epsilon[T]()
	}
	return Input[T]{measurement: measurement, tdelta: tdelta}
}

// Measurement returns the process value.
func (in Input[T]) Measurement() T { return in.measurement }

// TDelta returns the elapsed time, never below Epsilon for an Input built by
// NewInput.
func (in Input[T]) TDelta() T { return in.tdelta }

// Output is the result of one Controller.Step: each term's clamped
// contribution and the clamped total.
type Output[T Float] struct {
	p   T
	i   T
	d   T
	out T
}

// NewOutput builds an Output.
func NewOutput[T Float](p, i, d, out T) Output[T] {
	return Output[T]{p: p, i: i, d: d, out: out}
}

// P returns the clamped proportional contribution.
func (o Output[T]) P() T { return o.p }

// I returns the clamped integral contribution.
func (o Output[T]) I() T { return o.i }

// D returns the clamped derivative contribution.
func (o Output[T]) D() T { return o.d }

// Out returns the sum of the terms clamped by the controller limits.
func (o Output[T]) Out() T { return o.out }
