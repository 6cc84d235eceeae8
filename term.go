package pidctrl

// PTerm is the proportional term. It holds no state between steps.
type PTerm[T Float] struct {
	Limits Limits[T]
	scale  T
}

// NewPTerm returns an unclamped proportional term with zero scale.
func NewPTerm[T Float]() PTerm[T] {
	return PTerm[T]{Limits: NewLimits[T]()}
}

// Scale returns the proportional gain.
func (p PTerm[T]) Scale() T { return p.scale }

// SetScale sets the proportional gain.
func (p *PTerm[T]) SetScale(v T) *PTerm[T] {
	p.scale = v
	return p
}

// Step returns scale*offset clamped to the term's limits.
func (p PTerm[T]) Step(offset T) T {
	return p.Limits.Clamp(p.scale * offset)
}

// ITerm is the integral term.
//
// Accumulate holds the clamped running sum, so a saturated integral
// cannot wind up past its limits.
type ITerm[T Float] struct {
	Limits     Limits[T]
	scale      T
	Accumulate T
}

// NewITerm returns an unclamped integral term with zero scale and an empty
// accumulator.
func NewITerm[T Float]() ITerm[T] {
	return ITerm[T]{Limits: NewLimits[T]()}
}

// Scale returns the integral gain.
func (i ITerm[T]) Scale() T { return i.scale }

// SetScale sets the integral gain. The accumulator is not touched.
func (i *ITerm[T]) SetScale(v T) *ITerm[T] {
	i.scale = v
	return i
}

// Step adds scale*offset*tdelta to the accumulator, clamps the sum, stores
// it and returns it.
func (i *ITerm[T]) Step(offset, tdelta T) T {
	acc := i.Limits.Clamp(i.scale*offset*tdelta + i.Accumulate)
	i.Accumulate = acc
	return acc
}

// DTerm is the derivative term. It differentiates the measurement rather
// than the offset, so setpoint changes do not produce a spike.
type DTerm[T Float] struct {
	Limits          Limits[T]
	scale           T
	PrevMeasurement T
}

// NewDTerm returns an unclamped derivative term with zero scale and a zero
// previous measurement.
func NewDTerm[T Float]() DTerm[T] {
	return DTerm[T]{Limits: NewLimits[T]()}
}

// Scale returns the derivative gain.
func (d DTerm[T]) Scale() T { return d.scale }

// SetScale sets the derivative gain.
func (d *DTerm[T]) SetScale(v T) *DTerm[T] {
	d.scale = v
	return d
}

// Step returns scale*(prev-measurement)/tdelta clamped to the term's limits
// and remembers measurement for the next call. tdelta must be positive;
// NewInput guarantees that.
func (d *DTerm[T]) Step(measurement, tdelta T) T {
	out := d.Limits.Clamp(d.scale * (d.PrevMeasurement - measurement) / tdelta)
	d.PrevMeasurement = measurement
	return out
}
