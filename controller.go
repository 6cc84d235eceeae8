package pidctrl

// Controller composes a proportional, an integral and a derivative term
// into one clamped output.
//
// Gains, limits and Setpoint may be changed directly between steps; each
// Step observes whatever is configured at the time of the call.
//
// A Controller is a plain value with no internal locking. Drive it from a
// single control loop or guard it externally.
type Controller[T Float] struct {
	KP     PTerm[T]
	KI     ITerm[T]
	KD     DTerm[T]
	Limits Limits[T]

	Setpoint T
}

// New returns a controller with zero gains, zero setpoint and no limits.
func New[T Float]() Controller[T] {
	return Controller[T]{
		KP:     NewPTerm[T](),
		KI:     NewITerm[T](),
		KD:     NewDTerm[T](),
		Limits: NewLimits[T](),
	}
}

// NewWithPID returns an unclamped controller with the given gains.
func NewWithPID[T Float](p, i, d T) Controller[T] {
	c := New[T]()
	c.KP.scale = p
	c.KI.scale = i
	c.KD.scale = d
	return c
}

// Init sets the setpoint and seeds the derivative term with the last known
// measurement, so the first Step does not see a derivative kick.
// Calling it is optional.
func (c *Controller[T]) Init(setpoint, prevMeasurement T) *Controller[T] {
	c.Setpoint = setpoint
	c.KD.PrevMeasurement = prevMeasurement
	return c
}

// Step runs one control cycle.
//
// Terms are evaluated P, I, D. The sum of the clamped term outputs is
// clamped again by the controller's own Limits.
func (c *Controller[T]) Step(in Input[T]) Output[T] {
	offset := c.Setpoint - in.measurement
	p := c.KP.Step(offset)
	i := c.KI.Step(offset, in.tdelta)
	d := c.KD.Step(in.measurement, in.tdelta)
	return NewOutput(p, i, d, c.Limits.Clamp(p+i+d))
}
