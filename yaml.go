package pidctrl

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

// State is persisted as YAML; JSON cannot carry the default ±Inf bounds.
// Keys missing from a document keep their constructor defaults.

type limitsYAML[T Float] struct {
	Lower T `yaml:"lower"`
	Upper T `yaml:"upper"`
}

// MarshalYAML implements yaml.Marshaler.
func (l Limits[T]) MarshalYAML() (interface{}, error) {
	return limitsYAML[T]{Lower: l.lower, Upper: l.upper}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. A document with
// lower > upper is rejected with ErrLimitOutOfBounds.
func (l *Limits[T]) UnmarshalYAML(unmarshal func(interface{}) error) error {
	def := NewLimits[T]()
	m := limitsYAML[T]{Lower: def.lower, Upper: def.upper}
	if err := unmarshal(&m); err != nil {
		return err
	}
	if !(m.Lower <= m.Upper) {
		return fmt.Errorf("decoding limits [%v, %v]: %w", m.Lower, m.Upper, ErrLimitOutOfBounds)
	}
	l.lower, l.upper = m.Lower, m.Upper
	return nil
}

type ptermYAML[T Float] struct {
	Scale  T         `yaml:"scale"`
	Limits Limits[T] `yaml:"limits"`
}

// MarshalYAML implements yaml.Marshaler.
func (p PTerm[T]) MarshalYAML() (interface{}, error) {
	return ptermYAML[T]{Scale: p.scale, Limits: p.Limits}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *PTerm[T]) UnmarshalYAML(unmarshal func(interface{}) error) error {
	m := ptermYAML[T]{Limits: NewLimits[T]()}
	if err := unmarshal(&m); err != nil {
		return err
	}
	p.scale, p.Limits = m.Scale, m.Limits
	return nil
}

type itermYAML[T Float] struct {
	Scale      T         `yaml:"scale"`
	Limits     Limits[T] `yaml:"limits"`
	Accumulate T         `yaml:"accumulate"`
}

// MarshalYAML implements yaml.Marshaler.
func (i ITerm[T]) MarshalYAML() (interface{}, error) {
	return itermYAML[T]{Scale: i.scale, Limits: i.Limits, Accumulate: i.Accumulate}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (i *ITerm[T]) UnmarshalYAML(unmarshal func(interface{}) error) error {
	m := itermYAML[T]{Limits: NewLimits[T]()}
	if err := unmarshal(&m); err != nil {
		return err
	}
	i.scale, i.Limits, i.Accumulate = m.Scale, m.Limits, m.Accumulate
	return nil
}

type dtermYAML[T Float] struct {
	Scale           T         `yaml:"scale"`
	Limits          Limits[T] `yaml:"limits"`
	PrevMeasurement T         `yaml:"prev_measurement"`
}

// MarshalYAML implements yaml.Marshaler.
func (d DTerm[T]) MarshalYAML() (interface{}, error) {
	return dtermYAML[T]{Scale: d.scale, Limits: d.Limits, PrevMeasurement: d.PrevMeasurement}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *DTerm[T]) UnmarshalYAML(unmarshal func(interface{}) error) error {
	m := dtermYAML[T]{Limits: NewLimits[T]()}
	if err := unmarshal(&m); err != nil {
		return err
	}
	d.scale, d.Limits, d.PrevMeasurement = m.Scale, m.Limits, m.PrevMeasurement
	return nil
}

type controllerYAML[T Float] struct {
	KP       PTerm[T]  `yaml:"kp"`
	KI       ITerm[T]  `yaml:"ki"`
	KD       DTerm[T]  `yaml:"kd"`
	Limits   Limits[T] `yaml:"limits"`
	Setpoint T         `yaml:"setpoint"`
}

// MarshalYAML implements yaml.Marshaler.
func (c Controller[T]) MarshalYAML() (interface{}, error) {
	return controllerYAML[T]{KP: c.KP, KI: c.KI, KD: c.KD, Limits: c.Limits, Setpoint: c.Setpoint}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Controller[T]) UnmarshalYAML(unmarshal func(interface{}) error) error {
	def := New[T]()
	m := controllerYAML[T]{KP: def.KP, KI: def.KI, KD: def.KD, Limits: def.Limits}
	if err := unmarshal(&m); err != nil {
		return err
	}
	*c = Controller[T]{KP: m.KP, KI: m.KI, KD: m.KD, Limits: m.Limits, Setpoint: m.Setpoint}
	return nil
}

type inputYAML[T Float] struct {
	Measurement T `yaml:"measurement"`
	TDelta      T `yaml:"tdelta"`
}

// MarshalYAML implements yaml.Marshaler.
func (in Input[T]) MarshalYAML() (interface{}, error) {
	return inputYAML[T]{Measurement: in.measurement, TDelta: in.tdelta}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The decoded tdelta goes
// through the same floor as NewInput.
func (in *Input[T]) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var m inputYAML[T]
	if err := unmarshal(&m); err != nil {
		return err
	}
	*in = NewInput(m.Measurement, m.TDelta)
	return nil
}

type outputYAML[T Float] struct {
	P   T `yaml:"p"`
	I   T `yaml:"i"`
	D   T `yaml:"d"`
	Out T `yaml:"out"`
}

// MarshalYAML implements yaml.Marshaler.
func (o Output[T]) MarshalYAML() (interface{}, error) {
	return outputYAML[T]{P: o.p, I: o.i, D: o.d, Out: o.out}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *Output[T]) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var m outputYAML[T]
	if err := unmarshal(&m); err != nil {
		return err
	}
	*o = NewOutput(m.P, m.I, m.D, m.Out)
	return nil
}

// MarshalState encodes a controller, including its integral accumulator and
// last measurement, so it can be restored after a restart.
func MarshalState[T Float](c Controller[T]) ([]byte, error) {
	b, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding controller state: %w", err)
	}
	return b, nil
}

// UnmarshalState decodes a controller written by MarshalState.
func UnmarshalState[T Float](b []byte) (Controller[T], error) {
	c := New[T]()
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Controller[T]{}, fmt.Errorf("decoding controller state: %w", err)
	}
	return c, nil
}
