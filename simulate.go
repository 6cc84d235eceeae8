package pidctrl

import (
	"context"
	"fmt"
)

// Plant models the controlled process: given the measurement fed into the
// last step, the controller output and the elapsed time, it returns the next
// measurement.
type Plant[T Float] func(measurement, out, tdelta T) T

// Accumulator is the simplest plant: the output is added to the
// measurement each cycle.
func Accumulator[T Float]() Plant[T] {
	return func(measurement, out, _ T) T {
		return measurement + out
	}
}

// FirstOrder is a first-order lag with time constant tau and gain k,
// integrated with forward Euler. tau must be positive.
func FirstOrder[T Float](k, tau T) Plant[T] {
	return func(measurement, out, tdelta T) T {
		return measurement + (k*out-measurement)*tdelta/tau
	}
}

// SimConfig controls a closed-loop simulation.
type SimConfig[T Float] struct {
	Steps              int // Control cycles to run
	TDelta             T   // Elapsed time per cycle
	Setpoint           T   // Target value
	InitialMeasurement T   // Process value before the first cycle
}

// DefaultSimConfig returns 20 unit-time cycles driving 0 toward 7.5.
func DefaultSimConfig[T Float]() SimConfig[T] {
	return SimConfig[T]{
		Steps:              20,
		TDelta:             1,
		Setpoint:           7.5,
		InitialMeasurement: 0,
	}
}

// Sample is one recorded control cycle.
type Sample[T Float] struct {
	Step        int       // 1-based cycle index
	Measurement T         // Measurement fed into this cycle
	Output      Output[T] // Controller result for this cycle
	Next        T         // Measurement produced by the plant
}

// Simulate initializes c with cfg.Setpoint and cfg.InitialMeasurement and
// closes the loop through plant for cfg.Steps cycles.
//
// ctx is checked between cycles; on cancellation the samples recorded so far
// are returned together with ctx.Err().
func Simulate[T Float](ctx context.Context, c *Controller[T], plant Plant[T], cfg SimConfig[T]) ([]Sample[T], error) {
	if cfg.Steps <= 0 {
		return nil, fmt.Errorf("steps must be positive, got %d", cfg.Steps)
	}
	if plant == nil {
		return nil, fmt.Errorf("nil plant")
	}

	c.Init(cfg.Setpoint, cfg.InitialMeasurement)
	samples := make([]Sample[T], 0, cfg.Steps)

	measurement := cfg.InitialMeasurement
	for n := 1; n <= cfg.Steps; n++ {
		if err := ctx.Err(); err != nil {
			return samples, fmt.Errorf("stopped after %d steps: %w", n-1, err)
		}

		in := NewInput(measurement, cfg.TDelta)
		out := c.Step(in)
		next := plant(measurement, out.Out(), in.TDelta())

		samples = append(samples, Sample[T]{
			Step:        n,
			Measurement: measurement,
			Output:      out,
			Next:        next,
		})
		measurement = next
	}

	return samples, nil
}

// Statistics summarizes a simulation run against its setpoint.
type Statistics[T Float] struct {
	Final      T   // Last measurement produced by the plant
	FinalError T   // Setpoint - Final
	Overshoot  T   // Largest excursion past the setpoint, 0 if none
	SettledAt  int // First step after which every measurement stays within tol, -1 if never
}

// Summarize computes run statistics. tol is the half-width of the band
// around setpoint used for SettledAt.
func Summarize[T Float](samples []Sample[T], setpoint, tol T) Statistics[T] {
	stats := Statistics[T]{SettledAt: -1}
	if len(samples) == 0 {
		return stats
	}

	start := samples[0].Measurement
	for _, s := range samples {
		var past T
		if start <= setpoint {
			past = s.Next - setpoint
		} else {
			past = setpoint - s.Next
		}
		stats.Overshoot = max(stats.Overshoot, past)
	}

	// Walk backwards to find where the tail last left the band.
	for i := len(samples) - 1; i >= 0; i-- {
		e := samples[i].Next - setpoint
		if e < -tol || e > tol {
			break
		}
		stats.SettledAt = samples[i].Step
	}

	last := samples[len(samples)-1]
	stats.Final = last.Next
	stats.FinalError = setpoint - last.Next
	return stats
}
