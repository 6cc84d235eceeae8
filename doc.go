// Package pidctrl provides a proportional-integral-derivative (PID)
// control-loop core.
//
// # Overview
//
// Given a setpoint, a stream of measurements and the time elapsed between
// them, a Controller produces a bounded corrective output. Every step is a
// fixed handful of floating-point operations over caller-owned state: no
// allocation, no locking, no I/O. The core is generic over float32 and
// float64 (and named types built on them).
//
// # Architecture
//
// The package components:
//
//   - Limits      - Clamp range shared by every term and the controller
//   - PTerm       - Proportional term (stateless)
//   - ITerm       - Integral term (clamped accumulator)
//   - DTerm       - Derivative term (remembers the previous measurement)
//   - Controller  - Composes the three terms into one clamped output
//   - Input       - One cycle's measurement and time delta
//   - Output      - Per-term contributions plus the total
//   - Simulate    - Closed-loop harness for plants and tests
//
// # Quick Start
//
//	pid := pidctrl.NewWithPID(3.0, 2.0, 1.0)
//
//	// Optional. Seeds the derivative term so the first step has no kick.
//	pid.Init(5.0, 0.0)
//
//	out := pid.Step(pidctrl.NewInput(0.0, 1.0))
//	fmt.Println(out.P(), out.I(), out.D(), out.Out()) // 15 10 0 25
//
// # The Step
//
// With offset = setpoint - measurement:
//
//	p   = clamp_p(Kp · offset)
//	i   = clamp_i(Ki · offset · Δt + i_prev)      i_prev ← i
//	d   = clamp_d(Kd · (m_prev - m) / Δt)         m_prev ← m
//	out = clamp(p + i + d)
//
// The integral stores the clamped value, not the raw sum, so a saturated
// integral cannot wind up beyond its limits. The derivative acts on the
// measurement, not the offset, so a setpoint change does not spike it.
//
// Δt is floored to Epsilon by NewInput; the derivative never divides by
// zero.
//
// # Limits
//
// Every Limits starts unclamped, (-Inf, +Inf):
//
//	pid.KP.Limits.SetLimit(10)              // [-10, 10]
//	err := pid.KI.Limits.TrySetUpper(28)    // [-10, 28]
//	err = pid.KI.Limits.TrySetUpper(-20)    // ErrLimitOutOfBounds, unchanged
//
// Clamp never fails. The fallible setters reject any update that would make
// lower > upper and leave the range as it was.
//
// # Reconfiguration
//
// Gains, limits and Setpoint are plain fields and may be changed between
// any two steps. The next Step uses the new values; there is no staging.
//
// # Persistence
//
// All types implement yaml.Marshaler and yaml.Unmarshaler from
// gopkg.in/yaml.v2. MarshalState and UnmarshalState round-trip a running
// controller, including its accumulator and last measurement, exactly.
//
// # Concurrency
//
// A Controller is owned by one control loop. Concurrent use needs external
// synchronization.
//
// # NaN and Inf
//
// Measurements are not validated. NaN propagates per IEEE-754 and clamping
// a NaN is unspecified; keep them out of the loop.
//
// # See Also
//
//   - examples/case - Closed-loop driver with YAML config and state file
package pidctrl
