package pidctrl

import (
	"fmt"
	"testing"
)

// AssertWithinLimits fails the test for every value outside l.
func AssertWithinLimits[T Float](t testing.TB, l Limits[T], values ...T) {
	t.Helper()

	var failures []string
	for i, v := range values {
		if !l.Contains(v) {
			failures = append(failures, fmt.Sprintf("  [%d] %v", i, v))
		}
	}

	if len(failures) > 0 {
		t.Errorf("Values outside [%v, %v]:\n%s", l.Lower(), l.Upper(), failures)
	}
}

// AssertOutputBounded verifies every component of out lies inside the
// corresponding limits of c.
//
// Property:
//
//	KP.Limits ∋ p, KI.Limits ∋ i, KD.Limits ∋ d, Limits ∋ out
func AssertOutputBounded[T Float](t testing.TB, c *Controller[T], out Output[T]) {
	t.Helper()

	if !c.KP.Limits.Contains(out.P()) {
		t.Errorf("p = %v outside [%v, %v]", out.P(), c.KP.Limits.Lower(), c.KP.Limits.Upper())
	}
	if !c.KI.Limits.Contains(out.I()) {
		t.Errorf("i = %v outside [%v, %v]", out.I(), c.KI.Limits.Lower(), c.KI.Limits.Upper())
	}
	if !c.KD.Limits.Contains(out.D()) {
		t.Errorf("d = %v outside [%v, %v]", out.D(), c.KD.Limits.Lower(), c.KD.Limits.Upper())
	}
	if !c.Limits.Contains(out.Out()) {
		t.Errorf("out = %v outside [%v, %v]", out.Out(), c.Limits.Lower(), c.Limits.Upper())
	}
}

// AssertSettles verifies a simulation ends within tol of setpoint and stays
// there once it gets there.
func AssertSettles[T Float](t testing.TB, samples []Sample[T], setpoint, tol T) {
	t.Helper()

	if len(samples) == 0 {
		t.Fatalf("No samples to check")
	}

	stats := Summarize(samples, setpoint, tol)
	if stats.SettledAt < 0 {
		t.Errorf("Did not settle: final = %v, setpoint = %v, tol = %v",
			stats.Final, setpoint, tol)
		return
	}

	t.Logf("✓ Settled at step %d of %d (final error %v, overshoot %v)",
		stats.SettledAt, len(samples), stats.FinalError, stats.Overshoot)
}
