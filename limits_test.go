package pidctrl

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/exp/constraints"
)

func TestNewLimits_Unclamped(t *testing.T) {
	l := NewLimits[float64]()

	if !math.IsInf(l.Lower(), -1) || !math.IsInf(l.Upper(), 1) {
		t.Fatalf("Expected (-Inf, +Inf), got [%v, %v]", l.Lower(), l.Upper())
	}

	for _, v := range []float64{-1e308, -1, 0, 1, 1e308, math.Inf(1), math.Inf(-1)} {
		if got := l.Clamp(v); got != v {
			t.Errorf("Clamp(%v) = %v, expected identity", v, got)
		}
	}
}

func TestLimits_Clamp(t *testing.T) {
	testCases := []struct {
		name         string
		lower, upper float64
		in, want     float64
	}{
		{"inside", -1, 1, 0.5, 0.5},
		{"at lower", -1, 1, -1, -1},
		{"at upper", -1, 1, 1, 1},
		{"below", -1, 1, -3, -1},
		{"above", -1, 1, 3, 1},
		{"asymmetric below", 2, 8, 0, 2},
		{"asymmetric above", 2, 8, 10, 8},
		{"degenerate", 4, 4, -100, 4},
		{"negative infinity", -5, 5, math.Inf(-1), -5},
		{"positive infinity", -5, 5, math.Inf(1), 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := Limits[float64]{lower: tc.lower, upper: tc.upper}
			got := l.Clamp(tc.in)
			if got != tc.want {
				t.Errorf("Clamp(%v) in [%v, %v] = %v, expected %v",
					tc.in, tc.lower, tc.upper, got, tc.want)
			}
			AssertWithinLimits(t, l, got)
		})
	}
}

func TestLimits_ClampAlwaysInRange(t *testing.T) {
	bounds := [][2]float64{{-10, 10}, {0, 0}, {-3, -1}, {1, 1e9}, {-0.5, 0.25}}
	values := []float64{-1e12, -11, -3, -1, -0.5, 0, 0.1, 0.25, 5, 10, 1e12}

	for _, b := range bounds {
		l := Limits[float64]{lower: b[0], upper: b[1]}
		for _, v := range values {
			got := l.Clamp(v)
			if !l.Contains(got) {
				t.Errorf("Clamp(%v) = %v outside [%v, %v]", v, got, b[0], b[1])
			}
			if l.Contains(v) && got != v {
				t.Errorf("Clamp(%v) = %v, in-range value must pass through", v, got)
			}
		}
	}
}

func TestLimits_SetLimit(t *testing.T) {
	for _, v := range []float64{10, -10} {
		l := NewLimits[float64]()
		l.SetLimit(v)

		if l.Lower() != -10 || l.Upper() != 10 {
			t.Errorf("SetLimit(%v): expected [-10, 10], got [%v, %v]", v, l.Lower(), l.Upper())
		}
	}

	l := NewLimits[float64]()
	if got := l.SetLimit(2).Clamp(7); got != 2 {
		t.Errorf("Chained SetLimit(2).Clamp(7) = %v, expected 2", got)
	}
}

func TestLimits_TrySetUpper(t *testing.T) {
	l := NewLimits[float64]()
	if err := l.TrySetLower(10); err != nil {
		t.Fatalf("TrySetLower(10) on unclamped range: %v", err)
	}

	before := l
	err := l.TrySetUpper(5)
	if !errors.Is(err, ErrLimitOutOfBounds) {
		t.Fatalf("Expected ErrLimitOutOfBounds, got %v", err)
	}
	if l != before {
		t.Errorf("Failed TrySetUpper mutated limits: %+v -> %+v", before, l)
	}

	// Equal to lower is allowed.
	if err := l.TrySetUpper(10); err != nil {
		t.Errorf("TrySetUpper(10) with lower 10: %v", err)
	}
	if err := l.TrySetUpper(12); err != nil {
		t.Errorf("TrySetUpper(12) with lower 10: %v", err)
	}
	if l.Lower() != 10 || l.Upper() != 12 {
		t.Errorf("Expected [10, 12], got [%v, %v]", l.Lower(), l.Upper())
	}
}

func TestLimits_TrySetLower(t *testing.T) {
	l := NewLimits[float64]()
	l.SetLimit(3)

	before := l
	err := l.TrySetLower(4)
	if !errors.Is(err, ErrLimitOutOfBounds) {
		t.Fatalf("Expected ErrLimitOutOfBounds, got %v", err)
	}
	if l != before {
		t.Errorf("Failed TrySetLower mutated limits: %+v -> %+v", before, l)
	}

	if err := l.TrySetLower(3); err != nil {
		t.Errorf("TrySetLower(3) with upper 3: %v", err)
	}
	if err := l.TrySetLower(-100); err != nil {
		t.Errorf("TrySetLower(-100) with upper 3: %v", err)
	}
	if l.Lower() != -100 || l.Upper() != 3 {
		t.Errorf("Expected [-100, 3], got [%v, %v]", l.Lower(), l.Upper())
	}
}

func TestLimits_TrySetRejectsNaN(t *testing.T) {
	l := NewLimits[float64]()
	before := l

	if err := l.TrySetUpper(math.NaN()); !errors.Is(err, ErrLimitOutOfBounds) {
		t.Errorf("TrySetUpper(NaN): expected ErrLimitOutOfBounds, got %v", err)
	}
	if err := l.TrySetLower(math.NaN()); !errors.Is(err, ErrLimitOutOfBounds) {
		t.Errorf("TrySetLower(NaN): expected ErrLimitOutOfBounds, got %v", err)
	}
	if l != before {
		t.Errorf("Rejected NaN mutated limits: %+v", l)
	}
}

func TestEpsilon(t *testing.T) {
	if got, want := Epsilon[float64](), math.Nextafter(1, 2)-1; got != want {
		t.Errorf("Epsilon[float64] = %v, expected %v", got, want)
	}
	if got, want := Epsilon[float32](), math.Nextafter32(1, 2)-1; got != want {
		t.Errorf("Epsilon[float32] = %v, expected %v", got, want)
	}

	type volts float32
	if got := Epsilon[volts](); got != volts(Epsilon[float32]()) {
		t.Errorf("Epsilon[volts] = %v, expected float32 epsilon", got)
	}
}

// symmetricClamp is generic over the library constraint rather than Float.
func symmetricClamp[T constraints.Float](mag, v T) T {
	l := NewLimits[T]()
	return l.SetLimit(mag).Clamp(v)
}

func TestFloat_ConstraintsFloat(t *testing.T) {
	if got := symmetricClamp(2.0, 7.0); got != 2 {
		t.Errorf("float64: Clamp = %v, expected 2", got)
	}
	if got := symmetricClamp[float32](2, -7); got != -2 {
		t.Errorf("float32: Clamp = %v, expected -2", got)
	}

	type volts float64
	if got := symmetricClamp[volts](1.5, 0.5); got != 0.5 {
		t.Errorf("named type: Clamp = %v, expected 0.5", got)
	}
}
