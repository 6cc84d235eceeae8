package pidctrl

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Float is the numeric domain of every controller type. Any IEEE-754
// binary32 or binary64 representation works, including named types.
type Float = constraints.Float

const (
	epsilon32 = 0x1p-23 // gap between 1.0 and the next float32
	epsilon64 = 0x1p-52 // gap between 1.0 and the next float64
)

// Epsilon returns the machine epsilon of T. Input uses it as the floor for
// time deltas so the derivative term never divides by zero.
func Epsilon[T Float]() T {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return T(epsilon32)
	}
	return T(epsilon64)
}

// Inf returns positive infinity if sign >= 0, negative infinity otherwise.
func Inf[T Float](sign int) T {
	return T(math.Inf(sign))
}
