package pidctrl

import "errors"

// ErrLimitOutOfBounds is returned when a bound update would leave a Limits
// with lower > upper. The Limits is left unchanged.
var ErrLimitOutOfBounds = errors.New("limit out of bounds")
