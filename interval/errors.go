package interval

import "errors"

var (
	// ErrInverted indicates an interval whose start lies after its end.
	ErrInverted = errors.New("interval: start must not exceed end")
	// ErrOverflow indicates that an upper bound does not fit in uint64.
	ErrOverflow = errors.New("interval: bound overflows uint64")
)
