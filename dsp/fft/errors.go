package fft

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned for sizes, lengths or indices that the
// transform or twiddle table cannot handle.
var ErrInvalidArgument = errors.New("fft: invalid argument")

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
}
