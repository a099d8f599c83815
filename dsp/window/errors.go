package window

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned for empty or mismatched coefficient slices
// and unknown window names.
var ErrInvalidArgument = errors.New("window: invalid argument")

var (
	errEmptyCoeffs      = fmt.Errorf("%w: window coefficients must not be empty", ErrInvalidArgument)
	errZeroCoherentGain = fmt.Errorf("%w: window coherent gain is zero", ErrInvalidArgument)
	errMismatchedLength = fmt.Errorf("%w: samples and coefficients must have same length", ErrInvalidArgument)
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: window size must be > 0: %d", ErrInvalidArgument, size)
	}

	return nil
}
