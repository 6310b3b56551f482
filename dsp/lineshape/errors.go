package lineshape

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the class of errors returned for arguments outside
// the generator's domain.
var ErrInvalidArgument = errors.New("lineshape: invalid argument")

// ErrInvalidMultiplicity is returned when a multiplicity is outside
// [MinMultiplicity, MaxMultiplicity]. It wraps ErrInvalidArgument.
var ErrInvalidMultiplicity = fmt.Errorf("%w: multiplicity must be an integer between %d and %d",
	ErrInvalidArgument, MinMultiplicity, MaxMultiplicity)

func validateMultiplicity(multiplicity int) error {
	if multiplicity < MinMultiplicity || multiplicity > MaxMultiplicity {
		return fmt.Errorf("%w: %d", ErrInvalidMultiplicity, multiplicity)
	}
	return nil
}
