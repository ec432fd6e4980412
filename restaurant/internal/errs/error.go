package errs

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrNotFound             = errors.New("not found")
	ErrBackendUnavailable   = errors.New("backend unavailable")
	ErrConfigurationMissing = errors.New("configuration missing")
	ErrUnauthorized         = errors.New("sign in required")

	ErrNoRestaurantID = fmt.Errorf("%w: no restaurant ID has been provided", ErrInvalidArgument)
	ErrNoReview       = fmt.Errorf("%w: a valid review has not been provided", ErrInvalidArgument)
	ErrNoImage        = fmt.Errorf("%w: a valid image has not been provided", ErrInvalidArgument)
)
