package booking

import (
	"errors"

	"flightbooking/internal/domain"
)

var (
	ErrNotFound                = domain.NotFoundError{Resource: "booking"}
	ErrForbidden               = errors.New("forbidden")
	ErrInvalidStatusTransition = errors.New("invalid_status_transition")
)
