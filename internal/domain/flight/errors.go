package flight

import (
	"errors"

	"flightbooking/internal/domain"
)

var (
	ErrNotFound = domain.NotFoundError{Resource: "flight"}

	ErrNumberTaken = domain.ConflictError{Resource: "flight", Msg: "Flight number already exists"}

	// ErrCapacityLocked is returned when seat_capacity changes on a flight
	// that bookings already reference; seat codes issued under the old layout
	// would no longer validate.
	ErrCapacityLocked = domain.ConflictError{Resource: "flight", Msg: "Seat capacity cannot change once the flight has bookings"}

	ErrHasBookings = domain.ConflictError{Resource: "flight", Msg: "Flight has bookings and cannot be deleted"}

	ErrInvalidSchedule = errors.New("arrival_time must be after departure_time")
)
