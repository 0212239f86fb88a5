package passenger

import "flightbooking/internal/domain"

var (
	ErrSeatTaken = domain.ConflictError{Resource: "seat", Msg: "Seat already taken for this booking"}

	// ErrSeatTakenOnFlight is only returned with flight-wide seat uniqueness.
	ErrSeatTakenOnFlight = domain.ConflictError{Resource: "seat", Msg: "Seat already taken on this flight"}
)
