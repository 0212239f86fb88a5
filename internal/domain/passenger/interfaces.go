package passenger

import (
	"context"
	"time"

	"flightbooking/internal/domain/booking"
)

type Repository interface {
	// Create persists p; a (booking_id, seat) collision yields ErrSeatTaken.
	Create(ctx context.Context, p *Passenger) error
	SeatTakenInBooking(ctx context.Context, bookingID, seat string) (bool, error)
	ListByBooking(ctx context.Context, bookingID string) ([]Passenger, error)
}

type BookingLookup interface {
	GetByID(ctx context.Context, id string) (*booking.Booking, error)
}

type OccupancyReader interface {
	Occupied(ctx context.Context, flightNumber string, departure time.Time) ([]string, error)
}

type CapacityResolver interface {
	Resolve(ctx context.Context, flightNumber string) int
}
