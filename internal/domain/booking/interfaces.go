package booking

import (
	"context"
	"time"

	"flightbooking/internal/domain/flight"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter ListFilter) ([]Booking, error)
	// Transition moves a booking from one status to another; it fails with
	// ErrInvalidStatusTransition when the stored status is not from.
	Transition(ctx context.Context, id string, from, to Status, at time.Time) error
	CountByFlight(ctx context.Context, flightNumber string) (int64, error)
	ListPendingDepartedBefore(ctx context.Context, before time.Time, limit int) ([]Booking, error)
}

type FlightLookup interface {
	GetByNumber(ctx context.Context, number string) (*flight.Flight, error)
}

// OccupancyNotifier is told when a flight instance's seats may have changed.
type OccupancyNotifier interface {
	SeatsChanged(ctx context.Context, flightNumber string, departure time.Time)
}
