package seat

import (
	"context"
	"time"

	"flightbooking/internal/domain/flight"
)

// Repository reads seat codes held by live bookings of one flight instance.
type Repository interface {
	SeatsForInstance(ctx context.Context, flightNumber string, departure time.Time) ([]string, error)
}

// FlightLookup is the part of the flight repository capacity resolution needs.
type FlightLookup interface {
	GetByNumber(ctx context.Context, number string) (*flight.Flight, error)
}
