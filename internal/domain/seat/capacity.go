package seat

import (
	"context"
	"log"

	"flightbooking/internal/domain/flight"
)

// CapacityResolver maps a flight number to the capacity seat codes are
// validated against. Lookup failures degrade to the configured default.
type CapacityResolver struct {
	flights  FlightLookup
	fallback int
}

func NewCapacityResolver(flights FlightLookup, fallback int) *CapacityResolver {
	if fallback <= 0 {
		fallback = flight.DefaultSeatCapacity
	}
	return &CapacityResolver{flights: flights, fallback: fallback}
}

func (r *CapacityResolver) Default() int { return r.fallback }

// Resolve never fails: a missing flight, a store error or a non-positive
// capacity all yield the default and a seat_capacity_fallback log line.
func (r *CapacityResolver) Resolve(ctx context.Context, flightNumber string) int {
	if r.flights == nil {
		log.Printf("seat_capacity_fallback flight_number=%s capacity=%d reason=%q", flightNumber, r.fallback, "no flight lookup")
		return r.fallback
	}

	f, err := r.flights.GetByNumber(ctx, flightNumber)
	if err != nil {
		log.Printf("seat_capacity_fallback flight_number=%s capacity=%d reason=%q", flightNumber, r.fallback, err.Error())
		return r.fallback
	}
	return r.Of(f)
}

// Of returns the flight's own capacity, or the default when it is unset.
func (r *CapacityResolver) Of(f *flight.Flight) int {
	if f == nil || f.SeatCapacity <= 0 {
		return r.fallback
	}
	return f.SeatCapacity
}
