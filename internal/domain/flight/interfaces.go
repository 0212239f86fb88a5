package flight

import "context"

type Repository interface {
	Create(ctx context.Context, f *Flight) error
	Update(ctx context.Context, f *Flight) error
	Delete(ctx context.Context, id int64) error
	GetByNumber(ctx context.Context, number string) (*Flight, error)
	Search(ctx context.Context, filter SearchFilter) ([]Flight, error)
}

// BookingCounter reports how many bookings reference a flight number.
type BookingCounter interface {
	CountByFlight(ctx context.Context, flightNumber string) (int64, error)
}
