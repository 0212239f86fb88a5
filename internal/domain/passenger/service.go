package passenger

import (
	"context"
	"log"
	"time"

	"flightbooking/internal/domain"
	"flightbooking/internal/domain/booking"
	"flightbooking/internal/domain/seat"
	"flightbooking/internal/pkg/validator"
)

type Notifier interface {
	SeatsChanged(ctx context.Context, flightNumber string, departure time.Time)
}

type Options struct {
	// FlightWideSeats also rejects seats held by other bookings on the same
	// flight instance. Off by default: only the booking's own passengers and
	// the (booking_id, seat) index are checked.
	FlightWideSeats bool
}

type Service struct {
	passengers Repository
	bookings   BookingLookup
	capacity   CapacityResolver
	occupancy  OccupancyReader
	notifier   Notifier
	opts       Options
}

func NewService(
	passengers Repository,
	bookings BookingLookup,
	capacity CapacityResolver,
	occupancy OccupancyReader,
	notifier Notifier,
	opts Options,
) *Service {
	return &Service{
		passengers: passengers,
		bookings:   bookings,
		capacity:   capacity,
		occupancy:  occupancy,
		notifier:   notifier,
		opts:       opts,
	}
}

// Create adds a passenger to a booking and assigns the requested seat.
//
// The seat code is normalized and validated against the layout derived from
// the flight's capacity, then checked for duplicates. There is no lock across
// the checks and the insert; concurrent duplicates are caught by the unique
// (booking_id, seat) index and reported as the same conflict.
func (s *Service) Create(ctx context.Context, actor booking.Actor, req CreatePassengerRequest) (*Passenger, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, domain.FieldError(errs)
	}

	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(b) {
		return nil, booking.ErrForbidden
	}

	p := &Passenger{
		BookingID: b.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}

	code := ""
	if req.Seat != nil {
		code = seat.NormalizeCode(*req.Seat)
	}
	if code == "" {
		if err := s.passengers.Create(ctx, p); err != nil {
			return nil, err
		}
		return p, nil
	}

	capacity := s.capacity.Resolve(ctx, b.FlightNumber)
	if err := seat.Validate(code, capacity); err != nil {
		return nil, err
	}

	taken, err := s.passengers.SeatTakenInBooking(ctx, b.ID, code)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSeatTaken
	}

	if s.opts.FlightWideSeats {
		occupied, err := s.occupancy.Occupied(ctx, b.FlightNumber, b.DepartureAt)
		if err != nil {
			return nil, err
		}
		for _, o := range occupied {
			if o == code {
				return nil, ErrSeatTakenOnFlight
			}
		}
	}

	p.Seat = &code
	if err := s.passengers.Create(ctx, p); err != nil {
		return nil, err
	}

	log.Printf("seat_assigned booking_id=%s flight_number=%s seat=%s", b.ID, b.FlightNumber, code)
	if s.notifier != nil {
		s.notifier.SeatsChanged(ctx, b.FlightNumber, b.DepartureAt)
	}
	return p, nil
}

func (s *Service) ListByBooking(ctx context.Context, actor booking.Actor, bookingID string) ([]Passenger, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(b) {
		return nil, booking.ErrForbidden
	}
	return s.passengers.ListByBooking(ctx, b.ID)
}
