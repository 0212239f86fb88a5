package booking

import (
	"context"
	"errors"
	"log"
	"time"

	"flightbooking/internal/domain"
	"flightbooking/internal/pkg/utils"
	"flightbooking/internal/pkg/validator"
)

type Service struct {
	bookings Repository
	flights  FlightLookup
	notifier OccupancyNotifier
	now      func() time.Time
}

// NewService wires the booking lifecycle; notifier may be nil.
func NewService(bookings Repository, flights FlightLookup, notifier OccupancyNotifier) *Service {
	return &Service{
		bookings: bookings,
		flights:  flights,
		notifier: notifier,
		now:      time.Now,
	}
}

func (s *Service) Create(ctx context.Context, actor Actor, req CreateBookingRequest) (*Booking, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, domain.FieldError(errs)
	}

	f, err := s.flights.GetByNumber(ctx, req.FlightNumber)
	if err != nil {
		return nil, err
	}

	departure := f.DepartureTime
	if req.DepartureAt != nil && !req.DepartureAt.IsZero() {
		departure = *req.DepartureAt
	}

	b := &Booking{
		UserID:       actor.UserID,
		FlightNumber: f.FlightNumber,
		DepartureAt:  utils.NormalizeInstant(departure),
		Status:       StatusPending,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) Get(ctx context.Context, actor Actor, id string) (*Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(b) {
		return nil, ErrForbidden
	}
	return b, nil
}

// List returns the caller's bookings; admins see everyone's.
func (s *Service) List(ctx context.Context, actor Actor, filter ListFilter) ([]Booking, error) {
	if !actor.IsAdmin() {
		uid := actor.UserID
		filter.UserID = &uid
	}
	return s.bookings.List(ctx, filter)
}

func (s *Service) Confirm(ctx context.Context, actor Actor, id string) (*Booking, error) {
	return s.transition(ctx, actor, id, StatusConfirmed)
}

// Cancel frees the booking's seats: its passengers drop out of the flight
// instance's occupancy set.
func (s *Service) Cancel(ctx context.Context, actor Actor, id string) (*Booking, error) {
	b, err := s.transition(ctx, actor, id, StatusCancelled)
	if err != nil {
		return nil, err
	}
	if s.notifier != nil {
		s.notifier.SeatsChanged(ctx, b.FlightNumber, b.DepartureAt)
	}
	return b, nil
}

// only pending bookings move, and only once
func (s *Service) transition(ctx context.Context, actor Actor, id string, to Status) (*Booking, error) {
	b, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if b.Status != StatusPending {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.Transition(ctx, id, StatusPending, to, s.now()); err != nil {
		return nil, err
	}
	return s.bookings.GetByID(ctx, id)
}

// CancelStalePending cancels pending bookings whose departure is already in
// the past and returns how many were cancelled.
func (s *Service) CancelStalePending(ctx context.Context, limit int) (int, error) {
	now := s.now()
	stale, err := s.bookings.ListPendingDepartedBefore(ctx, now, limit)
	if err != nil {
		return 0, err
	}

	cancelled := 0
	for _, b := range stale {
		err := s.bookings.Transition(ctx, b.ID, StatusPending, StatusCancelled, now)
		if errors.Is(err, ErrInvalidStatusTransition) {
			// moved on concurrently
			continue
		}
		if err != nil {
			return cancelled, err
		}
		cancelled++
		log.Printf("booking_auto_cancelled booking_id=%s flight_number=%s departure=%s", b.ID, b.FlightNumber, b.DepartureAt.Format(time.RFC3339))
		if s.notifier != nil {
			s.notifier.SeatsChanged(ctx, b.FlightNumber, b.DepartureAt)
		}
	}
	return cancelled, nil
}
