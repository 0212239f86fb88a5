package flight

import (
	"context"

	"flightbooking/internal/domain"
	"flightbooking/internal/pkg/validator"
)

type Service struct {
	flights  Repository
	bookings BookingCounter
}

func NewService(flights Repository, bookings BookingCounter) *Service {
	return &Service{flights: flights, bookings: bookings}
}

func (s *Service) Search(ctx context.Context, filter SearchFilter) ([]Flight, error) {
	return s.flights.Search(ctx, filter)
}

func (s *Service) Get(ctx context.Context, number string) (*Flight, error) {
	return s.flights.GetByNumber(ctx, number)
}

func (s *Service) Create(ctx context.Context, req CreateFlightRequest) (*Flight, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, domain.FieldError(errs)
	}
	if !req.ArrivalTime.IsZero() && !req.ArrivalTime.After(req.DepartureTime) {
		return nil, domain.ValidationError{Field: "arrival_time", Msg: ErrInvalidSchedule.Error(), Err: ErrInvalidSchedule}
	}

	capacity := req.SeatCapacity
	if capacity == 0 {
		capacity = DefaultSeatCapacity
	}

	f := &Flight{
		FlightNumber:  req.FlightNumber,
		Airline:       req.Airline,
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		Price:         req.Price,
		SeatCapacity:  capacity,
	}
	if err := s.flights.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *Service) Update(ctx context.Context, number string, req UpdateFlightRequest) (*Flight, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, domain.FieldError(errs)
	}

	f, err := s.flights.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	if req.SeatCapacity != nil && *req.SeatCapacity != f.SeatCapacity {
		n, err := s.bookings.CountByFlight(ctx, f.FlightNumber)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			return nil, ErrCapacityLocked
		}
		f.SeatCapacity = *req.SeatCapacity
	}

	if req.Airline != nil {
		f.Airline = *req.Airline
	}
	if req.Origin != nil {
		f.Origin = *req.Origin
	}
	if req.Destination != nil {
		f.Destination = *req.Destination
	}
	if req.DepartureTime != nil {
		f.DepartureTime = *req.DepartureTime
	}
	if req.ArrivalTime != nil {
		f.ArrivalTime = *req.ArrivalTime
	}
	if req.Price != nil {
		f.Price = *req.Price
	}
	if !f.ArrivalTime.IsZero() && !f.ArrivalTime.After(f.DepartureTime) {
		return nil, domain.ValidationError{Field: "arrival_time", Msg: ErrInvalidSchedule.Error(), Err: ErrInvalidSchedule}
	}

	if err := s.flights.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *Service) Delete(ctx context.Context, number string) error {
	f, err := s.flights.GetByNumber(ctx, number)
	if err != nil {
		return err
	}
	n, err := s.bookings.CountByFlight(ctx, f.FlightNumber)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrHasBookings
	}
	return s.flights.Delete(ctx, f.ID)
}
