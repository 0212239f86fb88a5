package booking

import "time"

type CreateBookingRequest struct {
	FlightNumber string `json:"flight_number" binding:"required" validate:"required,max=16"`
	// DepartureAt defaults to the flight's scheduled departure.
	DepartureAt  *time.Time `json:"departure_at"`
	ContactName  string     `json:"contact_name" validate:"max=255"`
	ContactEmail string     `json:"contact_email" validate:"omitempty,email,max=255"`
}

type ListFilter struct {
	UserID       *int64
	FlightNumber string
	Status       Status
	Limit        int
	Offset       int
}
