package flight

import "time"

type CreateFlightRequest struct {
	FlightNumber  string    `json:"flight_number" binding:"required" validate:"required,max=16"`
	Airline       string    `json:"airline" validate:"max=100"`
	Origin        string    `json:"origin" binding:"required" validate:"required,max=100"`
	Destination   string    `json:"destination" binding:"required" validate:"required,max=100"`
	DepartureTime time.Time `json:"departure_time" binding:"required" validate:"required"`
	ArrivalTime   time.Time `json:"arrival_time"`
	Price         float64   `json:"price" validate:"gte=0"`
	SeatCapacity  int       `json:"seat_capacity" validate:"gte=0,lte=400"`
}

type UpdateFlightRequest struct {
	Airline       *string    `json:"airline" validate:"omitempty,max=100"`
	Origin        *string    `json:"origin" validate:"omitempty,min=1,max=100"`
	Destination   *string    `json:"destination" validate:"omitempty,min=1,max=100"`
	DepartureTime *time.Time `json:"departure_time"`
	ArrivalTime   *time.Time `json:"arrival_time"`
	Price         *float64   `json:"price" validate:"omitempty,gte=0"`
	SeatCapacity  *int       `json:"seat_capacity" validate:"omitempty,gt=0,lte=400"`
}
