package flight

import (
	"strings"
	"time"
)

// DefaultSeatCapacity applies to flights created without an explicit capacity.
const DefaultSeatCapacity = 48

type Flight struct {
	ID            int64     `gorm:"primaryKey" json:"id"`
	FlightNumber  string    `gorm:"size:16;uniqueIndex;not null" json:"flight_number"`
	Airline       string    `gorm:"size:100" json:"airline"`
	Origin        string    `gorm:"size:100;not null;index" json:"origin"`
	Destination   string    `gorm:"size:100;not null;index" json:"destination"`
	DepartureTime time.Time `gorm:"not null;index" json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	Price         float64   `gorm:"not null;default:0" json:"price"`
	SeatCapacity  int       `gorm:"not null;default:48" json:"seat_capacity"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Flight) TableName() string { return "flights" }

// NormalizeNumber trims and upper-cases a flight number ("ai101 " -> "AI101").
func NormalizeNumber(number string) string {
	return strings.ToUpper(strings.TrimSpace(number))
}

// SearchFilter narrows flight search; zero fields are ignored.
type SearchFilter struct {
	Origin      string
	Destination string
	Date        *time.Time
	Limit       int
	Offset      int
}
