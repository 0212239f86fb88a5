package booking

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"flightbooking/internal/domain/flight"
	"flightbooking/internal/pkg/utils"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Booking reserves a flight instance, identified by flight number plus exact
// departure instant, for one user.
type Booking struct {
	ID           string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID       int64      `gorm:"not null;index" json:"user_id"`
	FlightNumber string     `gorm:"size:16;not null;index:idx_bookings_instance,priority:1" json:"flight_number"`
	DepartureAt  time.Time  `gorm:"not null;index:idx_bookings_instance,priority:2" json:"departure_at"`
	Status       Status     `gorm:"size:16;not null;default:pending;index" json:"status"`
	ContactName  string     `gorm:"size:255" json:"contact_name,omitempty"`
	ContactEmail string     `gorm:"size:255" json:"contact_email,omitempty"`
	ConfirmedAt  *time.Time `json:"confirmed_at,omitempty"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Booking) TableName() string { return "bookings" }

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Status == "" {
		b.Status = StatusPending
	}
	b.FlightNumber = flight.NormalizeNumber(b.FlightNumber)
	b.DepartureAt = utils.NormalizeInstant(b.DepartureAt)
	return nil
}

// Actor is the authenticated caller acting on bookings.
type Actor struct {
	UserID int64
	Role   string
}

func (a Actor) IsAdmin() bool { return a.Role == "admin" }

func (a Actor) CanAccess(b *Booking) bool {
	return a.IsAdmin() || b.UserID == a.UserID
}
