package passenger

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Passenger travels on a booking. Seat is nil until one is assigned; the
// (booking_id, seat) pair is unique.
type Passenger struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	BookingID string    `gorm:"type:varchar(36);not null;index;uniqueIndex:idx_passengers_booking_seat,priority:1" json:"booking_id"`
	FirstName string    `gorm:"size:100;not null" json:"first_name"`
	LastName  string    `gorm:"size:100;not null" json:"last_name"`
	Email     string    `gorm:"size:255" json:"email,omitempty"`
	Phone     string    `gorm:"size:32" json:"phone,omitempty"`
	Seat      *string   `gorm:"size:8;uniqueIndex:idx_passengers_booking_seat,priority:2" json:"seat"`
	CreatedAt time.Time `json:"created_at"`
}

func (Passenger) TableName() string { return "passengers" }

func (p *Passenger) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type CreatePassengerRequest struct {
	BookingID string `json:"booking_id" binding:"required" validate:"required,max=36"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"omitempty,email,max=255"`
	Phone     string `json:"phone" validate:"max=32"`
	// Seat is optional; empty or absent leaves the passenger unseated.
	Seat *string `json:"seat"`
}
