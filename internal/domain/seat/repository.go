package seat

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"flightbooking/internal/domain/booking"
)

type seatRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &seatRepository{db: db}
}

func (r *seatRepository) SeatsForInstance(ctx context.Context, flightNumber string, departure time.Time) ([]string, error) {
	var seats []string
	err := r.db.WithContext(ctx).
		Table("passengers AS p").
		Joins("JOIN bookings b ON b.id = p.booking_id").
		Where("b.flight_number = ? AND b.departure_at = ?", flightNumber, departure).
		Where("b.status <> ?", booking.StatusCancelled).
		Where("p.seat IS NOT NULL AND p.seat <> ''").
		Pluck("p.seat", &seats).Error
	if err != nil {
		return nil, fmt.Errorf("seats for %s@%s: %w", flightNumber, departure.Format(time.RFC3339), err)
	}
	return seats, nil
}
