package passenger

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"flightbooking/internal/database"
)

type passengerRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &passengerRepository{db: db}
}

func (r *passengerRepository) Create(ctx context.Context, p *Passenger) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return domainConflict(err)
		}
		return fmt.Errorf("create passenger: %w", err)
	}
	return nil
}

func (r *passengerRepository) SeatTakenInBooking(ctx context.Context, bookingID, seat string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&Passenger{}).
		Where("booking_id = ? AND seat = ?", bookingID, seat).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("check seat in booking: %w", err)
	}
	return n > 0, nil
}

func (r *passengerRepository) ListByBooking(ctx context.Context, bookingID string) ([]Passenger, error) {
	var rows []Passenger
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list passengers: %w", err)
	}
	return rows, nil
}

func domainConflict(cause error) error {
	c := ErrSeatTaken
	c.Err = cause
	return c
}
