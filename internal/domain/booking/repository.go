package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"flightbooking/internal/domain/flight"
	"flightbooking/internal/pkg/utils"
)

type bookingRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, b *Booking) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return fmt.Errorf("create booking: %w", err)
	}
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	var b Booking
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking %s: %w", id, err)
	}
	return &b, nil
}

func (r *bookingRepository) List(ctx context.Context, filter ListFilter) ([]Booking, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	q := r.db.WithContext(ctx).Model(&Booking{})
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}
	if filter.FlightNumber != "" {
		q = q.Where("flight_number = ?", flight.NormalizeNumber(filter.FlightNumber))
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var rows []Booking
	if err := q.Order("created_at DESC").Limit(filter.Limit).Offset(filter.Offset).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return rows, nil
}

func (r *bookingRepository) Transition(ctx context.Context, id string, from, to Status, at time.Time) error {
	at = utils.NormalizeInstant(at)
	updates := map[string]interface{}{
		"status":     to,
		"updated_at": at,
	}
	switch to {
	case StatusConfirmed:
		updates["confirmed_at"] = at
	case StatusCancelled:
		updates["cancelled_at"] = at
	}

	tx := r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if tx.Error != nil {
		return fmt.Errorf("update booking status: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrInvalidStatusTransition
	}
	return nil
}

func (r *bookingRepository) CountByFlight(ctx context.Context, flightNumber string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("flight_number = ?", flight.NormalizeNumber(flightNumber)).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return n, nil
}

func (r *bookingRepository) ListPendingDepartedBefore(ctx context.Context, before time.Time, limit int) ([]Booking, error) {
	if limit <= 0 {
		limit = 500
	}
	var rows []Booking
	err := r.db.WithContext(ctx).
		Where("status = ? AND departure_at < ?", StatusPending, utils.NormalizeInstant(before)).
		Order("departure_at ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list stale bookings: %w", err)
	}
	return rows, nil
}
