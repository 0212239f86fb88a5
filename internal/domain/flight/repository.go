package flight

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"flightbooking/internal/database"
	"flightbooking/internal/pkg/utils"
)

type flightRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &flightRepository{db: db}
}

func (r *flightRepository) Create(ctx context.Context, f *Flight) error {
	normalize(f)
	if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return ErrNumberTaken
		}
		return fmt.Errorf("create flight: %w", err)
	}
	return nil
}

func (r *flightRepository) Update(ctx context.Context, f *Flight) error {
	normalize(f)
	if err := r.db.WithContext(ctx).Save(f).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return ErrNumberTaken
		}
		return fmt.Errorf("update flight: %w", err)
	}
	return nil
}

func (r *flightRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&Flight{}, id)
	if tx.Error != nil {
		return fmt.Errorf("delete flight: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *flightRepository) GetByNumber(ctx context.Context, number string) (*Flight, error) {
	var f Flight
	err := r.db.WithContext(ctx).
		Where("flight_number = ?", NormalizeNumber(number)).
		First(&f).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get flight %s: %w", number, err)
	}
	return &f, nil
}

func (r *flightRepository) Search(ctx context.Context, filter SearchFilter) ([]Flight, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 50
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	q := r.db.WithContext(ctx).Model(&Flight{})
	if o := strings.TrimSpace(filter.Origin); o != "" {
		q = q.Where("LOWER(origin) = ?", strings.ToLower(o))
	}
	if d := strings.TrimSpace(filter.Destination); d != "" {
		q = q.Where("LOWER(destination) = ?", strings.ToLower(d))
	}
	if filter.Date != nil {
		day := utils.NormalizeInstant(*filter.Date)
		q = q.Where("departure_time >= ? AND departure_time < ?", day, day.Add(24*time.Hour))
	}

	var flights []Flight
	if err := q.Order("departure_time ASC").Limit(filter.Limit).Offset(filter.Offset).Find(&flights).Error; err != nil {
		return nil, fmt.Errorf("search flights: %w", err)
	}
	return flights, nil
}

func normalize(f *Flight) {
	f.FlightNumber = NormalizeNumber(f.FlightNumber)
	f.Origin = strings.TrimSpace(f.Origin)
	f.Destination = strings.TrimSpace(f.Destination)
	f.DepartureTime = utils.NormalizeInstant(f.DepartureTime)
	if !f.ArrivalTime.IsZero() {
		f.ArrivalTime = utils.NormalizeInstant(f.ArrivalTime)
	}
}
