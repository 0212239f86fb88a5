package seat

import (
	"context"
	"sort"
	"time"

	"flightbooking/internal/domain/flight"
	"flightbooking/internal/pkg/utils"
)

// Checker computes the occupancy set of a flight instance, i.e. one flight
// number at one exact departure instant.
type Checker struct {
	repo Repository
}

func NewChecker(repo Repository) *Checker {
	return &Checker{repo: repo}
}

// Occupied returns the seats held by non-cancelled bookings, deduplicated and
// sorted. An instance without bookings yields an empty, non-nil slice.
func (c *Checker) Occupied(ctx context.Context, flightNumber string, departure time.Time) ([]string, error) {
	raw, err := c.repo.SeatsForInstance(ctx, flight.NormalizeNumber(flightNumber), utils.NormalizeInstant(departure))
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, code := range raw {
		code = NormalizeCode(code)
		if code == "" {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	sort.Strings(out)
	return out, nil
}

// IsOccupied reports whether code is in the instance's occupancy set.
func (c *Checker) IsOccupied(ctx context.Context, flightNumber string, departure time.Time, code string) (bool, error) {
	seats, err := c.Occupied(ctx, flightNumber, departure)
	if err != nil {
		return false, err
	}
	i := sort.SearchStrings(seats, NormalizeCode(code))
	return i < len(seats) && seats[i] == NormalizeCode(code), nil
}
