package seat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"flightbooking/internal/database"
	"flightbooking/internal/domain/booking"
	"flightbooking/internal/domain/flight"
)

// passengerRow mirrors the columns of the passengers table the join reads.
type passengerRow struct {
	ID        string `gorm:"primaryKey"`
	BookingID string
	Seat      *string
}

func (passengerRow) TableName() string { return "passengers" }

var departure = time.Date(2025, 12, 15, 6, 0, 0, 0, time.UTC)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:seat_test_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := database.Connect(dsn, database.Options{LogLevel: logger.Silent})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&booking.Booking{}, &passengerRow{}))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func addBooking(t *testing.T, db *gorm.DB, number string, dep time.Time, status booking.Status, seats ...string) *booking.Booking {
	t.Helper()
	b := &booking.Booking{UserID: 1, FlightNumber: number, DepartureAt: dep, Status: status}
	require.NoError(t, db.Create(b).Error)
	for i, code := range seats {
		row := passengerRow{ID: fmt.Sprintf("%s-%d", b.ID, i), BookingID: b.ID}
		if code != "<nil>" {
			c := code
			row.Seat = &c
		}
		require.NoError(t, db.Create(&row).Error)
	}
	return b
}

func TestOccupied_EmptyInstance(t *testing.T) {
	checker := NewChecker(NewRepository(setupDB(t)))

	seats, err := checker.Occupied(context.Background(), "AI101", departure)
	require.NoError(t, err)
	assert.NotNil(t, seats)
	assert.Empty(t, seats)
}

func TestOccupied_ExcludesCancelledAndUnseated(t *testing.T) {
	db := setupDB(t)
	addBooking(t, db, "AI101", departure, booking.StatusPending, "14C", "<nil>", "")
	addBooking(t, db, "AI101", departure, booking.StatusConfirmed, "12A", "14C")
	addBooking(t, db, "AI101", departure, booking.StatusCancelled, "15B")

	seats, err := NewChecker(NewRepository(db)).Occupied(context.Background(), "ai101", departure)
	require.NoError(t, err)
	assert.Equal(t, []string{"12A", "14C"}, seats)
}

func TestOccupied_IsolatedByDeparture(t *testing.T) {
	db := setupDB(t)
	addBooking(t, db, "AI101", departure, booking.StatusPending, "14C")
	addBooking(t, db, "AI101", departure.Add(24*time.Hour), booking.StatusPending, "20D")
	addBooking(t, db, "AI102", departure, booking.StatusPending, "21A")

	checker := NewChecker(NewRepository(db))
	ctx := context.Background()

	seats, err := checker.Occupied(ctx, "AI101", departure)
	require.NoError(t, err)
	assert.Equal(t, []string{"14C"}, seats)

	seats, err = checker.Occupied(ctx, "AI101", departure.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, []string{"20D"}, seats)

	// one millisecond off is another instance
	seats, err = checker.Occupied(ctx, "AI101", departure.Add(time.Millisecond))
	require.NoError(t, err)
	assert.Empty(t, seats)
}

func TestOccupied_SameInstantInAnotherZone(t *testing.T) {
	db := setupDB(t)
	addBooking(t, db, "AI101", departure, booking.StatusPending, "14C")

	ist := time.FixedZone("IST", 5*3600+1800)
	seats, err := NewChecker(NewRepository(db)).Occupied(context.Background(), "AI101", departure.In(ist))
	require.NoError(t, err)
	assert.Equal(t, []string{"14C"}, seats)
}

func TestIsOccupied(t *testing.T) {
	db := setupDB(t)
	addBooking(t, db, "AI101", departure, booking.StatusPending, "14C")
	checker := NewChecker(NewRepository(db))

	taken, err := checker.IsOccupied(context.Background(), "AI101", departure, " 14c")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = checker.IsOccupied(context.Background(), "AI101", departure, "14D")
	require.NoError(t, err)
	assert.False(t, taken)
}

type MockFlightLookup struct {
	mock.Mock
}

func (m *MockFlightLookup) GetByNumber(ctx context.Context, number string) (*flight.Flight, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*flight.Flight), args.Error(1)
}

func TestCapacityResolver(t *testing.T) {
	lookup := new(MockFlightLookup)
	lookup.On("GetByNumber", mock.Anything, "AI101").Return(&flight.Flight{FlightNumber: "AI101", SeatCapacity: 8}, nil)
	lookup.On("GetByNumber", mock.Anything, "ZERO").Return(&flight.Flight{FlightNumber: "ZERO"}, nil)
	lookup.On("GetByNumber", mock.Anything, "GONE").Return(nil, flight.ErrNotFound)
	lookup.On("GetByNumber", mock.Anything, "DOWN").Return(nil, errors.New("connection refused"))

	r := NewCapacityResolver(lookup, 48)
	ctx := context.Background()

	assert.Equal(t, 8, r.Resolve(ctx, "AI101"))
	assert.Equal(t, 48, r.Resolve(ctx, "ZERO"))
	assert.Equal(t, 48, r.Resolve(ctx, "GONE"))
	assert.Equal(t, 48, r.Resolve(ctx, "DOWN"))

	// seat validation still runs on the fallback layout
	assert.NoError(t, Validate("23D", r.Resolve(ctx, "DOWN")))
	assert.Error(t, Validate("24A", r.Resolve(ctx, "DOWN")))

	assert.Equal(t, 48, NewCapacityResolver(nil, 0).Resolve(ctx, "ANY"))
}
