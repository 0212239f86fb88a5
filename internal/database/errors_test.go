package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm duplicated key", fmt.Errorf("create: %w", gorm.ErrDuplicatedKey), true},
		{"postgres 23505", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "idx_passenger_booking_seat"}), true},
		{"postgres fk violation", &pgconn.PgError{Code: "23503"}, false},
		{"sqlite unique", errors.New("constraint failed: UNIQUE constraint failed: passengers.booking_id, passengers.seat (2067)"), true},
		{"unrelated", errors.New("connection refused"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsUniqueViolation(tc.err))
		})
	}
}

func TestConnectSQLiteMemory(t *testing.T) {
	db, err := Connect("file:connect_test?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer Close(db)

	var one int
	if err := db.Raw("SELECT 1").Scan(&one).Error; err != nil {
		t.Fatalf("select: %v", err)
	}
	assert.Equal(t, 1, one)
	assert.False(t, IsPostgres("file:x.db"))
	assert.True(t, IsPostgres("postgres://u:p@localhost/db"))
}
