package server

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"flightbooking/internal/domain/auth"
	"flightbooking/internal/domain/booking"
	"flightbooking/internal/domain/flight"
	"flightbooking/internal/domain/passenger"
)

// Models lists every table the API owns, in dependency order.
func Models() []interface{} {
	return []interface{}{
		&auth.User{},
		&flight.Flight{},
		&booking.Booking{},
		&passenger.Passenger{},
	}
}

func Migrate(db *gorm.DB) error {
	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
