package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"flightbooking/internal/config"
	"flightbooking/internal/database"
	"flightbooking/internal/domain/booking"
	"flightbooking/internal/domain/flight"
)

// Cancels pending bookings whose departure has passed so their seats drop
// out of occupancy. Meant for cron.
func main() {
	limit := flag.Int("limit", 500, "max bookings to cancel per run")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer database.Close(db)

	// no hub in a one-shot process, so no notifier
	svc := booking.NewService(booking.NewRepository(db), flight.NewRepository(db), nil)

	n, err := svc.CancelStalePending(context.Background(), *limit)
	if err != nil {
		log.Fatalf("booking cleanup failed after %d cancellations: %v", n, err)
	}

	log.Printf("booking cleanup completed: cancelled=%d", n)
}
