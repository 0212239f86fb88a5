package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"flightbooking/internal/config"
	"flightbooking/internal/database"
	"flightbooking/internal/domain/auth"
	"flightbooking/internal/domain/booking"
	"flightbooking/internal/domain/flight"
	"flightbooking/internal/domain/passenger"
	"flightbooking/internal/server"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	defer database.Close(db)

	if err := server.Migrate(db); err != nil {
		log.Fatal(err)
	}

	// children first
	log.Println("Cleaning old data...")
	for _, table := range []string{"passengers", "bookings", "flights", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			log.Fatalf("clean %s: %v", table, err)
		}
	}

	// ================== USERS ==================
	log.Println("Creating users...")
	admin := mustUser(db, "admin@flightbooking.local", "admin123", "Administrator", auth.RoleAdmin)
	log.Println("Admin created: admin@flightbooking.local / admin123")
	customer := mustUser(db, "asha@example.com", "customer123", "Asha Verma", auth.RoleCustomer)
	log.Println("Customer created: asha@example.com / customer123")

	// ================== FLIGHTS ==================
	log.Println("Creating flights...")
	day := time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC)
	flights := []flight.Flight{
		{FlightNumber: "AI101", Airline: "Air India", Origin: "Delhi", Destination: "Mumbai",
			DepartureTime: day.Add(6 * time.Hour), ArrivalTime: day.Add(8*time.Hour + 10*time.Minute), Price: 120, SeatCapacity: 48},
		{FlightNumber: "6E202", Airline: "IndiGo", Origin: "Bengaluru", Destination: "Delhi",
			DepartureTime: day.Add(9 * time.Hour), ArrivalTime: day.Add(11*time.Hour + 45*time.Minute), Price: 95, SeatCapacity: 72},
		{FlightNumber: "UK303", Airline: "Vistara", Origin: "Mumbai", Destination: "Goa",
			DepartureTime: day.Add(13 * time.Hour), ArrivalTime: day.Add(14*time.Hour + 15*time.Minute), Price: 60, SeatCapacity: 8},
		{FlightNumber: "AI102", Airline: "Air India", Origin: "Mumbai", Destination: "Delhi",
			DepartureTime: day.Add(30 * time.Hour), ArrivalTime: day.Add(32*time.Hour + 5*time.Minute), Price: 125, SeatCapacity: 48},
	}
	for i := range flights {
		if err := db.Create(&flights[i]).Error; err != nil {
			log.Fatalf("create flight %s: %v", flights[i].FlightNumber, err)
		}
	}

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")
	b := booking.Booking{
		UserID:       customer.ID,
		FlightNumber: "AI101",
		DepartureAt:  flights[0].DepartureTime,
		Status:       booking.StatusConfirmed,
		ContactName:  customer.Name,
		ContactEmail: customer.Email,
	}
	now := time.Now().UTC()
	b.ConfirmedAt = &now
	if err := db.Create(&b).Error; err != nil {
		log.Fatalf("create booking: %v", err)
	}

	seat := "14C"
	passengers := []passenger.Passenger{
		{BookingID: b.ID, FirstName: "Asha", LastName: "Verma", Email: customer.Email, Seat: &seat},
		{BookingID: b.ID, FirstName: "Dev", LastName: "Verma"},
	}
	for i := range passengers {
		if err := db.Create(&passengers[i]).Error; err != nil {
			log.Fatalf("create passenger: %v", err)
		}
	}

	log.Printf("Seed completed: admin_id=%d customer_id=%d flights=%d booking_id=%s", admin.ID, customer.ID, len(flights), b.ID)
}

func mustUser(db *gorm.DB, email, password, name string, role auth.UserRole) *auth.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}
	u := &auth.User{Email: email, PasswordHash: string(hash), Name: name, Role: role}
	if err := db.Create(u).Error; err != nil {
		log.Fatalf("create user %s: %v", email, err)
	}
	return u
}
