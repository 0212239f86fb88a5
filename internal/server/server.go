package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"flightbooking/internal/config"
	"flightbooking/internal/domain/auth"
	"flightbooking/internal/domain/booking"
	"flightbooking/internal/domain/flight"
	"flightbooking/internal/domain/passenger"
	"flightbooking/internal/domain/seat"
	"flightbooking/internal/middleware"
	"flightbooking/internal/pkg/jwt"
)

// New assembles the HTTP API on top of an open, migrated database.
func New(db *gorm.DB, cfg *config.Config) *gin.Engine {
	if cfg.AppEnv == "prod" || cfg.AppEnv == "production" || cfg.AppEnv == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	jwtService := jwt.New(cfg.JWTSecret, cfg.JWTTTL)

	// repositories
	userRepo := auth.NewUserRepository(db)
	flightRepo := flight.NewRepository(db)
	bookingRepo := booking.NewRepository(db)
	passengerRepo := passenger.NewRepository(db)
	seatRepo := seat.NewRepository(db)

	// seats
	hub := seat.NewHub()
	checker := seat.NewChecker(seatRepo)
	capacity := seat.NewCapacityResolver(flightRepo, cfg.DefaultSeatCapacity)
	notifier := seat.NewNotifier(checker, hub)

	// services
	authService := auth.NewService(userRepo, jwtService)
	flightService := flight.NewService(flightRepo, bookingRepo)
	bookingService := booking.NewService(bookingRepo, flightRepo, notifier)
	passengerService := passenger.NewService(
		passengerRepo,
		bookingRepo,
		capacity,
		checker,
		notifier,
		passenger.Options{FlightWideSeats: cfg.FlightWideSeatCheck()},
	)

	// handlers
	authHandler := auth.NewHandler(authService)
	flightHandler := flight.NewHandler(flightService)
	bookingHandler := booking.NewHandler(bookingService)
	passengerHandler := passenger.NewHandler(passengerService)
	seatHandler := seat.NewHandler(checker, flightRepo, capacity, hub)

	r := gin.New()
	r.Use(
		middleware.ErrorLogger(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	seatHandler.RegisterWSRoutes(r)

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)
		flightHandler.RegisterPublicRoutes(v1)
		seatHandler.RegisterRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.JWTAuth(jwtService))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			passengerHandler.RegisterRoutes(protected)

			admin := protected.Group("")
			admin.Use(middleware.AdminOnly())
			flightHandler.RegisterAdminRoutes(admin)
		}
	}

	return r
}
