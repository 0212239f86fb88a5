package booking

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts booking routes on a JWT-protected group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/bookings/:id", h.GetBooking)

	// lifecycle
	rg.PATCH("/bookings/:id/confirm", h.ConfirmBooking)
	rg.PATCH("/bookings/:id/cancel", h.CancelBooking)
}
