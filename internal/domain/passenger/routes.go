package passenger

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/passengers", h.CreatePassenger)
	rg.GET("/bookings/:id/passengers", h.ListPassengers)
}
