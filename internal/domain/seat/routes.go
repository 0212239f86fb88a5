package seat

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	v1.GET("/seats/occupied", h.Occupied)
	v1.GET("/flights/:number/seat-map", h.SeatMap)
}

// RegisterWSRoutes mounts the websocket outside the versioned API group.
func (h *Handler) RegisterWSRoutes(r gin.IRoutes) {
	r.GET("/ws/seats", h.Stream)
}
