package flight

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.GET("/flights", h.Search)
	v1.GET("/flights/:number", h.Get)
}

// RegisterAdminRoutes expects a group already guarded by JWTAuth + AdminOnly.
func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.POST("/flights", h.Create)
	admin.PUT("/flights/:number", h.Update)
	admin.DELETE("/flights/:number", h.Delete)
}
