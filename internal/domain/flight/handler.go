package flight

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"flightbooking/internal/domain"
	"flightbooking/internal/pkg/response"
	"flightbooking/internal/pkg/utils"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Search lists flights.
// @Summary		Search flights
// @Tags		Flights
// @Produce		json
// @Param		origin		query	string	false	"origin city or airport"
// @Param		destination	query	string	false	"destination city or airport"
// @Param		date		query	string	false	"departure day (YYYY-MM-DD, UTC)"
// @Success		200	{object}	map[string]interface{}
// @Router		/flights [get]
func (h *Handler) Search(c *gin.Context) {
	filter := SearchFilter{
		Origin:      c.Query("origin"),
		Destination: c.Query("destination"),
	}
	if raw := c.Query("date"); raw != "" {
		day, err := utils.ParseDay(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_DATE", "date must be YYYY-MM-DD")
			return
		}
		filter.Date = &day
	}
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	filter.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	flights, err := h.service.Search(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to search flights")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"flights": flights, "count": len(flights)})
}

func (h *Handler) Get(c *gin.Context) {
	f, err := h.service.Get(c.Request.Context(), c.Param("number"))
	if err != nil {
		h.writeError(c, err, "Failed to load flight")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"flight": f})
}

// Create adds a flight (admin).
// @Summary		Create flight
// @Tags		Flights
// @Security	BearerAuth
// @Accept		json
// @Produce		json
// @Param		body	body	CreateFlightRequest	true	"payload"
// @Success		201	{object}	map[string]interface{}
// @Router		/flights [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	f, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "Failed to create flight")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"flight": f})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	f, err := h.service.Update(c.Request.Context(), c.Param("number"), req)
	if err != nil {
		h.writeError(c, err, "Failed to update flight")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"flight": f})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("number")); err != nil {
		h.writeError(c, err, "Failed to delete flight")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case domain.IsNotFound(err):
		response.Error(c, http.StatusNotFound, "FLIGHT_NOT_FOUND", "Flight not found")
	case errors.Is(err, ErrCapacityLocked):
		response.Error(c, http.StatusConflict, "CAPACITY_LOCKED", domain.Message(err, fallback))
	case domain.IsConflict(err):
		response.Error(c, http.StatusConflict, "FLIGHT_CONFLICT", domain.Message(err, fallback))
	case domain.IsValidation(err):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", domain.Message(err, fallback))
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
