package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"flightbooking/internal/domain"
	"flightbooking/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func actorFrom(c *gin.Context) Actor {
	return Actor{UserID: c.GetInt64("user_id"), Role: c.GetString("role")}
}

// CreateBooking opens a pending booking on a flight instance.
// @Summary		Create booking
// @Tags		Bookings
// @Security	BearerAuth
// @Accept		json
// @Produce		json
// @Param		body	body	CreateBookingRequest	true	"payload"
// @Success		201	{object}	map[string]interface{}
// @Router		/bookings [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), actorFrom(c), req)
	if err != nil {
		h.writeError(c, err, "Failed to create booking")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) ListBookings(c *gin.Context) {
	filter := ListFilter{
		FlightNumber: c.Query("flight_number"),
		Status:       Status(c.Query("status")),
	}
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	filter.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	rows, err := h.service.List(c.Request.Context(), actorFrom(c), filter)
	if err != nil {
		h.writeError(c, err, "Failed to list bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": rows, "count": len(rows)})
}

func (h *Handler) GetBooking(c *gin.Context) {
	b, err := h.service.Get(c.Request.Context(), actorFrom(c), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Failed to load booking")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) ConfirmBooking(c *gin.Context) {
	b, err := h.service.Confirm(c.Request.Context(), actorFrom(c), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Failed to confirm booking")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	b, err := h.service.Cancel(c.Request.Context(), actorFrom(c), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Failed to cancel booking")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not have access to this booking")
	case errors.Is(err, ErrInvalidStatusTransition):
		response.Error(c, http.StatusConflict, "INVALID_STATUS_TRANSITION", "Only pending bookings can be confirmed or cancelled")
	case domain.IsNotFound(err):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", domain.Message(err, "Not found"))
	case domain.IsValidation(err):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", domain.Message(err, fallback))
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
