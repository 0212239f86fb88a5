package passenger

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"flightbooking/internal/domain"
	"flightbooking/internal/domain/booking"
	"flightbooking/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreatePassenger adds a passenger, optionally seated, to a booking.
// @Summary		Add passenger
// @Tags		Passengers
// @Security	BearerAuth
// @Accept		json
// @Produce		json
// @Param		body	body	CreatePassengerRequest	true	"payload"
// @Success		201	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}	"INVALID_SEAT"
// @Failure		409	{object}	map[string]interface{}	"SEAT_TAKEN"
// @Router		/passengers [post]
func (h *Handler) CreatePassenger(c *gin.Context) {
	var req CreatePassengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Create(c.Request.Context(), actorFrom(c), req)
	if err != nil {
		h.writeError(c, err, "Failed to add passenger")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"passenger": p})
}

func (h *Handler) ListPassengers(c *gin.Context) {
	rows, err := h.service.ListByBooking(c.Request.Context(), actorFrom(c), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Failed to list passengers")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"passengers": rows, "count": len(rows)})
}

func actorFrom(c *gin.Context) booking.Actor {
	return booking.Actor{UserID: c.GetInt64("user_id"), Role: c.GetString("role")}
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	var verr domain.ValidationError
	switch {
	case errors.As(err, &verr) && verr.Field == "seat":
		response.Error(c, http.StatusBadRequest, "INVALID_SEAT", "Invalid seat format. "+verr.Msg)
	case domain.IsValidation(err):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", domain.Message(err, fallback))
	case domain.IsConflict(err):
		response.Error(c, http.StatusConflict, "SEAT_TAKEN", domain.Message(err, fallback))
	case errors.Is(err, booking.ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not have access to this booking")
	case domain.IsNotFound(err):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", domain.Message(err, "Not found"))
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
