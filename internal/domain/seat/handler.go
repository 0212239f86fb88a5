package seat

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"flightbooking/internal/domain"
	"flightbooking/internal/domain/flight"
	"flightbooking/internal/pkg/response"
	"flightbooking/internal/pkg/utils"
)

type Handler struct {
	checker  *Checker
	flights  FlightLookup
	capacity *CapacityResolver
	hub      *Hub
}

func NewHandler(checker *Checker, flights FlightLookup, capacity *CapacityResolver, hub *Hub) *Handler {
	return &Handler{checker: checker, flights: flights, capacity: capacity, hub: hub}
}

// Occupied returns the taken seats of a flight instance.
// @Summary		Occupied seats
// @Tags		Seats
// @Produce		json
// @Param		flight_number	query	string	true	"flight number"
// @Param		departure		query	string	true	"departure instant (RFC 3339)"
// @Success		200	{object}	map[string]interface{}
// @Router		/seats/occupied [get]
func (h *Handler) Occupied(c *gin.Context) {
	number, departure, ok := instanceFromQuery(c)
	if !ok {
		return
	}

	seats, err := h.checker.Occupied(c.Request.Context(), number, departure)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load occupied seats")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"flight_number": flight.NormalizeNumber(number),
		"departure":     departure,
		"occupied":      seats,
	})
}

// SeatMap returns the layout of a flight plus the seats taken on one departure.
// Without ?departure= the flight's scheduled departure is used.
func (h *Handler) SeatMap(c *gin.Context) {
	f, err := h.flights.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		if domain.IsNotFound(err) {
			response.Error(c, http.StatusNotFound, "FLIGHT_NOT_FOUND", "Flight not found")
			return
		}
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load flight")
		return
	}

	departure := utils.NormalizeInstant(f.DepartureTime)
	if raw := c.Query("departure"); raw != "" {
		departure, err = utils.ParseInstant(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_DEPARTURE", "departure must be an RFC 3339 timestamp")
			return
		}
	}

	occupied, err := h.checker.Occupied(c.Request.Context(), f.FlightNumber, departure)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load occupied seats")
		return
	}

	capacity := h.capacity.Of(f)
	layout := LayoutFor(capacity)
	response.Success(c, http.StatusOK, gin.H{
		"flight_number": f.FlightNumber,
		"departure":     departure,
		"capacity":      capacity,
		"start_row":     layout.StartRow,
		"end_row":       layout.EndRow,
		"columns":       Columns,
		"allowed":       layout.AllowedMessage(),
		"occupied":      occupied,
	})
}

// Stream upgrades to a websocket that receives seats_updated events.
//
// Endpoint: GET /ws/seats?flight_number=AI101&departure=2025-12-15T06:00:00Z
func (h *Handler) Stream(c *gin.Context) {
	number, departure, ok := instanceFromQuery(c)
	if !ok {
		return
	}

	snapshot, err := h.checker.Occupied(c.Request.Context(), number, departure)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load occupied seats")
		return
	}

	// Serve writes its own handshake response on failure
	if err := h.hub.Serve(c.Writer, c.Request, number, departure, snapshot); err != nil {
		_ = c.Error(err)
	}
}

func instanceFromQuery(c *gin.Context) (string, time.Time, bool) {
	number := strings.TrimSpace(c.Query("flight_number"))
	if number == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "flight_number is required")
		return "", time.Time{}, false
	}
	departure, err := utils.ParseInstant(c.Query("departure"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_DEPARTURE", "departure must be an RFC 3339 timestamp")
		return "", time.Time{}, false
	}
	return number, departure, true
}
