package seat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightbooking/internal/domain/booking"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var ev Event
	require.NoError(t, json.Unmarshal(data, &ev))
	return ev
}

func TestHub_PublishesOnlyToMatchingInstance(t *testing.T) {
	db := setupDB(t)
	addBooking(t, db, "AI101", departure, booking.StatusPending, "14C")

	hub := NewHub()
	checker := NewChecker(NewRepository(db))
	h := NewHandler(checker, nil, NewCapacityResolver(nil, 48), hub)

	r := gin.New()
	h.RegisterWSRoutes(r)
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/seats?flight_number=ai101&departure=2025-12-15T11:30:00%2B05:30"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	snapshot := readEvent(t, conn)
	assert.Equal(t, EventSeatsUpdated, snapshot.Type)
	assert.Equal(t, "AI101", snapshot.FlightNumber)
	assert.True(t, snapshot.Departure.Equal(departure))
	assert.Equal(t, []string{"14C"}, snapshot.Occupied)

	require.Eventually(t, func() bool { return hub.Subscribers("AI101", departure) == 1 }, 2*time.Second, 10*time.Millisecond)

	hub.Publish("AI101", departure.Add(24*time.Hour), []string{"99Z"})
	hub.Publish("AI999", departure, []string{"98Z"})

	addBooking(t, db, "AI101", departure, booking.StatusConfirmed, "12A")
	NewNotifier(checker, hub).SeatsChanged(context.Background(), "AI101", departure)

	ev := readEvent(t, conn)
	assert.Equal(t, []string{"12A", "14C"}, ev.Occupied)

	conn.Close()
	require.Eventually(t, func() bool { return hub.Subscribers("AI101", departure) == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_RejectsBadQuery(t *testing.T) {
	h := NewHandler(nil, nil, NewCapacityResolver(nil, 48), NewHub())
	r := gin.New()
	h.RegisterWSRoutes(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ws/seats?flight_number=AI101&departure=tomorrow", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_DEPARTURE")
}

func TestNotifier_SkipsWithoutSubscribers(t *testing.T) {
	// a nil checker would panic if the notifier queried occupancy
	n := NewNotifier(nil, NewHub())
	assert.NotPanics(t, func() { n.SeatsChanged(context.Background(), "AI101", departure) })

	var nilNotifier *Notifier
	assert.NotPanics(t, func() { nilNotifier.SeatsChanged(context.Background(), "AI101", departure) })
}
