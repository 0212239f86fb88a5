package seat

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"flightbooking/internal/domain/flight"
	"flightbooking/internal/pkg/utils"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
)

const EventSeatsUpdated = "seats_updated"

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Event is pushed to every subscriber of a flight instance.
type Event struct {
	Type         string    `json:"type"`
	FlightNumber string    `json:"flight_number"`
	Departure    time.Time `json:"departure"`
	Occupied     []string  `json:"occupied"`
}

type instanceKey struct {
	flightNumber string
	departure    int64 // unix millis
}

func keyFor(flightNumber string, departure time.Time) instanceKey {
	return instanceKey{
		flightNumber: flight.NormalizeNumber(flightNumber),
		departure:    utils.NormalizeInstant(departure).UnixMilli(),
	}
}

type subscriber struct {
	key  instanceKey
	conn *websocket.Conn
	send chan []byte
}

// Hub fans occupancy changes out to websocket clients watching a flight instance.
type Hub struct {
	mu   sync.RWMutex
	subs map[instanceKey]map[*subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[instanceKey]map[*subscriber]struct{})}
}

func (h *Hub) register(s *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.subs[s.key]
	if !ok {
		set = make(map[*subscriber]struct{})
		h.subs[s.key] = set
	}
	set[s] = struct{}{}
}

func (h *Hub) unregister(s *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.subs[s.key]
	if !ok {
		return
	}
	if _, ok := set[s]; ok {
		delete(set, s)
		close(s.send)
	}
	if len(set) == 0 {
		delete(h.subs, s.key)
	}
}

// Subscribers reports how many clients watch the instance.
func (h *Hub) Subscribers(flightNumber string, departure time.Time) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[keyFor(flightNumber, departure)])
}

// Publish sends the occupancy set to subscribers of that instance only.
func (h *Hub) Publish(flightNumber string, departure time.Time, occupied []string) {
	if occupied == nil {
		occupied = []string{}
	}
	data, err := json.Marshal(Event{
		Type:         EventSeatsUpdated,
		FlightNumber: flight.NormalizeNumber(flightNumber),
		Departure:    utils.NormalizeInstant(departure),
		Occupied:     occupied,
	})
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for s := range h.subs[keyFor(flightNumber, departure)] {
		select {
		case s.send <- data:
		default:
			// slow client, drop
		}
	}
}

// Serve upgrades the request and streams events for the instance until the
// client disconnects. The first message is the current snapshot.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, flightNumber string, departure time.Time, snapshot []string) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	if snapshot == nil {
		snapshot = []string{}
	}
	s := &subscriber{
		key:  keyFor(flightNumber, departure),
		conn: conn,
		send: make(chan []byte, 64),
	}

	if data, err := json.Marshal(Event{
		Type:         EventSeatsUpdated,
		FlightNumber: s.key.flightNumber,
		Departure:    utils.NormalizeInstant(departure),
		Occupied:     snapshot,
	}); err == nil {
		s.send <- data
	}

	h.register(s)
	log.Printf("seat_ws_connected flight_number=%s departure=%s", s.key.flightNumber, utils.NormalizeInstant(departure).Format(time.RFC3339))

	go h.writePump(s)
	h.readPump(s)
	return nil
}

func (h *Hub) readPump(s *subscriber) {
	defer func() {
		h.unregister(s)
		s.conn.Close()
	}()

	s.conn.SetReadLimit(maxMsgSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// clients only listen; reads keep the deadline and close detection alive
	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(s *subscriber) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Notifier recomputes an instance's occupancy and publishes it on the hub.
type Notifier struct {
	checker *Checker
	hub     *Hub
}

func NewNotifier(checker *Checker, hub *Hub) *Notifier {
	return &Notifier{checker: checker, hub: hub}
}

// SeatsChanged is best effort: failures are logged, never returned.
func (n *Notifier) SeatsChanged(ctx context.Context, flightNumber string, departure time.Time) {
	if n == nil || n.hub == nil {
		return
	}
	if n.hub.Subscribers(flightNumber, departure) == 0 {
		return
	}
	occupied, err := n.checker.Occupied(ctx, flightNumber, departure)
	if err != nil {
		log.Printf("seat_publish_failed flight_number=%s error=%q", flightNumber, err.Error())
		return
	}
	n.hub.Publish(flightNumber, departure, occupied)
}
