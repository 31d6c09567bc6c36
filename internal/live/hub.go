// Package live fans request and driver events out to WebSocket subscribers.
package live

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"service-gas-delivery/internal/domain"
	"service-gas-delivery/internal/logx"
	"service-gas-delivery/internal/transport/kafka"
)

// AdminTopic receives every request event.
const AdminTopic = "admin"

// RequestTopic is the topic of a single request.
func RequestTopic(id uuid.UUID) string { return "request:" + id.String() }

// DriverTopic is the topic of a single driver.
func DriverTopic(id uuid.UUID) string { return "driver:" + id.String() }

// Config tunes connection keepalive and buffering.
type Config struct {
	SendBuffer   int
	PingInterval time.Duration
	PongWait     time.Duration
	WriteWait    time.Duration
}

// DefaultConfig returns keepalive settings suitable for mobile clients.
func DefaultConfig() Config {
	return Config{
		SendBuffer:   32,
		PingInterval: 30 * time.Second,
		PongWait:     60 * time.Second,
		WriteWait:    10 * time.Second,
	}
}

type subscriber struct {
	topic string
	send  chan []byte
	once  sync.Once
}

func (s *subscriber) close() { s.once.Do(func() { close(s.send) }) }

// Hub keeps subscribers per topic and the latest message of each topic.
type Hub struct {
	cfg      Config
	logger   logx.Logger
	upgrader websocket.Upgrader

	mu     sync.RWMutex
	topics map[string]map[*subscriber]struct{}
	latest map[string][]byte
}

// NewHub creates a Hub. Zero config fields take DefaultConfig values.
func NewHub(logger logx.Logger, cfg Config) *Hub {
	def := DefaultConfig()
	if cfg.SendBuffer <= 0 {
		cfg.SendBuffer = def.SendBuffer
	}
	if cfg.PingInterval <= 0 {
		cfg.PingInterval = def.PingInterval
	}
	if cfg.PongWait <= 0 {
		cfg.PongWait = def.PongWait
	}
	if cfg.WriteWait <= 0 {
		cfg.WriteWait = def.WriteWait
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Hub{
		cfg:    cfg,
		logger: logger.With(logx.String("component", "live_hub")),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		topics: make(map[string]map[*subscriber]struct{}),
		latest: make(map[string][]byte),
	}
}

// Publish delivers ev to the topics it concerns. It never blocks on clients.
func (h *Hub) Publish(_ context.Context, ev domain.Event) error {
	msg, err := json.Marshal(kafka.FromDomain(ev))
	if err != nil {
		return fmt.Errorf("marshal live event: %w", err)
	}
	// a finished request gets no further events, so its snapshot is dropped
	finished := ev.Type != domain.EventDriverLocation && ev.Status.Terminal()
	for _, topic := range topicsOf(ev) {
		h.broadcast(topic, msg, !(finished && topic == RequestTopic(ev.RequestID)))
	}
	return nil
}

func topicsOf(ev domain.Event) []string {
	var out []string
	if ev.Type != domain.EventDriverLocation && ev.RequestID != uuid.Nil {
		out = append(out, RequestTopic(ev.RequestID), AdminTopic)
	}
	if ev.DriverID != nil {
		out = append(out, DriverTopic(*ev.DriverID))
	}
	return out
}

func (h *Hub) broadcast(topic string, msg []byte, keep bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch {
	case topic == AdminTopic:
	case keep:
		h.latest[topic] = msg
	default:
		delete(h.latest, topic)
	}
	for sub := range h.topics[topic] {
		select {
		case sub.send <- msg:
		default:
			h.dropLocked(sub)
			h.logger.Warn("live subscriber dropped", logx.String("topic", topic))
		}
	}
}

func (h *Hub) subscribe(topic string) *subscriber {
	sub := &subscriber{topic: topic, send: make(chan []byte, h.cfg.SendBuffer)}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.topics[topic] == nil {
		h.topics[topic] = make(map[*subscriber]struct{})
	}
	h.topics[topic][sub] = struct{}{}
	if msg, ok := h.latest[topic]; ok {
		sub.send <- msg
	}
	return sub
}

func (h *Hub) unsubscribe(sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dropLocked(sub)
}

func (h *Hub) dropLocked(sub *subscriber) {
	subs := h.topics[sub.topic]
	if _, ok := subs[sub]; !ok {
		return
	}
	delete(subs, sub)
	if len(subs) == 0 {
		delete(h.topics, sub.topic)
	}
	sub.close()
}

// Subscribers returns the number of clients on topic.
func (h *Hub) Subscribers(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}

// Snapshots returns the number of topics holding a replay message.
func (h *Hub) Snapshots() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.latest)
}

// Close disconnects every subscriber.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, subs := range h.topics {
		for sub := range subs {
			h.dropLocked(sub)
		}
	}
}

// Serve upgrades the request and streams topic messages until the client leaves.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, topic string) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", logx.Err(err))
		return
	}

	sub := h.subscribe(topic)
	h.logger.Debug("live subscriber joined", logx.String("topic", topic))

	go h.writePump(conn, sub)
	h.readPump(conn, sub)
}

// readPump only serves control frames; client payloads are discarded.
func (h *Hub) readPump(conn *websocket.Conn, sub *subscriber) {
	defer func() {
		h.unsubscribe(sub)
		_ = conn.Close()
	}()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(h.cfg.PongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(h.cfg.PongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("live read error", logx.String("topic", sub.topic), logx.Err(err))
			}
			return
		}
	}
}

func (h *Hub) writePump(conn *websocket.Conn, sub *subscriber) {
	ticker := time.NewTicker(h.cfg.PingInterval)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case msg, ok := <-sub.send:
			_ = conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
