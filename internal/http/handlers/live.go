package handlers

import (
	"net/http"

	"service-gas-delivery/internal/live"
	"service-gas-delivery/internal/logx"
)

// LiveHandler upgrades clients to the WebSocket live feed.
type LiveHandler struct {
	feed   liveFeed
	logger logx.Logger
}

// NewLiveHandler creates a new LiveHandler.
func NewLiveHandler(logger logx.Logger, feed liveFeed) *LiveHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &LiveHandler{feed: feed, logger: logger}
}

// Request handles GET /ws/requests/{id}.
func (h *LiveHandler) Request(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	h.feed.Serve(w, r, live.RequestTopic(id))
}

// Driver handles GET /ws/drivers/{id}.
func (h *LiveHandler) Driver(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	h.feed.Serve(w, r, live.DriverTopic(id))
}

// Admin handles GET /ws/admin.
func (h *LiveHandler) Admin(w http.ResponseWriter, r *http.Request) {
	h.feed.Serve(w, r, live.AdminTopic)
}
