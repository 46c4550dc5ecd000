package handlers

import (
	"net/http"
	"time"
)

// Version is the reported service version. Overridable at build time with
// -ldflags "-X .../internal/handlers.Version=...".
var Version = "1.0.0"

// HealthHandler serves the liveness/readiness/status endpoints.
type HealthHandler struct {
	Store   Pinger
	Env     string
	started time.Time
}

func NewHealthHandler(store Pinger, env string) *HealthHandler {
	return &HealthHandler{Store: store, Env: env, started: time.Now()}
}

// Health is a cheap liveness check. Does not touch the store.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
		"service":   "recipe-share-api",
		"version":   Version,
	})
}

// Status reports uptime and store connectivity.
func (h *HealthHandler) Status(w http.ResponseWriter, r *http.Request) {
	database := "connected"
	if err := h.Store.Ping(r.Context()); err != nil {
		database = "disconnected"
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":      "operational",
		"timestamp":   time.Now().UTC(),
		"uptime":      time.Since(h.started).Seconds(),
		"database":    database,
		"environment": h.Env,
	})
}

// Ready returns 200 only when the store answers a ping, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Ping(r.Context()); err != nil {
		JSONError(w, "store unreachable", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
