package rest

import (
	"context"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the /live, /ready and /health probes.
type HealthHandler struct {
	db        dbPinger
	version   string
	llm       string
	startedAt time.Time
}

// NewHealthHandler creates a HealthHandler. llmProvider is only reported,
// never called.
func NewHealthHandler(db dbPinger, version, llmProvider string) *HealthHandler {
	return &HealthHandler{db: db, version: version, llm: llmProvider, startedAt: time.Now()}
}

// HealthResponse is the body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Uptime     string                `json:"uptime,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus reports one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

func (c CompStatus) up() bool { return c.Status != "down" }

// Live answers 200 while the process is serving.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 503 until the database responds.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.probeDB(r.Context())
	writeProbe(w, HealthResponse{Status: db.Status, Timestamp: time.Now()})
}

// Health reports every component plus build and uptime details.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Version:    h.version,
		Uptime:     time.Since(h.startedAt).Truncate(time.Second).String(),
		Components: map[string]CompStatus{"database": h.probeDB(r.Context())},
		Timestamp:  time.Now(),
	}
	if h.llm != "" {
		resp.Components["llm"] = CompStatus{Status: "configured", Detail: h.llm}
	}

	resp.Status = "ok"
	for _, c := range resp.Components {
		if !c.up() {
			resp.Status = "down"
		}
	}
	writeProbe(w, resp)
}

func (h *HealthHandler) probeDB(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down", Detail: err.Error()}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}

func writeProbe(w http.ResponseWriter, resp HealthResponse) {
	code := http.StatusOK
	if resp.Status != "ok" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}
