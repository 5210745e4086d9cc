package httpapi

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"realtime-relay/contract"
	"realtime-relay/domain"
	"realtime-relay/errors"
	"realtime-relay/observability"
	"realtime-relay/services"
	"strconv"

	"github.com/rs/cors"
)

const (
	Prefix = "/api/v1/ws"

	DefaultSessionLimit = 50
	MaxSessionLimit     = 500
	maxBodyBytes        = 1 << 20
)

type errorBody struct {
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

const validationErrorsType = "Validation Errors"

// validationBody is the 400 returned when request fields are rejected.
type validationBody struct {
	errorBody
	Type             string            `json:"type"`
	Separator        string            `json:"separator"`
	Totals           int               `json:"totals"`
	ValidationErrors map[string]string `json:"validationErrors"`
}

type SessionList struct {
	Total    int                   `json:"total"`
	Sessions []domain.SessionEvent `json:"sessions"`
}

type health struct {
	Status  string                      `json:"status"`
	Process *observability.ProcessStats `json:"process,omitempty"`
}

// Handler serves the backend-facing HTTP surface.
type Handler struct {
	log     *slog.Logger
	ingress *services.EventIngress
	stats   *services.StatsReporter
	journal contract.ISessionRepository
	monitor *observability.ProcessMonitor
}

// NewHandler accepts a nil monitor, in which case /health only reports status.
func NewHandler(log *slog.Logger, ingress *services.EventIngress, stats *services.StatsReporter,
	journal contract.ISessionRepository, monitor *observability.ProcessMonitor) *Handler {
	return &Handler{log: log, ingress: ingress, stats: stats, journal: journal, monitor: monitor}
}

// NewServeMux mounts the API, the metrics endpoint and the websocket upgrade.
func NewServeMux(h *Handler, gateway http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("POST "+Prefix+"/emit", h.logged(h.emit))
	mux.Handle("GET "+Prefix+"/stats", h.logged(h.getStats))
	mux.Handle("GET "+Prefix+"/connections", h.logged(h.getConnections))
	mux.Handle("GET "+Prefix+"/sessions", h.logged(h.getSessions))
	mux.Handle("GET "+Prefix+"/health", h.logged(h.getHealth))
	mux.Handle("GET /metrics", observability.Handler())
	if gateway != nil {
		mux.Handle("GET /ws", gateway)
	}
	return mux
}

// WithCORS lets browser dashboards on any origin call the API.
func WithCORS(next http.Handler) http.Handler {
	return cors.AllowAll().Handler(next)
}

func (h *Handler) emit(w http.ResponseWriter, r *http.Request) {
	var req services.EmitRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: malformed body: %v", errors.ErrInvalidRequest, err))
		return
	}
	res, err := h.ingress.Emit(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) getStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.stats.Stats())
}

// getConnections echoes an unknown type back with an empty list.
func (h *Handler) getConnections(w http.ResponseWriter, r *http.Request) {
	filter := domain.ActorType(r.URL.Query().Get("type"))
	if filter != "" && !filter.Valid() {
		h.log.Debug("Unknown actor type filter", "type", filter)
	}
	writeJSON(w, http.StatusOK, h.stats.ListConnections(filter))
}

func (h *Handler) getSessions(w http.ResponseWriter, r *http.Request) {
	limit := DefaultSessionLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, fmt.Errorf("%w: limit must be a positive integer", errors.ErrInvalidRequest))
			return
		}
		limit = min(n, MaxSessionLimit)
	}
	events, err := h.journal.List(limit)
	if err != nil {
		h.log.Error("Cannot list sessions", "error", err)
		writeError(w, err)
		return
	}
	if events == nil {
		events = []domain.SessionEvent{}
	}
	writeJSON(w, http.StatusOK, SessionList{Total: len(events), Sessions: events})
}

func (h *Handler) getHealth(w http.ResponseWriter, _ *http.Request) {
	res := health{Status: "ok"}
	if h.monitor != nil {
		stats, err := h.monitor.Snapshot()
		if err != nil {
			h.log.Warn("Process snapshot failed", "error", err)
		} else {
			res.Process = &stats
		}
	}
	writeJSON(w, http.StatusOK, res)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps invalid requests to 400 and anything else to 500.
// Rejected fields are listed one by one under validationErrors.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if stderrors.Is(err, errors.ErrInvalidRequest) {
		status = http.StatusBadRequest
	}
	body := errorBody{
		StatusCode: status,
		Error:      http.StatusText(status),
		Message:    err.Error(),
	}

	var validationErr *services.ValidationError
	if stderrors.As(err, &validationErr) {
		writeJSON(w, status, validationBody{
			errorBody:        body,
			Type:             validationErrorsType,
			Separator:        services.FieldSeparator,
			Totals:           len(validationErr.Fields),
			ValidationErrors: validationErr.Fields,
		})
		return
	}
	writeJSON(w, status, body)
}
