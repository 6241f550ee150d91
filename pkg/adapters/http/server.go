// Package http exposes the transfer dialogue over a REST surface.
//
// The handler consumes the ports.TurnProcessor contract, so any host that
// owns sessions and locking (normally the root remesa.Service) can be
// mounted without the adapter knowing about stores or engines.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/avelarq/remesa/internal/logging"
	"github.com/avelarq/remesa/pkg/domain"
	"github.com/avelarq/remesa/pkg/observability"
	"github.com/avelarq/remesa/pkg/ports"
)

// Handler serves the session API.
type Handler struct {
	processor ports.TurnProcessor
	metrics   *observability.Metrics
	log       *slog.Logger
}

// Option configures the handler.
type Option func(*Handler)

// WithLogger sets the request logger.
func WithLogger(log *slog.Logger) Option {
	return func(h *Handler) {
		if log != nil {
			h.log = log
		}
	}
}

// WithMetrics instruments turn handling and mounts GET /metrics.
func WithMetrics(m *observability.Metrics) Option {
	return func(h *Handler) {
		h.metrics = m
	}
}

// NewHandler builds the router around a turn processor.
func NewHandler(processor ports.TurnProcessor, opts ...Option) http.Handler {
	h := &Handler{
		processor: processor,
		log:       logging.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Use(enableCORS)

	r.Get("/healthz", h.health)
	if h.metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	r.Route("/sessions", func(r chi.Router) {
		r.Get("/", h.listSessions)
		r.Route("/{sessionID}", func(r chi.Router) {
			r.Post("/turns", h.postTurn)
			r.Get("/", h.getSession)
			r.Delete("/", h.deleteSession)
		})
	})

	return r
}

// turnRequest is the body of POST /sessions/{id}/turns.
type turnRequest struct {
	Utterance string `json:"utterance"`
}

// turnResponse is the outcome of one processed turn.
type turnResponse struct {
	SessionID   string                 `json:"sessionId"`
	Response    string                 `json:"response"`
	ActionTaken domain.Action          `json:"actionTaken"`
	Phase       domain.Phase           `json:"phase"`
	Values      domain.Details         `json:"values"`
	Result      *domain.TransferResult `json:"result,omitempty"`
}

// sessionResponse is a read-only session snapshot.
type sessionResponse struct {
	SessionID string                 `json:"sessionId"`
	Phase     domain.Phase           `json:"phase"`
	Values    domain.Details         `json:"values"`
	Result    *domain.TransferResult `json:"result,omitempty"`
}

type listResponse struct {
	Sessions []string `json:"sessions"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) postTurn(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var req turnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	start := time.Now()
	result, err := h.processor.ProcessTurn(r.Context(), sessionID, req.Utterance)
	if err != nil {
		if h.metrics != nil {
			h.metrics.ObserveError()
		}
		h.log.Error("turn failed", "session_id", sessionID, "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to process turn")
		return
	}
	if h.metrics != nil {
		h.metrics.ObserveTurn(result.Action, time.Since(start))
	}

	h.writeJSON(w, http.StatusOK, turnResponse{
		SessionID:   sessionID,
		Response:    result.Response,
		ActionTaken: result.Action,
		Phase:       result.State.Phase,
		Values:      result.State.Details,
		Result:      result.State.Result,
	})
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	state, err := h.processor.State(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			h.writeError(w, http.StatusNotFound, "session not found")
			return
		}
		h.log.Error("load failed", "session_id", sessionID, "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to load session")
		return
	}

	h.writeJSON(w, http.StatusOK, sessionResponse{
		SessionID: state.SessionID,
		Phase:     state.Phase,
		Values:    state.Details,
		Result:    state.Result,
	})
}

func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	if err := h.processor.Reset(r.Context(), sessionID); err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			h.writeError(w, http.StatusNotFound, "session not found")
			return
		}
		h.log.Error("reset failed", "session_id", sessionID, "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to reset session")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	ids, err := h.processor.Sessions(r.Context())
	if err != nil {
		h.log.Error("list failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to list sessions")
		return
	}
	if ids == nil {
		ids = []string{}
	}

	h.writeJSON(w, http.StatusOK, listResponse{Sessions: ids})
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Error("encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorResponse{Error: msg})
}

// enableCORS allows browser clients to call the API from other origins.
func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
