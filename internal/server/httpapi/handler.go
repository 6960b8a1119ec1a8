// Package httpapi exposes the contact services over a JSON HTTP API.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrijs2005/contactdesk/internal/logging"
	"github.com/dmitrijs2005/contactdesk/internal/server/models"
	"github.com/dmitrijs2005/contactdesk/internal/server/services"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Authenticator interface {
	Login(ctx context.Context, userName, password string) (*models.User, error)
}

type ContactManager interface {
	ListNew(ctx context.Context) ([]*models.NewContact, error)
	AddNew(ctx context.Context, in services.NewContactInput) (*models.NewContact, error)
	DeleteNew(ctx context.Context, id int64) error
	ListSaved(ctx context.Context) ([]*models.SavedContact, error)
	DeleteSaved(ctx context.Context, id int64) error
	Promote(ctx context.Context, id int64, userID *int64) (*models.SavedContact, error)
}

type InteractionRecorder interface {
	Record(ctx context.Context, in services.InteractionInput) (*models.Interaction, error)
}

// Pinger reports database reachability. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler serves the REST API.
type Handler struct {
	auth         Authenticator
	contacts     ContactManager
	interactions InteractionRecorder
	db           Pinger
	loc          *time.Location
	logger       logging.Logger
}

// NewHandler wires the API. Timestamps are rendered in loc.
func NewHandler(auth Authenticator, contacts ContactManager, interactions InteractionRecorder, db Pinger, loc *time.Location, logger logging.Logger) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		auth:         auth,
		contacts:     contacts,
		interactions: interactions,
		db:           db,
		loc:          loc,
		logger:       logger,
	}
}

// NewServeMux registers all routes and wraps them with middleware. Request id
// is outermost and panic recovery innermost.
func NewServeMux(h *Handler, logger logging.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/login", h.Login)
	mux.HandleFunc("GET /api/contatos/novos", h.ListNew)
	mux.HandleFunc("POST /api/contatos/novo", h.AddNew)
	mux.HandleFunc("DELETE /api/contatos/novo/{id}", h.DeleteNew)
	mux.HandleFunc("GET /api/contatos/salvos", h.ListSaved)
	mux.HandleFunc("POST /api/contatos/salvar/{id}", h.Promote)
	mux.HandleFunc("DELETE /api/contatos/salvo/{id}", h.DeleteSaved)
	mux.HandleFunc("POST /api/interacao", h.RecordInteraction)
	mux.HandleFunc("GET /healthz", h.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	wrapped := recoveryMiddleware(logger, mux)
	wrapped = corsMiddleware(wrapped)
	wrapped = metricsMiddleware(wrapped)
	wrapped = loggingMiddleware(logger, wrapped)
	wrapped = requestIDMiddleware(wrapped)

	return wrapped
}

// decodeJSON reads an optional JSON body into v. An empty body leaves v
// untouched.
func decodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *Handler) logError(r *http.Request, msg string, err error, args ...any) {
	args = append(args, "request_id", RequestIDFromContext(r.Context()), "error", err)
	h.logger.Error(r.Context(), msg, args...)
}

// Health pings the database.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		h.logError(r, "health check failed", err)
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
