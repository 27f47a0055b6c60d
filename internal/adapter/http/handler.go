package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ansuads/internal/core/domain"
	"ansuads/internal/core/port"
)

// sessionCookie carries the opaque token of the active session. The token
// only matches while that session is live; login and register rotate it.
const sessionCookie = "ansuads_session"

// Handler is the inbound HTTP adapter. It exposes the campaign and identity
// usecases as a JSON API for the single-page UI and holds a logger for
// structured logging. Routes are registered on a chi.Router.
type Handler struct {
	campaigns port.CampaignUseCase
	auth      port.AuthUseCase
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured. Campaign and
// stats routes require an authenticated session; auth routes are public.
func NewHandler(campaigns port.CampaignUseCase, auth port.AuthUseCase, logger *slog.Logger) *Handler {
	h := &Handler{campaigns: campaigns, auth: auth, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.handleRegister)
			r.Post("/login", h.handleLogin)
			r.Post("/logout", h.handleLogout)
			r.Get("/session", h.handleSession)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.requireSession)
			r.Get("/campaigns", h.handleListCampaigns)
			r.Post("/campaigns", h.handleCreateCampaign)
			r.Get("/campaigns/{id}", h.handleGetCampaign)
			r.Put("/campaigns/{id}", h.handleUpdateCampaign)
			r.Delete("/campaigns/{id}", h.handleDeleteCampaign)
			r.Post("/campaigns/{id}/variants", h.handleCreateVariant)
			r.Delete("/campaigns/{id}/variants/{variant_id}", h.handleDeleteVariant)
			r.Get("/stats/overview", h.handleStatsOverview)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// requireSession rejects requests whose session cookie does not match the
// active session token.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(sessionCookie)
		if err != nil {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}
		if _, err := h.auth.Authenticate(r.Context(), c.Value); err != nil {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps the domain error taxonomy onto HTTP status codes.
// Anything outside the taxonomy is an internal error and is not leaked.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrVariantNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrDuplicateEmail):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrInvalidCredentials):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, domain.ErrInvalidCampaign):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func idParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}
