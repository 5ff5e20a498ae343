// Package api provides HTTP handlers for the theme JSON API.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/themer/app/enum"
	"github.com/umputun/themer/app/render"
)

//go:generate moq -out mocks/controller.go -pkg mocks -skip-ensure -fmt goimports . Controller
//go:generate moq -out mocks/reporter.go -pkg mocks -skip-ensure -fmt goimports . Reporter

// Controller defines the theme operations exposed over HTTP.
type Controller interface {
	Current() enum.Theme
	Apply(ctx context.Context, t enum.Theme)
	Toggle(ctx context.Context) enum.Theme
	Overridden(ctx context.Context) (since time.Time, ok bool)
	ClearOverride(ctx context.Context) error
}

// Reporter accepts system preference changes observed by clients.
type Reporter interface {
	Report(ctx context.Context, t enum.Theme) bool
}

// Handler handles API requests for /api/* endpoints.
type Handler struct {
	ctrl     Controller
	reporter Reporter
}

// State is the API view of the current theme.
type State struct {
	render.Chrome
	Overridden  bool       `json:"overridden"`
	PinnedSince *time.Time `json:"pinned_since,omitempty"`
}

type themeRequest struct {
	Theme string `json:"theme"`
}

// New creates a new API handler. reporter is optional, without it system reports are rejected.
func New(ctrl Controller, reporter Reporter) *Handler {
	return &Handler{ctrl: ctrl, reporter: reporter}
}

// Register registers routes open to every page viewer: reading the theme and reporting
// what the viewer's system prefers.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /theme", h.handleGet)
	r.HandleFunc("POST /system", h.handleSystem)
}

// RegisterMutations registers routes that change the theme explicitly.
func (h *Handler) RegisterMutations(r *routegroup.Bundle) {
	r.HandleFunc("PUT /theme", h.handleSet)
	r.HandleFunc("POST /theme/toggle", h.handleToggle)
	r.HandleFunc("DELETE /theme/override", h.handleClearOverride)
}

// handleGet returns the current theme.
// GET /api/theme
func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	rest.RenderJSON(w, h.state(r.Context()))
}

// handleSet applies an explicit theme.
// PUT /api/theme {"theme":"dark"}
func (h *Handler) handleSet(w http.ResponseWriter, r *http.Request) {
	t, ok := h.decodeTheme(w, r)
	if !ok {
		return
	}
	h.ctrl.Apply(r.Context(), t)
	log.Printf("[INFO] theme set to %s", t)
	rest.RenderJSON(w, h.state(r.Context()))
}

// handleToggle switches between light and dark.
// POST /api/theme/toggle
func (h *Handler) handleToggle(w http.ResponseWriter, r *http.Request) {
	h.ctrl.Toggle(r.Context())
	rest.RenderJSON(w, h.state(r.Context()))
}

// handleClearOverride drops the persisted override so system changes are followed again.
// DELETE /api/theme/override
func (h *Handler) handleClearOverride(w http.ResponseWriter, r *http.Request) {
	if err := h.ctrl.ClearOverride(r.Context()); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to clear override")
		return
	}
	rest.RenderJSON(w, h.state(r.Context()))
}

// handleSystem records the system preference seen by a client, e.g. a prefers-color-scheme change.
// POST /api/system {"theme":"dark"}
func (h *Handler) handleSystem(w http.ResponseWriter, r *http.Request) {
	if h.reporter == nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusNotImplemented, nil, "system reports are disabled")
		return
	}
	t, ok := h.decodeTheme(w, r)
	if !ok {
		return
	}
	changed := h.reporter.Report(r.Context(), t)
	log.Printf("[DEBUG] client reported system preference %s, changed=%v", t, changed)
	rest.RenderJSON(w, h.state(r.Context()))
}

func (h *Handler) decodeTheme(w http.ResponseWriter, r *http.Request) (enum.Theme, bool) {
	var req themeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "invalid request body")
		return enum.Theme{}, false
	}
	t, err := enum.ParseTheme(req.Theme)
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "theme must be light or dark")
		return enum.Theme{}, false
	}
	return t, true
}

func (h *Handler) state(ctx context.Context) State {
	st := State{Chrome: render.ChromeFor(h.ctrl.Current())}
	if since, ok := h.ctrl.Overridden(ctx); ok {
		st.Overridden = true
		if !since.IsZero() {
			st.PinnedSince = &since
		}
	}
	return st
}
