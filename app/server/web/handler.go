// Package web provides HTTP handlers for the web UI.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/themer/app/render"
)

//go:embed static
var staticFS embed.FS

//go:embed templates
var templatesFS embed.FS

// StaticFS returns the embedded static filesystem for external use.
func StaticFS() (fs.FS, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to get static sub-filesystem: %w", err)
	}
	return sub, nil
}

// ChromeSource provides the chrome of the current theme.
type ChromeSource interface {
	Chrome() render.Chrome
}

// Config holds web handler configuration.
type Config struct {
	BaseURL string
	Title   string
}

// Handler handles web UI requests.
type Handler struct {
	chrome  ChromeSource
	hub     *Hub
	tmpl    *template.Template
	baseURL string
	title   string
}

type pageData struct {
	render.Chrome
	Title   string
	BaseURL string
}

// New creates a new web handler.
func New(chrome ChromeSource, hub *Hub, cfg Config) (*Handler, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	title := cfg.Title
	if title == "" {
		title = "themer"
	}
	return &Handler{chrome: chrome, hub: hub, tmpl: tmpl, baseURL: cfg.BaseURL, title: title}, nil
}

// Register registers web UI routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /{$}", h.handleIndex)
	r.Handle("GET /ws", h.hub)
}

// handleIndex renders the page with the current theme already applied,
// so there is no flash of the wrong theme before the script runs.
func (h *Handler) handleIndex(w http.ResponseWriter, _ *http.Request) {
	data := pageData{Chrome: h.chrome.Chrome(), Title: h.title, BaseURL: h.baseURL}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		log.Printf("[ERROR] failed to execute template: %v", err)
	}
}
