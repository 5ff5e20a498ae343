// Package render turns a theme into what the presentation layer shows: the data-theme
// attribute, the toggle icon glyph and a terminal swatch.
package render

import (
	"fmt"
	"html/template"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/umputun/themer/app/enum"
)

// Sink accepts the theme to display. Implementations must not call back into the controller.
type Sink interface {
	Render(t enum.Theme)
}

// SinkFunc is an adapter to allow the use of ordinary functions as Sink.
type SinkFunc func(t enum.Theme)

// Render calls f(t).
func (f SinkFunc) Render(t enum.Theme) { f(t) }

const (
	moonIcon = `<path d="M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"/>`
	sunIcon  = `<circle cx="12" cy="12" r="5"/>` +
		`<path d="M12 1v2M12 21v2M4.22 4.22l1.42 1.42M18.36 18.36l1.42 1.42M1 12h2M21 12h2M4.22 19.78l1.42-1.42M18.36 5.64l1.42-1.42"/>`
)

// Chrome is the visible state for a theme.
type Chrome struct {
	Theme     enum.Theme    `json:"theme"`
	Attribute string        `json:"attribute"` // value of the data-theme attribute
	Icon      template.HTML `json:"icon"`      // inner markup of the toggle svg
}

// ChromeFor returns the chrome for t. Anything but dark renders as light.
func ChromeFor(t enum.Theme) Chrome {
	if t == enum.ThemeDark {
		return Chrome{Theme: enum.ThemeDark, Attribute: enum.ThemeDark.String(), Icon: moonIcon}
	}
	return Chrome{Theme: enum.ThemeLight, Attribute: enum.ThemeLight.String(), Icon: sunIcon}
}

// State remembers the chrome of the last rendered theme.
type State struct {
	mu     sync.RWMutex
	chrome Chrome
}

// NewState makes a State showing the light theme until the first render.
func NewState() *State {
	return &State{chrome: ChromeFor(enum.ThemeLight)}
}

// Render implements Sink.
func (s *State) Render(t enum.Theme) {
	c := ChromeFor(t)
	s.mu.Lock()
	s.chrome = c
	s.mu.Unlock()
}

// Chrome returns the last rendered chrome.
func (s *State) Chrome() Chrome {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chrome
}

// Multi renders to every sink in order.
type Multi []Sink

// Render implements Sink.
func (m Multi) Render(t enum.Theme) {
	for _, s := range m {
		if s != nil {
			s.Render(t)
		}
	}
}

// Terminal prints a swatch line for every rendered theme.
type Terminal struct {
	w        io.Writer
	renderer *lipgloss.Renderer
}

// NewTerminal makes a Terminal sink writing to w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w, renderer: lipgloss.NewRenderer(w)}
}

// Render implements Sink.
func (t *Terminal) Render(th enum.Theme) {
	_, _ = fmt.Fprintln(t.w, t.Swatch(th))
}

// Swatch returns the styled line for th.
func (t *Terminal) Swatch(th enum.Theme) string {
	style := t.renderer.NewStyle().Padding(0, 1).Bold(true)
	glyph := "☀"
	if th == enum.ThemeDark {
		glyph = "☾"
		style = style.Background(lipgloss.Color("#1a1a1a")).Foreground(lipgloss.Color("#e0e0e0"))
	} else {
		style = style.Background(lipgloss.Color("#f5f5f5")).Foreground(lipgloss.Color("#1a1a1a"))
	}
	return style.Render(glyph + " " + ChromeFor(th).Attribute)
}
