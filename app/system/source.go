// Package system detects the host's light/dark preference and reports changes to subscribers.
package system

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/umputun/themer/app/enum"
)

// ErrUnsupported is returned by a Source that cannot report a preference.
var ErrUnsupported = errors.New("system preference unsupported")

// Source reports the current system preference.
type Source interface {
	Detect(ctx context.Context) (enum.Theme, error)
}

// SourceFunc is an adapter to allow the use of ordinary functions as Source.
type SourceFunc func(ctx context.Context) (enum.Theme, error)

// Detect calls f(ctx).
func (f SourceFunc) Detect(ctx context.Context) (enum.Theme, error) { return f(ctx) }

// Env reads the preference from environment variables.
// Name is checked first and must hold "light" or "dark"; GTK_THEME values with a ":dark"
// variant suffix are recognized as a fallback.
type Env struct {
	Name   string
	lookup func(string) (string, bool)
}

// DefaultEnvName is the variable used when Env.Name is empty.
const DefaultEnvName = "THEMER_SYSTEM_THEME"

// Detect implements Source.
func (e Env) Detect(context.Context) (enum.Theme, error) {
	lookup := e.lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	name := e.Name
	if name == "" {
		name = DefaultEnvName
	}

	if v, ok := lookup(name); ok && v != "" {
		t, err := enum.ParseTheme(v)
		if err != nil {
			return enum.Theme{}, fmt.Errorf("%s=%q: %w", name, v, ErrUnsupported)
		}
		return t, nil
	}

	if v, ok := lookup("GTK_THEME"); ok && v != "" {
		if strings.HasSuffix(strings.ToLower(v), ":dark") {
			return enum.ThemeDark, nil
		}
		return enum.ThemeLight, nil
	}
	return enum.Theme{}, ErrUnsupported
}

// Terminal detects the preference from the terminal background color.
type Terminal struct {
	hasDarkBackground func() bool
}

// Detect implements Source.
func (t Terminal) Detect(context.Context) (enum.Theme, error) {
	dark := t.hasDarkBackground
	if dark == nil {
		dark = lipgloss.HasDarkBackground
	}
	if dark() {
		return enum.ThemeDark, nil
	}
	return enum.ThemeLight, nil
}

// Command runs a desktop settings command and looks for "dark" in its output, e.g.
// "defaults read -g AppleInterfaceStyle" or "gsettings get org.gnome.desktop.interface color-scheme".
// A command that fails to run or exits non-zero means light, since macOS removes the
// AppleInterfaceStyle property in light mode.
type Command struct {
	Name string
	Args []string
}

// Detect implements Source.
func (c Command) Detect(ctx context.Context) (enum.Theme, error) {
	if c.Name == "" {
		return enum.Theme{}, ErrUnsupported
	}
	out, err := exec.CommandContext(ctx, c.Name, c.Args...).Output() //nolint:gosec // command comes from operator config
	if err != nil {
		if ctx.Err() != nil {
			return enum.Theme{}, fmt.Errorf("run %s: %w", c.Name, ctx.Err())
		}
		return enum.ThemeLight, nil
	}
	if strings.Contains(strings.ToLower(string(out)), "dark") {
		return enum.ThemeDark, nil
	}
	return enum.ThemeLight, nil
}

// Reported holds the last preference reported by a client, such as a browser's
// prefers-color-scheme media query. It is unsupported until the first report.
type Reported struct {
	mu    sync.RWMutex
	theme enum.Theme
}

// Report records the preference seen by a client.
func (r *Reported) Report(t enum.Theme) {
	r.mu.Lock()
	r.theme = t
	r.mu.Unlock()
}

// Detect implements Source.
func (r *Reported) Detect(context.Context) (enum.Theme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.theme.Valid() {
		return enum.Theme{}, ErrUnsupported
	}
	return r.theme, nil
}

// Chain asks each source in order and returns the first supported answer.
type Chain []Source

// Detect implements Source.
func (c Chain) Detect(ctx context.Context) (enum.Theme, error) {
	for _, src := range c {
		t, err := src.Detect(ctx)
		if errors.Is(err, ErrUnsupported) {
			continue
		}
		if err != nil {
			return enum.Theme{}, err
		}
		return t, nil
	}
	return enum.Theme{}, ErrUnsupported
}
