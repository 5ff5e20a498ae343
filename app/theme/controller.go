// Package theme keeps the single authoritative light/dark theme of the site. It resolves the
// theme at startup from the persisted override or the system preference, follows live system
// changes while no override is persisted, and pushes every change to the presentation sink.
package theme

import (
	"context"
	"errors"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/themer/app/enum"
	"github.com/umputun/themer/app/store"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/sink.go -pkg mocks -skip-ensure -fmt goimports . Sink
//go:generate moq -out mocks/signal.go -pkg mocks -skip-ensure -fmt goimports . Signal

// Key is the store key holding the persisted override.
const Key = "theme"

// Store persists the override.
type Store interface {
	Load(ctx context.Context, key string) (store.Entry, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Sink is the presentation layer. Render may read Current but must not change the theme.
type Sink interface {
	Render(t enum.Theme)
}

// Signal is the platform's light/dark preference.
type Signal interface {
	Current() enum.Theme
	Subscribe(fn func(enum.Theme)) (unsubscribe func())
}

// Controller owns the current theme. All methods are safe for concurrent use.
type Controller struct {
	store  Store
	sink   Sink
	signal Signal

	mu          sync.Mutex // guards current, unsubscribe and the store writes
	renderMu    sync.Mutex // serializes sink calls
	current     enum.Theme
	unsubscribe func()
}

// New makes a Controller. The current theme is light until Init or Apply is called.
func New(st Store, sink Sink, sig Signal) *Controller {
	return &Controller{store: st, sink: sink, signal: sig, current: enum.ThemeLight}
}

// Current returns the current theme.
func (c *Controller) Current() enum.Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// QuerySystemPreference returns the platform preference, light if the platform can't tell.
func (c *Controller) QuerySystemPreference() enum.Theme {
	if c.signal == nil {
		return enum.ThemeLight
	}
	if t := c.signal.Current(); t.Valid() {
		return t
	}
	return enum.ThemeLight
}

// ResolveInitial returns the persisted override if there is a valid one, the system preference otherwise.
func (c *Controller) ResolveInitial(ctx context.Context) enum.Theme {
	if t, _, ok := c.override(ctx); ok {
		return t
	}
	return c.QuerySystemPreference()
}

// Apply makes t current, persists it as the override and renders it.
// Applying the current theme again is harmless.
func (c *Controller) Apply(ctx context.Context, t enum.Theme) {
	c.mu.Lock()
	c.applyAndUnlock(ctx, t)
}

// Toggle applies the opposite of the current theme and returns it.
func (c *Controller) Toggle(ctx context.Context) enum.Theme {
	c.mu.Lock()
	next := c.current.Toggle()
	log.Printf("[INFO] theme toggled to %s", next)
	c.applyAndUnlock(ctx, next)
	return next
}

// OnSystemPreferenceChanged follows a system preference change unless an override is persisted.
// Following a change persists it, so once applied later system changes are ignored.
func (c *Controller) OnSystemPreferenceChanged(ctx context.Context, t enum.Theme) {
	c.mu.Lock()
	if o, _, ok := c.override(ctx); ok {
		c.mu.Unlock()
		log.Printf("[DEBUG] system preference %s ignored, override %s persisted", t, o)
		return
	}
	c.applyAndUnlock(ctx, t)
}

// Init resolves the initial theme, applies it and subscribes to system preference changes.
// The subscription lives until Close.
func (c *Controller) Init(ctx context.Context) {
	c.mu.Lock()
	if c.signal != nil {
		if c.unsubscribe != nil {
			c.unsubscribe()
		}
		subCtx := context.WithoutCancel(ctx)
		c.unsubscribe = c.signal.Subscribe(func(t enum.Theme) { c.OnSystemPreferenceChanged(subCtx, t) })
	}

	t := c.ResolveInitial(ctx)
	log.Printf("[INFO] theme initialized to %s", t)
	c.applyAndUnlock(ctx, t)
}

// Overridden reports whether a valid override is persisted and since when it holds its value.
func (c *Controller) Overridden(ctx context.Context) (since time.Time, ok bool) {
	_, since, ok = c.override(ctx)
	return since, ok
}

// ClearOverride removes the persisted override, leaving the current theme as is.
// The next system preference change is followed again.
func (c *Controller) ClearOverride(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.store.Delete(ctx, Key); err != nil && !errors.Is(err, store.ErrNotFound) {
		return err //nolint:wrapcheck // store errors are already descriptive
	}
	log.Printf("[INFO] theme override cleared, current %s", c.current)
	return nil
}

// Close drops the system preference subscription.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// applyAndUnlock makes t current and persists it under mu, then renders it and releases mu.
// renderMu is taken before mu is released, so renders keep the order of applies while readers
// of the current theme don't wait for the sink.
func (c *Controller) applyAndUnlock(ctx context.Context, t enum.Theme) {
	if !t.Valid() {
		c.mu.Unlock()
		log.Printf("[WARN] refusing to apply invalid theme %q", t)
		return
	}
	c.current = t
	if err := c.store.Set(ctx, Key, []byte(t.String())); err != nil {
		log.Printf("[WARN] failed to persist theme %s, %v", t, err)
	}

	c.renderMu.Lock()
	c.mu.Unlock()
	defer c.renderMu.Unlock()
	if c.sink != nil {
		c.sink.Render(t)
	}
	log.Printf("[DEBUG] theme %s applied", t)
}

// override reads the persisted override. Missing, unreadable and invalid values are all absent.
func (c *Controller) override(ctx context.Context) (enum.Theme, time.Time, bool) {
	e, err := c.store.Load(ctx, Key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("[WARN] failed to read persisted theme, %v", err)
		}
		return enum.Theme{}, time.Time{}, false
	}
	t, err := enum.ParseTheme(string(e.Value))
	if err != nil {
		log.Printf("[DEBUG] ignoring persisted theme, %v", err)
		return enum.Theme{}, time.Time{}, false
	}
	return t, e.UpdatedAt, true
}
