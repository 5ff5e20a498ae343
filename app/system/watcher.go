package system

import (
	"context"
	"errors"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/themer/app/enum"
)

// Watcher samples a Source and notifies subscribers when the detected preference changes.
// A source that cannot report a preference counts as light.
type Watcher struct {
	src      Source
	interval time.Duration
	timeout  time.Duration

	pollMu sync.Mutex // serializes Poll, subscribers see changes in detection order
	mu     sync.Mutex
	last   enum.Theme
	subs   map[int]func(enum.Theme)
	nextID int
}

// WatcherConfig holds watcher settings.
type WatcherConfig struct {
	Interval time.Duration // poll interval, 0 disables polling in Run
	Timeout  time.Duration // per-detection timeout
}

// NewWatcher creates a Watcher for the given source.
func NewWatcher(src Source, cfg WatcherConfig) *Watcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Second
	}
	return &Watcher{src: src, interval: cfg.Interval, timeout: cfg.Timeout, subs: make(map[int]func(enum.Theme))}
}

// Current returns the last sampled preference, sampling the source if nothing was seen yet.
func (w *Watcher) Current() enum.Theme {
	w.mu.Lock()
	last := w.last
	w.mu.Unlock()
	if last.Valid() {
		return last
	}

	t, err := w.detect(context.Background())
	if err != nil {
		log.Printf("[DEBUG] system preference not available, %v", err)
		return enum.ThemeLight
	}
	w.mu.Lock()
	if !w.last.Valid() {
		w.last = t
	}
	last = w.last
	w.mu.Unlock()
	return last
}

// Subscribe registers fn to be called with every change of the detected preference.
// The returned func removes the subscription.
func (w *Watcher) Subscribe(fn func(enum.Theme)) (unsubscribe func()) {
	w.mu.Lock()
	id := w.nextID
	w.nextID++
	w.subs[id] = fn
	w.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			w.mu.Lock()
			delete(w.subs, id)
			w.mu.Unlock()
		})
	}
}

// Poll samples the source once and notifies subscribers if the preference changed.
// The first successful sample only sets the baseline. Returns true if subscribers were notified.
func (w *Watcher) Poll(ctx context.Context) bool {
	w.pollMu.Lock()
	defer w.pollMu.Unlock()

	t, err := w.detect(ctx)
	if err != nil {
		if !errors.Is(err, ErrUnsupported) {
			log.Printf("[WARN] failed to detect system preference, %v", err)
			return false
		}
		t = enum.ThemeLight
	}

	w.mu.Lock()
	prev := w.last
	w.last = t
	if !prev.Valid() || prev == t {
		w.mu.Unlock()
		return false
	}
	subs := make([]func(enum.Theme), 0, len(w.subs))
	for _, fn := range w.subs {
		subs = append(subs, fn)
	}
	w.mu.Unlock()

	log.Printf("[INFO] system preference changed %s -> %s", prev, t)
	for _, fn := range subs {
		fn(t)
	}
	return true
}

// Run polls the source every interval until ctx is canceled.
func (w *Watcher) Run(ctx context.Context) {
	if w.interval <= 0 {
		log.Printf("[DEBUG] system preference polling disabled")
		<-ctx.Done()
		return
	}
	log.Printf("[INFO] starting system preference watcher, interval=%v", w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("[INFO] system preference watcher stopped")
			return
		case <-ticker.C:
			w.Poll(ctx)
		}
	}
}

func (w *Watcher) detect(ctx context.Context) (enum.Theme, error) {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()
	return w.src.Detect(ctx) //nolint:wrapcheck // sources wrap their own errors
}

// Reporter feeds client reports into a Reported source and re-polls the watcher right away,
// so subscribers see the change without waiting for the next tick.
type Reporter struct {
	Reported *Reported
	Watcher  *Watcher
}

// Report records t and returns true if the effective system preference changed.
func (r Reporter) Report(ctx context.Context, t enum.Theme) bool {
	r.Reported.Report(t)
	return r.Watcher.Poll(ctx)
}
