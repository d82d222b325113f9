// Package engine owns the clipboard side of the history: the poll loop that
// feeds new clipboard text into the store, and the restore path that writes
// a chosen entry back to the clipboard.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.klb.dev/clipkeep/internal/clip"
	"go.klb.dev/clipkeep/internal/history"
)

// DefaultInterval is the poll interval used when none is configured.
const DefaultInterval = 1000 * time.Millisecond

// Engine couples a clipboard backend with the history store.
type Engine struct {
	store    *history.Store
	backend  clip.Backend
	interval time.Duration

	// OnEntry, if set, is called once for every accepted offer with the
	// assigned slot and the new entry. Duplicates trigger nothing.
	OnEntry func(history.Slot, history.Entry)
}

// New creates an Engine polling at interval. A non-positive interval falls
// back to DefaultInterval.
func New(store *history.Store, backend clip.Backend, interval time.Duration) *Engine {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Engine{
		store:    store,
		backend:  backend,
		interval: interval,
	}
}

// Store returns the engine's history store.
func (e *Engine) Store() *history.Store { return e.store }

// Backend returns the engine's clipboard backend.
func (e *Engine) Backend() clip.Backend { return e.backend }

// Interval returns the configured poll interval.
func (e *Engine) Interval() time.Duration { return e.interval }

// Run polls the clipboard until ctx is done. The loop is pure polling —
// the clipboard API offers no change notification — and a failed read is
// simply "nothing new this tick".
func (e *Engine) Run(ctx context.Context) {
	slog.Info("clipboard poll started",
		"backend", e.backend.Name(),
		"interval", e.interval,
	)

	t := time.NewTicker(e.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			slog.Debug("clipboard poll stopped")
			return
		case <-t.C:
			e.tick()
		}
	}
}

// tick performs one read-and-offer cycle.
func (e *Engine) tick() {
	text, err := e.backend.Read()
	if err != nil {
		// Empty, non-text, or held by another process. Skip the tick.
		slog.Debug("clipboard read skipped", "err", err)
		return
	}
	slot, ok := e.store.Offer(text)
	if !ok {
		return
	}
	if e.OnEntry != nil {
		e.OnEntry(slot, history.Entry{Text: text})
	}
}

// Restore resolves slot and writes the entry's text back to the clipboard.
// A stale or unknown slot returns history.ErrNotFound. A clipboard write
// failure is reported but leaves the history untouched.
func (e *Engine) Restore(slot history.Slot) (history.Entry, error) {
	entry, err := e.store.Get(slot)
	if err != nil {
		return history.Entry{}, err
	}
	if err := e.backend.Write(entry.Text); err != nil {
		return history.Entry{}, fmt.Errorf("clipboard write: %w", err)
	}
	slog.Info("clipboard restored",
		"slot", slot,
		"label", history.Render(entry.Text, e.store.ShowNewlines()),
	)
	return entry, nil
}

// Clear discards the whole history. Views built from earlier slots must be
// rebuilt by their owners; the IPC handlers re-read the store per request.
func (e *Engine) Clear() {
	e.store.Clear()
	slog.Info("history cleared")
}
