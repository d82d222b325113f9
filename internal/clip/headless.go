package clip

import "log/slog"

// headlessBackend is a no-op clipboard for environments without a display
// server (headless servers, containers, CI). It never produces text and
// silently discards writes.
type headlessBackend struct{}

func newHeadlessBackend() Backend {
	slog.Warn("clipboard unavailable, running headless")
	return &headlessBackend{}
}

func (b *headlessBackend) Name() string          { return "headless (no-op)" }
func (b *headlessBackend) Read() (string, error) { return "", ErrNoText }
func (b *headlessBackend) Write(_ string) error  { return nil }
func (b *headlessBackend) Close()                {}
