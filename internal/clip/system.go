package clip

import (
	"log/slog"

	"golang.design/x/clipboard"
)

type systemBackend struct{}

// newSystemBackend initialises golang.design/x/clipboard. Init fails cleanly
// on headless hosts (no X11/Wayland display), in which case New falls
// through to the next backend.
func newSystemBackend() (Backend, error) {
	if err := clipboard.Init(); err != nil {
		slog.Debug("system clipboard unavailable", "err", err)
		return nil, err
	}
	return &systemBackend{}, nil
}

func (b *systemBackend) Name() string { return "system" }

func (b *systemBackend) Read() (string, error) {
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return "", ErrNoText
	}
	return string(data), nil
}

func (b *systemBackend) Write(text string) error {
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

func (b *systemBackend) Close() {}
