// Package clip provides a unified interface to the system clipboard.
// Backends are probed in order at startup:
//
//	system.go    — golang.design/x/clipboard (cgo; X11/Wayland/macOS/Windows)
//	cmdline.go   — atotto/clipboard (external pbcopy/xclip/xsel tools)
//	headless.go  — no-op stub for displayless environments
package clip

import "errors"

// ErrNoText is returned by Read when the clipboard is empty, holds non-text
// data, or is temporarily unreadable. A poll tick that sees it is a no-op,
// not an error condition.
var ErrNoText = errors.New("clip: no text available")

// Backend is a platform clipboard. Each Read or Write is one scoped
// operation: the backend acquires the OS clipboard, performs the operation,
// and releases it before returning, even on failure.
type Backend interface {
	// Name returns a human-readable name for the backend.
	Name() string

	// Read returns the current clipboard text, or ErrNoText.
	Read() (string, error)

	// Write replaces the clipboard contents with text.
	Write(text string) error

	// Close releases any resources held by the backend.
	Close()
}

// New probes the available backends and returns the first working one.
// It never fails: in a displayless environment the headless stub is
// returned, which produces no text and discards writes.
func New() Backend {
	if b, err := newSystemBackend(); err == nil {
		return b
	}
	if b, err := newCmdlineBackend(); err == nil {
		return b
	}
	return newHeadlessBackend()
}
