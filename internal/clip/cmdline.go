package clip

import (
	"errors"

	"github.com/atotto/clipboard"
)

type cmdlineBackend struct{}

// newCmdlineBackend uses atotto/clipboard, which shells out to the platform
// clipboard tools (pbcopy/pbpaste, xclip, xsel, ...). It covers hosts where
// the cgo backend cannot initialise but the tools are installed.
func newCmdlineBackend() (Backend, error) {
	if clipboard.Unsupported {
		return nil, errors.New("clip: no clipboard tool found")
	}
	return &cmdlineBackend{}, nil
}

func (b *cmdlineBackend) Name() string { return "cmdline" }

func (b *cmdlineBackend) Read() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil || text == "" {
		return "", ErrNoText
	}
	return text, nil
}

func (b *cmdlineBackend) Write(text string) error {
	return clipboard.WriteAll(text)
}

func (b *cmdlineBackend) Close() {}
