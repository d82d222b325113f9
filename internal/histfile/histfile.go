// Package histfile persists the clipboard history to a flat file.
//
// File format: one JSON record per line, in history order:
//
//	{"text":"<base64>"}\n
//
// The payload is base64-encoded so that embedded newlines and arbitrary
// Unicode round-trip exactly through the line-oriented framing.
package histfile

import (
	"bufio"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrCorrupt is returned by Load when the file exists but cannot be parsed.
var ErrCorrupt = errors.New("histfile: corrupt history file")

// maxRecordSize is the largest record Load will read (16 MiB).
const maxRecordSize = 16 * 1024 * 1024

type record struct {
	Text string `json:"text"` // base64-encoded
}

// DefaultPath returns the history file location: history.jsonl beside the
// executable, falling back to the working directory when the executable
// path cannot be resolved.
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return "history.jsonl"
	}
	return filepath.Join(filepath.Dir(exe), "history.jsonl")
}

// Save writes texts to path, replacing any previous content. The file is
// written to a temp file in the same directory and renamed into place so a
// crash mid-write never corrupts the previous save.
func Save(path string, texts []string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".history-*.tmp")
	if err != nil {
		return fmt.Errorf("histfile: create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	bw := bufio.NewWriter(tmp)
	enc := json.NewEncoder(bw)
	for _, text := range texts {
		r := record{Text: base64.StdEncoding.EncodeToString([]byte(text))}
		if err := enc.Encode(&r); err != nil {
			tmp.Close()
			return fmt.Errorf("histfile: encode: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("histfile: flush: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("histfile: sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("histfile: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("histfile: rename: %w", err)
	}
	return nil
}

// Load reads the saved texts from path in original order. A missing file is
// a first run: Load returns an empty slice and no error. A file that cannot
// be parsed returns an error wrapping ErrCorrupt.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("histfile: open: %w", err)
	}
	defer f.Close()

	var texts []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), maxRecordSize)
	line := 0
	for sc.Scan() {
		line++
		if len(sc.Bytes()) == 0 {
			continue
		}
		var r record
		if err := json.Unmarshal(sc.Bytes(), &r); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrCorrupt, line, err)
		}
		raw, err := base64.StdEncoding.DecodeString(r.Text)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrCorrupt, line, err)
		}
		texts = append(texts, string(raw))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return texts, nil
}
