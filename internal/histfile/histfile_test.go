package histfile

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
	}{
		{"empty history", nil},
		{"single", []string{"hello"}},
		{"ordering", []string{"a", "b", "c"}},
		{"empty string entry", []string{"", "x", ""}},
		{"embedded newlines", []string{"line1\nline2\n", "\n\n", "crlf\r\nend"}},
		{"unicode", []string{"héllo wörld", "日本語のテキスト", "emoji 🙂📋"}},
		{"json-hostile", []string{`{"text":"fake"}`, "quote\" back\\slash"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "history.jsonl")
			if err := Save(path, tt.texts); err != nil {
				t.Fatalf("save: %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if len(got) != len(tt.texts) {
				t.Fatalf("load: got %d texts, want %d", len(got), len(tt.texts))
			}
			if !slices.Equal(got, tt.texts) {
				t.Errorf("round trip: got %q, want %q", got, tt.texts)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "nope.jsonl"))
	if err != nil {
		t.Fatalf("load missing: %v, want nil error", err)
	}
	if len(got) != 0 {
		t.Errorf("load missing: got %d texts, want 0", len(got))
	}
}

func TestLoadCorrupt(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "this is a pickle\n"},
		{"bad base64", `{"text":"!!!not-base64!!!"}` + "\n"},
		{"truncated record", `{"text":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "history.jsonl")
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); !errors.Is(err, ErrCorrupt) {
				t.Errorf("load: got %v, want ErrCorrupt", err)
			}
		})
	}
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.jsonl")
	if err := Save(path, []string{"old1", "old2", "old3"}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := Save(path, []string{"new"}); err != nil {
		t.Fatalf("second save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !slices.Equal(got, []string{"new"}) {
		t.Errorf("after overwrite: got %q, want [new]", got)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history.jsonl")
	if err := Save(path, []string{"a"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "history.jsonl" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("dir contents: got %v, want [history.jsonl]", names)
	}
}
