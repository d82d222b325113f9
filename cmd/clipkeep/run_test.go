package main

import (
	"path/filepath"
	"testing"

	"go.klb.dev/clipkeep/internal/histfile"
	"go.klb.dev/clipkeep/internal/history"
)

func TestSaveThenReplayRebuildsStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.jsonl")

	before := history.New()
	before.Offer("a")
	before.Offer("b")
	if err := saveHistory(before, path); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Simulated restart: a fresh store rebuilt from the file.
	texts, err := histfile.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	after := history.New()
	replayHistory(after, texts)

	if after.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", after.Len())
	}
	var slots []history.Slot
	var got []string
	for slot, e := range after.All() {
		slots = append(slots, slot)
		got = append(got, e.Text)
	}
	if got[0] != "a" || got[1] != "b" {
		t.Errorf("texts: got %q, want [a b]", got)
	}
	if slots[0] != 0 || slots[1] != 1 {
		t.Errorf("slots: got %v, want [0 1]", slots)
	}
	if e, err := after.Get(0); err != nil || e.Text != "a" {
		t.Errorf("Get(0): got (%q, %v), want (a, nil)", e.Text, err)
	}
}

func TestReplayCollapsesDuplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.jsonl")

	// A save file containing duplicates (e.g. hand-edited or produced by an
	// older build) must collapse on replay: the dedup invariant applies to
	// offers regardless of where the text comes from.
	if err := histfile.Save(path, []string{"x", "y", "x", "y", "z"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	texts, err := histfile.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	store := history.New()
	replayHistory(store, texts)

	if store.Len() != 3 {
		t.Fatalf("Len: got %d, want 3", store.Len())
	}
	want := []string{"x", "y", "z"}
	for slot, e := range store.All() {
		if e.Text != want[slot] {
			t.Errorf("slot %d: got %q, want %q", slot, e.Text, want[slot])
		}
	}

	// The counter must end at the number of distinct entries, so the next
	// capture lands on slot 3.
	if slot, ok := store.Offer("new"); !ok || slot != 3 {
		t.Errorf("next offer: got (%d, %v), want (3, true)", slot, ok)
	}
}
