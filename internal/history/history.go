// Package history implements the deduplicated, ordered clipboard history.
// It is transport-agnostic: the poll loop appends via Offer, the IPC layer
// reads via Get/All, and rendering is a pure function over stored text.
package history

import (
	"errors"
	"iter"
	"sync"
)

// ErrNotFound is returned by Get for slots that were never assigned or
// that did not survive a Clear.
var ErrNotFound = errors.New("history: slot not found")

// Slot identifies an entry for the lifetime of the store. Slots are assigned
// monotonically at insertion and restart from 0 only after Clear.
type Slot int

// Entry is one captured clipboard text. Entries are immutable once appended;
// Text holds the exact bytes read from the clipboard, newlines included.
type Entry struct {
	Text string
}

// Store holds the clipboard history. It is safe for concurrent use by the
// poll goroutine and the IPC handlers; single-writer mutual exclusion is all
// that is needed since entries never change after insertion.
type Store struct {
	mu           sync.RWMutex
	entries      []Entry
	next         Slot
	showNewlines bool
}

// New returns an empty Store.
func New() *Store {
	return &Store{}
}

// Offer appends text to the history unless it is already present.
// Membership is an exact string match — no trimming, no normalization.
// It returns the assigned slot and true for new text, and (0, false) with
// no side effect for a duplicate.
func (s *Store) Offer(text string) (Slot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if e.Text == text {
			return 0, false
		}
	}

	slot := s.next
	s.next++
	s.entries = append(s.entries, Entry{Text: text})
	return slot, true
}

// Get returns the entry for slot. Slots are positions at insertion time and
// remain valid until Clear discards them all at once.
func (s *Store) Get(slot Slot) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if slot < 0 || int(slot) >= len(s.entries) {
		return Entry{}, ErrNotFound
	}
	return s.entries[slot], nil
}

// Clear discards all entries and resets the slot counter. Idempotent.
// Callers that have handed slots to a view are responsible for rebuilding
// that view; the store issues no invalidation events.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	s.next = 0
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// All iterates over (slot, entry) pairs in insertion order. The sequence is
// restartable and ranges over a snapshot, so holding it across store
// mutations is safe.
func (s *Store) All() iter.Seq2[Slot, Entry] {
	s.mu.RLock()
	snapshot := make([]Entry, len(s.entries))
	copy(snapshot, s.entries)
	s.mu.RUnlock()

	return func(yield func(Slot, Entry) bool) {
		for i, e := range snapshot {
			if !yield(Slot(i), e) {
				return
			}
		}
	}
}

// SetShowNewlines updates the rendering preference. Stored text is never
// touched; the preference only feeds future Render calls.
func (s *Store) SetShowNewlines(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showNewlines = v
}

// ShowNewlines reports the current rendering preference.
func (s *Store) ShowNewlines() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.showNewlines
}
