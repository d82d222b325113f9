package main

import (
	"strings"
	"testing"
	"time"

	"go.klb.dev/clipkeep/internal/clip"
	"go.klb.dev/clipkeep/internal/engine"
	"go.klb.dev/clipkeep/internal/history"
	"go.klb.dev/clipkeep/internal/message"
)

// stubClipboard records writes and never has anything to read.
type stubClipboard struct {
	writes []string
}

func (s *stubClipboard) Name() string          { return "stub" }
func (s *stubClipboard) Read() (string, error) { return "", clip.ErrNoText }
func (s *stubClipboard) Write(text string) error {
	s.writes = append(s.writes, text)
	return nil
}
func (s *stubClipboard) Close() {}

func testDaemon(t *testing.T) (*daemon, *stubClipboard) {
	t.Helper()
	sc := &stubClipboard{}
	eng := engine.New(history.New(), sc, time.Second)
	return newDaemon(eng, "/tmp/history.jsonl", "test"), sc
}

func TestHandleList(t *testing.T) {
	d, _ := testDaemon(t)
	d.eng.Store().Offer("hello")
	d.eng.Store().Offer("line1\nline2")

	resp := d.handle(&message.Message{Type: message.TypeList})
	if resp.Type != message.TypeHistory {
		t.Fatalf("type: got %q, want HISTORY", resp.Type)
	}
	if len(resp.Items) != 2 {
		t.Fatalf("items: got %d, want 2", len(resp.Items))
	}
	if resp.Items[0].Slot != 0 || resp.Items[0].Label != "hello" {
		t.Errorf("item 0: got (%d, %q), want (0, hello)", resp.Items[0].Slot, resp.Items[0].Label)
	}
	// Default preference collapses newlines in labels but not in payloads.
	if resp.Items[1].Label != "line1 line2" {
		t.Errorf("item 1 label: got %q, want %q", resp.Items[1].Label, "line1 line2")
	}
	text, err := resp.Items[1].Text()
	if err != nil || text != "line1\nline2" {
		t.Errorf("item 1 text: got (%q, %v), want (line1\\nline2, nil)", text, err)
	}
}

func TestHandleRestore(t *testing.T) {
	d, sc := testDaemon(t)
	slot, _ := d.eng.Store().Offer("bring me back")

	resp := d.handle(&message.Message{Type: message.TypeRestore, Slot: int(slot)})
	if resp.Type != message.TypeOK {
		t.Fatalf("type: got %q (%s), want OK", resp.Type, resp.Error)
	}
	if len(sc.writes) != 1 || sc.writes[0] != "bring me back" {
		t.Errorf("clipboard writes: got %q", sc.writes)
	}
}

func TestHandleRestoreStaleSlot(t *testing.T) {
	d, sc := testDaemon(t)
	slot, _ := d.eng.Store().Offer("gone")
	d.handle(&message.Message{Type: message.TypeClear})

	resp := d.handle(&message.Message{Type: message.TypeRestore, Slot: int(slot)})
	if resp.Type != message.TypeError {
		t.Fatalf("type: got %q, want ERROR", resp.Type)
	}
	if !strings.Contains(resp.Error, "not found") {
		t.Errorf("error: got %q, want a not-found message", resp.Error)
	}
	if len(sc.writes) != 0 {
		t.Error("clipboard written despite stale slot")
	}
}

func TestHandleClearResetsSlots(t *testing.T) {
	d, _ := testDaemon(t)
	d.eng.Store().Offer("a")
	d.eng.Store().Offer("b")

	if resp := d.handle(&message.Message{Type: message.TypeClear}); resp.Type != message.TypeOK {
		t.Fatalf("clear: got %q, want OK", resp.Type)
	}

	// The next capture starts over at slot 0, and LIST reflects it.
	d.eng.Store().Offer("fresh")
	resp := d.handle(&message.Message{Type: message.TypeList})
	if len(resp.Items) != 1 || resp.Items[0].Slot != 0 {
		t.Errorf("after clear: got %+v, want one item at slot 0", resp.Items)
	}
}

func TestHandleSetShowNewlines(t *testing.T) {
	d, _ := testDaemon(t)
	d.eng.Store().Offer("a\nb")

	on := true
	if resp := d.handle(&message.Message{Type: message.TypeSet, ShowNewlines: &on}); resp.Type != message.TypeOK {
		t.Fatalf("set: got %q, want OK", resp.Type)
	}
	resp := d.handle(&message.Message{Type: message.TypeList})
	if resp.Items[0].Label != "a\nb" {
		t.Errorf("label with show-newlines on: got %q, want %q", resp.Items[0].Label, "a\nb")
	}

	if resp := d.handle(&message.Message{Type: message.TypeSet}); resp.Type != message.TypeError {
		t.Errorf("set without value: got %q, want ERROR", resp.Type)
	}
}

func TestHandleStatus(t *testing.T) {
	d, _ := testDaemon(t)
	d.eng.Store().Offer("x")

	resp := d.handle(&message.Message{Type: message.TypeStatus})
	if resp.Type != message.TypeStatusResponse || resp.Status == nil {
		t.Fatalf("got %q (status=%v), want STATUS_RESPONSE", resp.Type, resp.Status)
	}
	st := resp.Status
	if st.Backend != "stub" || st.Entries != 1 || st.Version != "test" {
		t.Errorf("status: got %+v", st)
	}
	if st.ID == "" {
		t.Error("status: empty instance id")
	}
	if st.IntervalMS != 1000 {
		t.Errorf("interval: got %d, want 1000", st.IntervalMS)
	}
}

func TestHandleUnknownType(t *testing.T) {
	d, _ := testDaemon(t)
	if resp := d.handle(&message.Message{Type: "BOGUS"}); resp.Type != message.TypeError {
		t.Errorf("unknown type: got %q, want ERROR", resp.Type)
	}
}
