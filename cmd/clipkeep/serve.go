package main

import (
	"errors"
	"io"
	"log/slog"
	"net"
	"time"

	"github.com/google/uuid"

	"go.klb.dev/clipkeep/internal/engine"
	"go.klb.dev/clipkeep/internal/history"
	"go.klb.dev/clipkeep/internal/message"
	"go.klb.dev/clipkeep/internal/wire"
)

// daemon serves the IPC surface on top of the engine.
type daemon struct {
	eng       *engine.Engine
	histPath  string
	version   string
	id        string // instance UUID, new on every start
	startedAt time.Time
}

func newDaemon(eng *engine.Engine, histPath, version string) *daemon {
	return &daemon{
		eng:       eng,
		histPath:  histPath,
		version:   version,
		id:        uuid.NewString(),
		startedAt: time.Now(),
	}
}

// serveLines accepts line-protocol connections until the listener closes.
func (d *daemon) serveLines(ln net.Listener) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		go d.handleConn(conn)
	}
}

// handleConn serves one CLI connection: a sequence of request/response
// message pairs until the client hangs up.
func (d *daemon) handleConn(conn net.Conn) {
	defer conn.Close()
	wc := wire.New(conn)

	for {
		msg, err := wc.ReadMsg()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				slog.Debug("ipc read failed", "err", err)
			}
			return
		}
		if err := wc.WriteMsg(d.handle(msg)); err != nil {
			slog.Debug("ipc write failed", "err", err)
			return
		}
	}
}

// handle dispatches a single request.
func (d *daemon) handle(msg *message.Message) *message.Message {
	switch msg.Type {
	case message.TypeList:
		return d.historyResponse()

	case message.TypeRestore:
		if _, err := d.eng.Restore(history.Slot(msg.Slot)); err != nil {
			if errors.Is(err, history.ErrNotFound) {
				return message.Errorf("slot %d not found", msg.Slot)
			}
			return message.Errorf("restore slot %d: %v", msg.Slot, err)
		}
		return &message.Message{Type: message.TypeOK}

	case message.TypeClear:
		d.eng.Clear()
		return &message.Message{Type: message.TypeOK}

	case message.TypeSet:
		if msg.ShowNewlines == nil {
			return message.Errorf("SET: missing show_newlines")
		}
		d.eng.Store().SetShowNewlines(*msg.ShowNewlines)
		slog.Info("preference updated", "show_newlines", *msg.ShowNewlines)
		return &message.Message{Type: message.TypeOK}

	case message.TypeStatus:
		return &message.Message{
			Type:   message.TypeStatusResponse,
			Status: d.statusInfo(),
		}

	default:
		return message.Errorf("unknown request type %q", msg.Type)
	}
}

// historyResponse renders the full history with the current preference.
// Rebuilt from the store on every request, so clients never see slots that
// did not survive a clear.
func (d *daemon) historyResponse() *message.Message {
	store := d.eng.Store()
	show := store.ShowNewlines()
	items := make([]message.HistoryItem, 0, store.Len())
	for slot, e := range store.All() {
		items = append(items, message.NewHistoryItem(
			int(slot),
			history.Render(e.Text, show),
			e.Text,
		))
	}
	return &message.Message{Type: message.TypeHistory, Items: items}
}

func (d *daemon) statusInfo() *message.StatusInfo {
	store := d.eng.Store()
	return &message.StatusInfo{
		ID:           d.id,
		Version:      d.version,
		Backend:      d.eng.Backend().Name(),
		Entries:      store.Len(),
		IntervalMS:   int(d.eng.Interval().Milliseconds()),
		ShowNewlines: store.ShowNewlines(),
		HistoryFile:  d.histPath,
		StartedAt:    d.startedAt,
	}
}
