package main

import (
	"fmt"

	"go.klb.dev/clipkeep/internal/ipc"
	"go.klb.dev/clipkeep/internal/message"
	"go.klb.dev/clipkeep/internal/wire"
)

// roundTrip dials the daemon, sends one request, and returns the response.
// An ERROR envelope from the daemon becomes a plain error.
func roundTrip(req *message.Message) (*message.Message, error) {
	conn, err := ipc.Dial()
	if err != nil {
		return nil, fmt.Errorf("no clipkeep daemon on %s (start one with \"clipkeep run\"): %w",
			ipc.SocketPath(), err)
	}
	wc := wire.New(conn)
	defer wc.Close()

	if err := wc.WriteMsg(req); err != nil {
		return nil, fmt.Errorf("send: %w", err)
	}
	resp, err := wc.ReadMsg()
	if err != nil {
		return nil, fmt.Errorf("receive: %w", err)
	}
	if resp.Type == message.TypeError {
		return nil, fmt.Errorf("%s", resp.Error)
	}
	return resp, nil
}

// fetchHistory retrieves the daemon's current history.
func fetchHistory() ([]message.HistoryItem, error) {
	resp, err := roundTrip(&message.Message{Type: message.TypeList})
	if err != nil {
		return nil, err
	}
	if resp.Type != message.TypeHistory {
		return nil, fmt.Errorf("unexpected response type %q", resp.Type)
	}
	return resp.Items, nil
}

// restoreSlot asks the daemon to put the entry for slot back on the clipboard.
func restoreSlot(slot int) error {
	_, err := roundTrip(&message.Message{Type: message.TypeRestore, Slot: slot})
	return err
}
