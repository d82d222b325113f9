// Package message defines the clipkeep IPC protocol.
//
// All messages are newline-delimited JSON. Entry payloads are base64-encoded
// so that text with embedded newlines is safe inside the line framing.
// Each message is exactly one line: <json>\n
package message

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"
)

// Type identifies the kind of message.
type Type string

const (
	// Requests (CLI → daemon).
	TypeList    Type = "LIST"
	TypeRestore Type = "RESTORE"
	TypeClear   Type = "CLEAR"
	TypeStatus  Type = "STATUS"
	TypeSet     Type = "SET"

	// Responses (daemon → CLI).
	TypeHistory        Type = "HISTORY"
	TypeOK             Type = "OK"
	TypeStatusResponse Type = "STATUS_RESPONSE"
	TypeError          Type = "ERROR"
)

// HistoryItem is one history entry on the wire: its slot, the rendered
// display label, and the raw text (base64-encoded).
type HistoryItem struct {
	Slot  int    `json:"slot"`
	Label string `json:"label"`
	Data  string `json:"data"` // base64-encoded raw text
}

// NewHistoryItem builds a HistoryItem from plain text.
func NewHistoryItem(slot int, label, text string) HistoryItem {
	return HistoryItem{
		Slot:  slot,
		Label: label,
		Data:  base64.StdEncoding.EncodeToString([]byte(text)),
	}
}

// Text returns the decoded raw text of the item.
func (it HistoryItem) Text() (string, error) {
	b, err := base64.StdEncoding.DecodeString(it.Data)
	if err != nil {
		return "", fmt.Errorf("history item decode: %w", err)
	}
	return string(b), nil
}

// StatusInfo carries daemon metadata, used in STATUS_RESPONSE.
type StatusInfo struct {
	ID           string    `json:"id"` // instance UUID, new on every start
	Version      string    `json:"version"`
	Backend      string    `json:"backend"`
	Entries      int       `json:"entries"`
	IntervalMS   int       `json:"interval_ms"`
	ShowNewlines bool      `json:"show_newlines"`
	HistoryFile  string    `json:"history_file"`
	StartedAt    time.Time `json:"started_at"`
}

// Message is the top-level wire envelope.
type Message struct {
	// Always present
	Type Type `json:"type"`

	// RESTORE — the slot to resolve. Never omitted: slot 0 is valid.
	Slot int `json:"slot"`

	// SET — update the label rendering preference.
	ShowNewlines *bool `json:"show_newlines,omitempty"`

	// HISTORY
	Items []HistoryItem `json:"items,omitempty"`

	// STATUS_RESPONSE
	Status *StatusInfo `json:"status,omitempty"`

	// ERROR
	Error string `json:"error,omitempty"`
}

// Encode serialises the message to JSON without a trailing newline.
func (m *Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// Decode deserialises a message from raw JSON bytes.
func Decode(b []byte) (*Message, error) {
	var m Message
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("message decode: %w", err)
	}
	return &m, nil
}

// Errorf builds an ERROR response.
func Errorf(format string, args ...any) *Message {
	return &Message{Type: TypeError, Error: fmt.Sprintf(format, args...)}
}
