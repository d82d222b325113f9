package main

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"

	"go.klb.dev/clipkeep/internal/history"
)

// serveHTTP runs a read-only HTTP/1.1 debug surface on ln:
//
//	curl --unix-socket $XDG_RUNTIME_DIR/clipkeep.sock http://clipkeep/status
//	curl --unix-socket $XDG_RUNTIME_DIR/clipkeep.sock http://clipkeep/history
func (d *daemon) serveHTTP(ln net.Listener) {
	r := chi.NewRouter()
	r.Get("/status", d.httpStatus)
	r.Get("/history", d.httpHistory)

	srv := &http.Server{Handler: r}
	_ = srv.Serve(ln)
}

func (d *daemon) httpStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, d.statusInfo())
}

type historyJSON struct {
	Slot  int    `json:"slot"`
	Label string `json:"label"`
	Text  string `json:"text"`
}

func (d *daemon) httpHistory(w http.ResponseWriter, _ *http.Request) {
	store := d.eng.Store()
	show := store.ShowNewlines()
	out := make([]historyJSON, 0, store.Len())
	for slot, e := range store.All() {
		out = append(out, historyJSON{
			Slot:  int(slot),
			Label: history.Render(e.Text, show),
			Text:  e.Text,
		})
	}
	writeJSON(w, out)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
