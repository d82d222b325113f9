package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/soheilhy/cmux"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/clipkeep/internal/clip"
	"go.klb.dev/clipkeep/internal/engine"
	"go.klb.dev/clipkeep/internal/histfile"
	"go.klb.dev/clipkeep/internal/history"
	"go.klb.dev/clipkeep/internal/ipc"
)

func newRunCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the clipboard history daemon",
		Long: `Starts the clipkeep daemon. It polls the system clipboard, records every
distinct text, and serves the IPC socket used by the other sub-commands.

History is loaded from the history file at startup and written back on
shutdown. A corrupt history file is reported once and the daemon starts
with an empty history.

Config file search order:
  /etc/clipkeep/clipkeep.toml
  $HOME/.config/clipkeep/clipkeep.toml
  path supplied via --config

Precedence (lowest → highest): defaults → config file → CLIPKEEP_* env vars → flags`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runDaemon(v) },
	}

	f := cmd.Flags()
	f.Duration("interval", engine.DefaultInterval, "clipboard poll interval")
	f.String("history-file", histfile.DefaultPath(), "history file path")
	f.Bool("show-newlines", false, "keep newlines in history labels")
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runDaemon(v *viper.Viper) error {
	setupLogging(v)

	interval := v.GetDuration("interval")
	histPath := v.GetString("history-file")

	store := history.New()
	store.SetShowNewlines(v.GetBool("show-newlines"))

	texts, err := histfile.Load(histPath)
	switch {
	case errors.Is(err, histfile.ErrCorrupt):
		// Reported once; the daemon still starts, with empty history.
		// The file is replaced on the next successful save.
		slog.Warn("history file corrupt, starting empty", "path", histPath, "err", err)
	case err != nil:
		return fmt.Errorf("load history: %w", err)
	default:
		replayHistory(store, texts)
	}

	backend := clip.New()
	defer backend.Close()

	eng := engine.New(store, backend, interval)
	eng.OnEntry = func(slot history.Slot, e history.Entry) {
		slog.Info("clipboard captured",
			"slot", slot,
			"label", history.Render(e.Text, store.ShowNewlines()),
		)
	}

	slog.Info("clipkeep starting",
		"version", Version,
		"backend", backend.Name(),
		"interval", interval,
		"history_file", histPath,
		"entries", store.Len(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pollDone := make(chan struct{})
	go func() {
		eng.Run(ctx)
		close(pollDone)
	}()

	d := newDaemon(eng, histPath, Version)

	ln, err := ipc.Listen()
	if err != nil {
		return fmt.Errorf("ipc listen: %w", err)
	}
	defer os.Remove(ipc.SocketPath())
	slog.Info("IPC socket listening", "path", ipc.SocketPath())

	// One socket, two protocols: HTTP/1.1 for curl --unix-socket debugging,
	// everything else is the newline-delimited JSON protocol.
	mux := cmux.New(ln)
	httpLn := mux.Match(cmux.HTTP1Fast())
	lineLn := mux.Match(cmux.Any())

	go d.serveHTTP(httpLn)
	go d.serveLines(lineLn)
	go func() {
		if err := mux.Serve(); err != nil && ctx.Err() == nil {
			slog.Error("ipc serve failed", "err", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")
	_ = ln.Close()

	// Wait for the poll loop to finish so a tick in flight cannot Offer
	// after the save snapshot is taken.
	<-pollDone

	// Save-on-quit is a hard requirement: the final save completes before
	// the process exits.
	if err := saveHistory(store, histPath); err != nil {
		slog.Error("final history save failed", "err", err, "path", histPath)
		return err
	}
	slog.Info("history saved", "path", histPath, "entries", store.Len())
	return nil
}

// replayHistory feeds saved texts through the store in original order.
// Slots are reassigned from 0; duplicates within the file collapse to one
// entry, the dedup invariant applying on replay exactly as during capture.
func replayHistory(store *history.Store, texts []string) {
	for _, text := range texts {
		store.Offer(text)
	}
}

// saveHistory snapshots the store in insertion order and writes it out.
func saveHistory(store *history.Store, path string) error {
	texts := make([]string, 0, store.Len())
	for _, e := range store.All() {
		texts = append(texts, e.Text)
	}
	return histfile.Save(path, texts)
}
