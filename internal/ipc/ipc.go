// Package ipc provides the local Unix-socket channel that CLI sub-commands
// (list/restore/clear/status/pick) use to talk to a running clipkeep daemon.
//
// The daemon listens on the socket; sub-commands probe for it with
// IsRunning. The socket carries two protocols, split by cmux on the daemon
// side: newline-delimited JSON messages, and plain HTTP/1.1 for debugging
// with curl --unix-socket.
package ipc

import (
	"net"
	"os"
	"path/filepath"
)

// SocketPath returns the path for the IPC socket.
//
//	$CLIPKEEP_SOCKET               — explicit override
//	$XDG_RUNTIME_DIR/clipkeep.sock
//	$TMPDIR/clipkeep.sock          — fallback
func SocketPath() string {
	if s := os.Getenv("CLIPKEEP_SOCKET"); s != "" {
		return s
	}
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, "clipkeep.sock")
	}
	return filepath.Join(os.TempDir(), "clipkeep.sock")
}

// IsRunning reports whether a clipkeep daemon appears to be listening on the
// IPC socket. It does a cheap dial-and-close; no data is exchanged.
func IsRunning() bool {
	c, err := net.Dial("unix", SocketPath())
	if err != nil {
		return false
	}
	_ = c.Close()
	return true
}

// Listen creates and returns a net.Listener on the IPC socket path, removing
// any stale socket file first. The socket is restricted to the owning user:
// it hands out the full clipboard history.
func Listen() (net.Listener, error) {
	path := SocketPath()
	// Remove stale socket from a previous (crashed) run.
	_ = os.Remove(path)
	ln, err := net.Listen("unix", path)
	if err != nil {
		return nil, err
	}
	if err := os.Chmod(path, 0o600); err != nil {
		_ = ln.Close()
		return nil, err
	}
	return ln, nil
}

// Dial connects to the IPC socket.
func Dial() (net.Conn, error) {
	return net.Dial("unix", SocketPath())
}
