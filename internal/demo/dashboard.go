package demo

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"hpackenc/internal/hpack"
)

// Occupancy is one dynamic-table occupancy sample, pushed to every
// connected dashboard client whenever Dashboard.Sample is called.
type Occupancy struct {
	At        time.Time `json:"at"`
	Entries   int       `json:"entries"`
	Size      uint32    `json:"size"`
	MaxSize   uint32    `json:"max_size"`
	Inserts   uint64    `json:"inserts"`
	Evictions uint64    `json:"evictions"`
}

// Dashboard serves a websocket endpoint that streams TableStats
// snapshots from a live Conn, for the `hpackc serve` command. It is
// observability plumbing only: nothing about encoding correctness
// depends on it running.
type Dashboard struct {
	upgrader websocket.Upgrader
	logger   *zap.Logger

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewDashboard creates a Dashboard. A nil logger is replaced with
// zap.NewNop().
func NewDashboard(logger *zap.Logger) *Dashboard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dashboard{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Demo-only endpoint with no cross-site credential exposure;
			// accepting any origin keeps the CLI's local `serve` command
			// usable from a plain browser tab without extra flags.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger:  logger,
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// ServeHTTP upgrades the request to a websocket and registers the
// connection to receive future Sample broadcasts until it disconnects.
func (d *Dashboard) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := d.upgrader.Upgrade(w, r, nil)
	if err != nil {
		d.logger.Warn("dashboard: websocket upgrade failed", zap.Error(err))
		return
	}

	d.mu.Lock()
	d.clients[conn] = struct{}{}
	d.mu.Unlock()

	// Drain and discard reads so the client's pong frames (and any
	// close) are observed; this connection is push-only otherwise.
	go func() {
		defer d.disconnect(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (d *Dashboard) disconnect(conn *websocket.Conn) {
	d.mu.Lock()
	delete(d.clients, conn)
	d.mu.Unlock()
	conn.Close()
}

// Sample reads stats off enc and broadcasts an Occupancy snapshot to
// every connected client, dropping any client whose write fails.
func (d *Dashboard) Sample(enc *hpack.Encoder, at time.Time) {
	stats := enc.Stats()
	sample := Occupancy{
		At:        at,
		Entries:   stats.Entries,
		Size:      stats.CurrentSize,
		MaxSize:   stats.MaxSize,
		Inserts:   stats.Inserts,
		Evictions: stats.Evictions,
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for conn := range d.clients {
		if err := conn.WriteJSON(sample); err != nil {
			d.logger.Debug("dashboard: dropping client after write error", zap.Error(err))
			go d.disconnect(conn)
		}
	}
}

// ClientCount reports how many dashboard clients are currently
// connected.
func (d *Dashboard) ClientCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.clients)
}
