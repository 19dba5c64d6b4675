package demo

import (
	"sync"

	"go.uber.org/zap"

	"hpackenc/internal/hpack"
	"hpackenc/internal/recovery"
)

// Connection is one simulated HTTP/2 connection in a fan-out run: its
// own Conn (and therefore its own dynamic table), so connections never
// share HPACK state, matching the one-encoder-per-connection
// constraint spec.md §5 puts on the real encoder.
type Connection struct {
	ID   int
	Conn *hpack.Conn
}

// FanoutResult is one connection's outcome from a Fanout run.
type FanoutResult struct {
	ConnectionID int
	Manifests    []*HeaderManifest
	Err          error
}

// Fanout drives the same sequence of header sets across n simulated
// connections concurrently, recovering any goroutine panic the way the
// teacher's connection-group manager did for its worker pool
// (internal/recovery.Recoverer), and returns one FanoutResult per
// connection in connection-ID order.
//
// This exists to exercise the encoder under concurrent, independent
// use — something a single-threaded unit test can't demonstrate — not
// to benchmark it; Stats() gives each connection's final dynamic-table
// occupancy for the dashboard to chart.
func Fanout(n int, maxHeaderTableSize uint32, headerSets [][]hpack.Header, logger *zap.Logger) []FanoutResult {
	if logger == nil {
		logger = zap.NewNop()
	}
	recoverer := recovery.NewRecoverer(logger, nil)

	results := make([]FanoutResult, n)
	var wg sync.WaitGroup
	wg.Add(n)

	for i := 0; i < n; i++ {
		go func(id int) {
			defer wg.Done()
			defer recoverer.RecoverWithCallback("demo.Fanout connection", func(p interface{}) {
				results[id].Err = &fanoutPanicError{connectionID: id, value: p}
			})

			conn := hpack.NewConn(maxHeaderTableSize, logger)
			results[id] = runConnection(id, conn, headerSets)
		}(i)
	}

	wg.Wait()
	return results
}

func runConnection(id int, conn *hpack.Conn, headerSets [][]hpack.Header) FanoutResult {
	manifests := make([]*HeaderManifest, 0, len(headerSets))

	for streamID, headers := range headerSets {
		wire, err := conn.EncodeHeaders(false, 0, headers)
		if err != nil {
			return FanoutResult{ConnectionID: id, Manifests: manifests, Err: err}
		}

		stats := conn.Stats()
		manifest := &HeaderManifest{
			StreamID:    uint32(streamID),
			Headers:     toManifestHeaders(headers),
			Wire:        wire,
			TableSize:   stats.CurrentSize,
			TableMax:    stats.MaxSize,
			TableInsert: stats.Inserts,
		}
		manifests = append(manifests, manifest)
	}

	return FanoutResult{ConnectionID: id, Manifests: manifests}
}

func toManifestHeaders(headers []hpack.Header) []Header {
	out := make([]Header, len(headers))
	for i, h := range headers {
		out[i] = Header{Name: h.Name, Value: h.Value}
	}
	return out
}

type fanoutPanicError struct {
	connectionID int
	value        interface{}
}

func (e *fanoutPanicError) Error() string {
	return "demo: connection panicked during fanout"
}
