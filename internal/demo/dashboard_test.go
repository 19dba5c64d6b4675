package demo

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hpackenc/internal/hpack"
)

func TestDashboardBroadcastsOccupancySamples(t *testing.T) {
	dashboard := NewDashboard(nil)
	server := httptest.NewServer(dashboard)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer client.Close()

	// Give the server goroutine a moment to register the client before
	// sampling; ClientCount polls instead of sleeping blindly.
	require.Eventually(t, func() bool {
		return dashboard.ClientCount() == 1
	}, time.Second, 10*time.Millisecond)

	enc := hpack.NewEncoder(hpack.DefaultMaxHeaderTableSize)
	dashboard.Sample(enc, time.Now())

	client.SetReadDeadline(time.Now().Add(time.Second))
	var sample Occupancy
	require.NoError(t, client.ReadJSON(&sample))
	assert.Equal(t, 0, sample.Entries)
	assert.Equal(t, uint32(hpack.DefaultMaxHeaderTableSize), sample.MaxSize)
}

func TestDashboardClientCountDropsOnDisconnect(t *testing.T) {
	dashboard := NewDashboard(nil)
	server := httptest.NewServer(dashboard)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return dashboard.ClientCount() == 1
	}, time.Second, 10*time.Millisecond)

	client.Close()

	require.Eventually(t, func() bool {
		return dashboard.ClientCount() == 0
	}, time.Second, 10*time.Millisecond)
}
