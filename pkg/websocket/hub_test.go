package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vyronex/pkg/logger"

	gws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func startHub(t *testing.T) (*Hub, *httptest.Server, func()) {
	t.Helper()

	hub := NewHub(Options{}, logger.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.ServeWS(w, r, "staff")
	}))

	return hub, server, func() {
		cancel()
		<-stopped
		server.Close()
	}
}

func dial(t *testing.T, server *httptest.Server) *gws.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := gws.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.ClientCount() == n }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_BroadcastReachesEveryClient(t *testing.T) {
	defer goleak.VerifyNone(t)

	hub, server, stop := startHub(t)
	defer stop()

	first := dial(t, server)
	defer first.Close()
	second := dial(t, server)
	defer second.Close()
	waitForClients(t, hub, 2)

	require.NoError(t, hub.Broadcast(context.Background(), "test_drive_booked", map[string]interface{}{"bookingId": "b-1"}))

	for _, conn := range []*gws.Conn{first, second} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)

		var msg Message
		require.NoError(t, json.Unmarshal(data, &msg))
		assert.Equal(t, "test_drive_booked", msg.Type)
		assert.Equal(t, "b-1", msg.Data["bookingId"])
	}
}

func TestHub_ClientDisconnectUnregisters(t *testing.T) {
	defer goleak.VerifyNone(t)

	hub, server, stop := startHub(t)
	defer stop()

	conn := dial(t, server)
	waitForClients(t, hub, 1)

	require.NoError(t, conn.Close())
	waitForClients(t, hub, 0)
}

func TestHub_StopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	hub, server, stop := startHub(t)

	conn := dial(t, server)
	defer conn.Close()
	waitForClients(t, hub, 1)

	stop()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err, "the server side closes the connection")

	err = hub.Broadcast(context.Background(), "late", nil)
	assert.ErrorIs(t, err, ErrHubClosed)
}
