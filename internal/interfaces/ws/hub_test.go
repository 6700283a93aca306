package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/backoffice-api/internal/infrastructure/changefeed"
	"github.com/invorya/backoffice-api/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func startHub(t *testing.T) (*Hub, *changefeed.Feed, string, context.CancelFunc) {
	t.Helper()
	feed := changefeed.New()
	hub := NewHub(feed, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	srv := httptest.NewServer(http.HandlerFunc(hub.HandleWebSocket))
	t.Cleanup(srv.Close)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	return hub, feed, wsURL, cancel
}

func TestHub_ClienteRecibeEventosDelChangefeed(t *testing.T) {
	hub, feed, wsURL, cancel := startHub(t)
	defer cancel()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 },
		time.Second, 10*time.Millisecond)

	feed.Publish(changefeed.Event{
		Table:     "companies",
		Action:    "UPDATE",
		CompanyID: "c1",
	})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg Message
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, "change", msg.Type)

	payload, ok := msg.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "companies", payload["Table"])
	assert.Equal(t, "c1", payload["CompanyID"])
}

func TestHub_BroadcastLlegaATodosLosClientes(t *testing.T) {
	hub, _, wsURL, cancel := startHub(t)
	defer cancel()

	c1, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer c1.Close()
	c2, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer c2.Close()

	require.Eventually(t, func() bool { return hub.ClientCount() == 2 },
		time.Second, 10*time.Millisecond)

	hub.Broadcast(Message{Type: "change", Data: map[string]string{"hello": "world"}})

	for _, conn := range []*websocket.Conn{c1, c2} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.Contains(t, string(data), "hello")
	}
}

func TestHub_DesconexionDelClienteLoDaDeBaja(t *testing.T) {
	hub, _, wsURL, cancel := startHub(t)
	defer cancel()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 },
		time.Second, 10*time.Millisecond)

	conn.Close()

	require.Eventually(t, func() bool { return hub.ClientCount() == 0 },
		time.Second, 10*time.Millisecond)
}
