package events

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubBroadcastsToConnectedClients(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewHub()

	r := gin.New()
	r.GET("/events/ws", hub.Handler)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/events/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	// registration races the dial returning; give the handler a beat
	time.Sleep(50 * time.Millisecond)

	hub.Publish("order_created", map[string]any{"id": 1})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(data, &env))
	assert.Equal(t, "order_created", env.Event)
}

func TestPublishWithoutClientsIsSafe(t *testing.T) {
	hub := NewHub()
	hub.Publish("milestone_crossed", map[string]any{"ecoPoints": 510})
}
