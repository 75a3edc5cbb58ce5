package http_test

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"orderdesk/internal/adapters/out/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"
)

type wsFrame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func dialDashboard(t *testing.T, fixture *serverFixture, token string) (*websocket.Conn, func()) {
	t.Helper()

	server := httptest.NewServer(fixture.echo)
	wsURL := strings.Replace(server.URL, "http", "ws", 1) + "/api/admin/ws?token=" + token

	conn, err := websocket.Dial(wsURL, "", server.URL)
	require.NoError(t, err)

	return conn, func() {
		_ = conn.Close()
		server.Close()
	}
}

func readFrame(t *testing.T, conn *websocket.Conn) wsFrame {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var frame wsFrame
	require.NoError(t, json.NewDecoder(conn).Decode(&frame))
	return frame
}

func TestDashboard_StreamsPublishedEvents(t *testing.T) {
	fixture := newServerFixture(t)
	conn, cleanup := dialDashboard(t, fixture, fixture.adminToken(t))
	defer cleanup()

	// Give the handler a moment to join the group before publishing.
	time.Sleep(50 * time.Millisecond)
	fixture.hub.Publish(notify.DashboardGroup, notify.Event{
		Kind: notify.EventStats,
		Data: map[string]int{"total": 3},
	})

	frame := readFrame(t, conn)
	assert.Equal(t, notify.EventStats, frame.Event)
	assert.Contains(t, string(frame.Data), `"total":3`)
}

func TestDashboard_ReceivesOrderLifecycleEvents(t *testing.T) {
	fixture := newServerFixture(t)
	conn, cleanup := dialDashboard(t, fixture, fixture.adminToken(t))
	defer cleanup()

	// Let the connection join before the submission fires its event.
	time.Sleep(50 * time.Millisecond)

	body := `{
		"customerName": "Alice Smith",
		"phoneNumber": "555-0100",
		"address": "1 Main St",
		"items": [{"name": "Margherita", "quantity": 2, "price": 9.5}],
		"totalAmount": 19.0
	}`
	rec := fixture.request(t, nethttp.MethodPost, "/api/orders", body, "")
	require.Equal(t, nethttp.StatusCreated, rec.Code)

	frame := readFrame(t, conn)
	assert.Equal(t, notify.EventCreated, frame.Event)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(frame.Data, &payload))
	assert.Equal(t, "Alice Smith", payload["customerName"])
	assert.Equal(t, "pending", payload["status"])
}

func TestDashboard_WithoutToken_Rejected(t *testing.T) {
	fixture := newServerFixture(t)
	server := httptest.NewServer(fixture.echo)
	defer server.Close()

	wsURL := strings.Replace(server.URL, "http", "ws", 1) + "/api/admin/ws"
	_, err := websocket.Dial(wsURL, "", server.URL)
	require.Error(t, err)
}
