package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUpgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// dialTestConn spins up a server that registers the upgraded connection for
// the user and returns the client end.
func dialTestConn(t *testing.T, mgr *Manager, userID string) *websocket.Conn {
	t.Helper()

	registered := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		mgr.Register(userID, conn)
		close(registered)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	select {
	case <-registered:
	case <-time.After(2 * time.Second):
		t.Fatal("connection was never registered")
	}
	return client
}

func TestManager_NotifyUserDeliversToOwnerOnly(t *testing.T) {
	mgr := NewManager()

	aliceConn := dialTestConn(t, mgr, "alice")
	bobConn := dialTestConn(t, mgr, "bob")

	mgr.NotifyUser("alice", []byte(`{"type":"plan_created"}`))

	require.NoError(t, aliceConn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := aliceConn.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(payload), "plan_created")

	// Bob gets nothing; his read times out.
	require.NoError(t, bobConn.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err = bobConn.ReadMessage()
	assert.Error(t, err)
}

func TestManager_ConnectedUsers(t *testing.T) {
	mgr := NewManager()
	assert.Empty(t, mgr.ConnectedUsers())
	assert.False(t, mgr.IsConnected("alice"))

	dialTestConn(t, mgr, "alice")
	assert.True(t, mgr.IsConnected("alice"))
	assert.Equal(t, []string{"alice"}, mgr.ConnectedUsers())
}

func TestManager_NotifyUnknownUserIsNoop(t *testing.T) {
	mgr := NewManager()
	// Should not panic or block.
	mgr.NotifyUser("nobody", []byte("x"))
}
