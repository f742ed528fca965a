package wsrouter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reply struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type echoInput struct {
	Text string `json:"text"`
}

func newTestServer(t *testing.T, r *WSRouter) *websocket.Conn {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		conn, err := upgrader.Upgrade(w, req, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		r.ServeConn(req.Context(), conn)
	}))
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	return conn
}

func TestServeConn(t *testing.T) {
	r := New()

	var (
		mu   sync.Mutex
		seen []string
	)
	r.Use(func(next HandlerFunc[any]) HandlerFunc[any] {
		return func(ctx context.Context, conn *websocket.Conn, payload any) error {
			mu.Lock()
			seen = append(seen, GetMessageTypeFromCtx(ctx))
			mu.Unlock()
			return next(ctx, conn, payload)
		}
	})
	r.OnError(func(_ context.Context, conn *websocket.Conn, err error) error {
		return conn.WriteJSON(reply{Type: "ERROR", Payload: err.Error()})
	})

	Handle(r, "ECHO", func(_ context.Context, conn *websocket.Conn, input echoInput) error {
		return conn.WriteJSON(reply{Type: "ECHO", Payload: input.Text})
	})
	Handle(r, "FAIL", func(context.Context, *websocket.Conn, struct{}) error {
		return errors.New("handler failed")
	})

	conn := newTestServer(t, r)

	var got reply
	require.NoError(t, conn.WriteJSON(map[string]any{"type": "ECHO", "payload": map[string]string{"text": "hi"}}))
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, reply{Type: "ECHO", Payload: "hi"}, got)

	require.NoError(t, conn.WriteJSON(map[string]any{"type": "NOPE"}))
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, "ERROR", got.Type)
	assert.Contains(t, got.Payload, ErrUnknownMessageType.Error())

	require.NoError(t, conn.WriteJSON(map[string]any{"type": "ECHO", "payload": map[string]int{"text": 1}}))
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, "ERROR", got.Type)
	assert.Contains(t, got.Payload, ErrInvalidPayload.Error())

	require.NoError(t, conn.WriteJSON(map[string]any{"type": "FAIL"}))
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, reply{Type: "ERROR", Payload: "handler failed"}, got)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, "ERROR", got.Type)

	require.NoError(t, conn.WriteJSON(map[string]any{"type": "ECHO", "payload": map[string]string{"text": "still alive"}}))
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, "still alive", got.Payload)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"ECHO", "NOPE", "ECHO", "FAIL", "ECHO"}, seen)
}

func TestMiddlewareOrder(t *testing.T) {
	r := New()

	var order []string
	mw := func(name string) Middleware {
		return func(next HandlerFunc[any]) HandlerFunc[any] {
			return func(ctx context.Context, conn *websocket.Conn, payload any) error {
				order = append(order, name)
				return next(ctx, conn, payload)
			}
		}
	}
	r.Use(mw("first"), mw("second"))
	Handle(r, "PING", func(context.Context, *websocket.Conn, struct{}) error {
		order = append(order, "handler")
		return nil
	})

	require.NoError(t, r.Dispatch(context.Background(), nil, "PING", nil))
	assert.Equal(t, []string{"first", "second", "handler"}, order)
	assert.True(t, r.Has("PING"))
	assert.False(t, r.Has("PONG"))
}
