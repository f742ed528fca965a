// Package wsrouter dispatches websocket messages of the form {"type", "payload"}
// to handlers registered per message type.
package wsrouter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gorilla/websocket"
)

var (
	ErrUnknownMessageType = errors.New("unknown message type")
	ErrInvalidPayload     = errors.New("invalid payload")
)

type message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type HandlerFunc[T any] func(ctx context.Context, conn *websocket.Conn, payload T) error

type Middleware func(next HandlerFunc[any]) HandlerFunc[any]

// ErrorHandler receives every error a handler returns. Returning a non-nil error
// stops ServeConn.
type ErrorHandler func(ctx context.Context, conn *websocket.Conn, err error) error

type WSRouter struct {
	routes       map[string]HandlerFunc[any]
	middlewares  []Middleware
	errorHandler ErrorHandler
}

func New() *WSRouter {
	return &WSRouter{
		routes: make(map[string]HandlerFunc[any]),
		errorHandler: func(_ context.Context, _ *websocket.Conn, err error) error {
			return err
		},
	}
}

func (r *WSRouter) Use(mw ...Middleware) {
	r.middlewares = append(r.middlewares, mw...)
}

func (r *WSRouter) OnError(h ErrorHandler) {
	r.errorHandler = h
}

// Handle registers a handler whose payload is decoded into T before it is called.
func Handle[T any](r *WSRouter, messageType string, handler HandlerFunc[T]) {
	r.routes[messageType] = func(ctx context.Context, conn *websocket.Conn, payload any) error {
		raw, _ := payload.(json.RawMessage)

		var input T
		if len(raw) > 0 && string(raw) != "null" {
			if err := json.Unmarshal(raw, &input); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
			}
		}

		return handler(ctx, conn, input)
	}
}

// HandleRaw registers a handler that receives the undecoded payload.
func (r *WSRouter) HandleRaw(messageType string, handler HandlerFunc[json.RawMessage]) {
	Handle(r, messageType, handler)
}

func (r *WSRouter) Has(messageType string) bool {
	_, ok := r.routes[messageType]
	return ok
}

func (r *WSRouter) chain(h HandlerFunc[any]) HandlerFunc[any] {
	for i := len(r.middlewares) - 1; i >= 0; i-- {
		h = r.middlewares[i](h)
	}

	return h
}

// Dispatch routes one message. It is what ServeConn calls for every frame it reads.
func (r *WSRouter) Dispatch(ctx context.Context, conn *websocket.Conn, messageType string, payload json.RawMessage) error {
	ctx = context.WithValue(ctx, messageTypeKey, messageType)

	handler, ok := r.routes[messageType]
	if !ok {
		handler = func(context.Context, *websocket.Conn, any) error {
			return fmt.Errorf("%w: %q", ErrUnknownMessageType, messageType)
		}
	}

	return r.chain(handler)(ctx, conn, payload)
}

// ServeConn reads messages until the connection fails or the error handler gives up.
func (r *WSRouter) ServeConn(ctx context.Context, conn *websocket.Conn) error {
	for {
		var msg message
		if err := conn.ReadJSON(&msg); err != nil {
			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
				if err := r.errorHandler(ctx, conn, fmt.Errorf("%w: %v", ErrInvalidPayload, err)); err != nil {
					return err
				}
				continue
			}

			return err
		}

		if err := r.Dispatch(ctx, conn, msg.Type, msg.Payload); err != nil {
			if err := r.errorHandler(ctx, conn, err); err != nil {
				return err
			}
		}
	}
}
