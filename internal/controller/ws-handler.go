package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sharetube/roomdecor/internal/codec"
	"github.com/sharetube/roomdecor/internal/domain"
	"github.com/sharetube/roomdecor/internal/state"
	"github.com/sharetube/roomdecor/pkg/ctxlogger"
	"github.com/sharetube/roomdecor/pkg/wsrouter"
)

const (
	MessageGetState = "GET_STATE"
	MessageShare    = "SHARE"

	OutputState     = "STATE"
	OutputShareLink = "SHARE_LINK"
	OutputError     = "ERROR"
)

type Output struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type errorOutput struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type EmptyInput struct{}

// session opens an editing session, hydrated from the room token when one is given.
func (c controller) session(w http.ResponseWriter, r *http.Request) {
	sessionID := c.generateTimeBasedId()
	ctx := ctxlogger.AppendCtx(r.Context(), slog.String("session_id", sessionID))

	conn, err := c.upgrader.Upgrade(w, r, nil)
	if err != nil {
		c.logger.WarnContext(ctx, "failed to upgrade to websocket", "error", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	initial := state.NewSession()
	initial.Page = domain.SanitizePage(r.URL.Query().Get("page"))

	if token := r.URL.Query().Get(c.codec.Param()); token != "" {
		action, err := state.NewAction(state.ActionHydrate, state.HydratePayload{Token: token})
		if err == nil {
			initial, err = c.reducer.Reduce(ctx, initial, action)
		}
		if err != nil {
			c.logger.WarnContext(ctx, "failed to hydrate session", "error", err)
		}
	}

	sess := newWSSession(sessionID, conn, initial)
	defer sess.close()

	c.logger.InfoContext(ctx, "session opened")
	if err := sess.writeJSON(&Output{Type: OutputState, Payload: initial}); err != nil {
		c.logger.WarnContext(ctx, "failed to write initial state", "error", err)
		return
	}

	if err := c.wsmux.ServeConn(withSession(ctx, sess), conn); err != nil {
		if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			c.logger.InfoContext(ctx, "session closed")
			return
		}
		c.logger.InfoContext(ctx, "session ended", "error", err)
	}
}

func (c controller) handleGetState(ctx context.Context, _ *websocket.Conn, _ EmptyInput) error {
	sess := c.getSessionFromCtx(ctx)

	return sess.writeJSON(&Output{Type: OutputState, Payload: sess.snapshot()})
}

type ShareInput struct {
	Page string `json:"page"`
}

func (c controller) handleShare(ctx context.Context, _ *websocket.Conn, input ShareInput) error {
	sess := c.getSessionFromCtx(ctx)
	snapshot := sess.snapshot()

	page := snapshot.Page
	if input.Page != "" {
		page = domain.SanitizePage(input.Page)
	}

	resp, err := c.shareLink(&snapshot.Room, page)
	if err != nil {
		return fmt.Errorf("failed to share room: %w", err)
	}

	return sess.writeJSON(&Output{Type: OutputShareLink, Payload: resp})
}

// handleAction returns the handler that feeds one action type through the reducer.
func (c controller) handleAction(t state.ActionType) wsrouter.HandlerFunc[json.RawMessage] {
	return func(ctx context.Context, _ *websocket.Conn, payload json.RawMessage) error {
		sess := c.getSessionFromCtx(ctx)

		next, started, err := sess.apply(ctx, c.reducer, state.Action{Type: t, Payload: payload})
		if err != nil {
			return err
		}

		if err := sess.writeJSON(&Output{Type: OutputState, Payload: next}); err != nil {
			return err
		}

		if started != nil {
			c.fetchPreview(ctx, sess, *started)
		}

		return nil
	}
}

// fetchPreview looks up a fresh preview for song in the background. A newer song
// change cancels it, and the reducer drops it if song is no longer current.
func (c controller) fetchPreview(ctx context.Context, sess *wsSession, song domain.Song) {
	ctx, cancel := context.WithCancel(ctx)
	sess.trackPreview(cancel)

	go func() {
		defer cancel()

		cover, err := c.coverService.LookupPreview(ctx, song.Name, song.Artist)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				c.logger.WarnContext(ctx, "failed to fetch preview", "song_id", song.ID, "error", err)
			}
			return
		}
		if cover.Preview == "" || ctx.Err() != nil {
			return
		}

		action, err := state.NewAction(state.ActionSetPreview, state.SetPreviewPayload{SongID: song.ID, URL: cover.Preview})
		if err != nil {
			return
		}

		next, _, err := sess.apply(ctx, c.reducer, action)
		if err != nil {
			c.logger.WarnContext(ctx, "failed to apply preview", "song_id", song.ID, "error", err)
			return
		}

		if err := sess.writeJSON(&Output{Type: OutputState, Payload: next}); err != nil {
			c.logger.DebugContext(ctx, "failed to write preview state", "error", err)
		}
	}()
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, wsrouter.ErrUnknownMessageType), errors.Is(err, state.ErrUnknownAction):
		return "UNKNOWN_ACTION"
	case errors.Is(err, wsrouter.ErrInvalidPayload), errors.Is(err, state.ErrInvalidPayload):
		return "INVALID_PAYLOAD"
	case errors.Is(err, state.ErrInvalidColor):
		return "INVALID_COLOR"
	case errors.Is(err, state.ErrNotInCatalog):
		return "NOT_IN_CATALOG"
	case errors.Is(err, state.ErrIndexOutOfRange):
		return "INDEX_OUT_OF_RANGE"
	case errors.Is(err, state.ErrNoDraft):
		return "NO_DRAFT"
	case errors.Is(err, state.ErrPlaylistLimitReached):
		return "PLAYLIST_LIMIT_REACHED"
	case errors.Is(err, state.ErrSongsLimitReached):
		return "SONGS_LIMIT_REACHED"
	case errors.Is(err, codec.ErrTokenTooLarge):
		return "TOKEN_TOO_LARGE"
	default:
		return "INTERNAL"
	}
}

// writeError reports a failed message to the client and keeps the session going.
func (c controller) writeError(ctx context.Context, _ *websocket.Conn, err error) error {
	c.logger.InfoContext(ctx, "websocket message failed", "error", err)

	sess := c.getSessionFromCtx(ctx)
	if sess == nil {
		return err
	}

	return sess.writeJSON(&Output{
		Type: OutputError,
		Payload: errorOutput{
			Code:    errorCode(err),
			Message: err.Error(),
		},
	})
}
