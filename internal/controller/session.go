package controller

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sharetube/roomdecor/internal/domain"
	"github.com/sharetube/roomdecor/internal/state"
)

// wsSession is one user's editing session bound to a websocket connection.
type wsSession struct {
	id   string
	conn *websocket.Conn

	mu            sync.Mutex
	state         state.Session
	cancelPreview context.CancelFunc

	// gorilla connections allow one concurrent writer.
	writeMu sync.Mutex
}

func newWSSession(id string, conn *websocket.Conn, s state.Session) *wsSession {
	return &wsSession{
		id:    id,
		conn:  conn,
		state: s,
	}
}

func (s *wsSession) snapshot() state.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Clone()
}

func currentSongID(s *state.Session) string {
	if s.Player.Current == nil {
		return ""
	}

	return s.Player.Current.Song.ID
}

// apply reduces a into the session. It returns the new state and the song that
// became current, if the action changed it.
func (s *wsSession) apply(ctx context.Context, r iReducer, a state.Action) (state.Session, *domain.Song, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prevSongID := currentSongID(&s.state)

	next, err := r.Reduce(ctx, s.state, a)
	if err != nil {
		return state.Session{}, nil, err
	}
	s.state = next

	var started *domain.Song
	if id := currentSongID(&next); id != prevSongID {
		if s.cancelPreview != nil {
			s.cancelPreview()
			s.cancelPreview = nil
		}
		if next.Player.Current != nil {
			song := next.Player.Current.Song
			started = &song
		}
	}

	return next.Clone(), started, nil
}

// trackPreview registers the cancel func of a preview fetch for the current song.
func (s *wsSession) trackPreview(cancel context.CancelFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancelPreview != nil {
		s.cancelPreview()
	}
	s.cancelPreview = cancel
}

func (s *wsSession) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancelPreview != nil {
		s.cancelPreview()
		s.cancelPreview = nil
	}
}

func (s *wsSession) writeJSON(v any) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return s.conn.WriteJSON(v)
}
