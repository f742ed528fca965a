// Package state holds one user's editing session and the reducer that applies actions to it.
package state

import (
	"github.com/sharetube/roomdecor/internal/domain"
)

// SongRef points at a song inside a playlist.
type SongRef struct {
	PlaylistIndex int         `json:"playlist_index"`
	SongIndex     int         `json:"song_index"`
	Song          domain.Song `json:"song"`
}

type Player struct {
	Current    *SongRef `json:"current"`
	IsPlaying  bool     `json:"is_playing"`
	PreviewURL string   `json:"preview_url,omitempty"`
}

// Session is the explicit state container: everything a page session can change.
type Session struct {
	Page   domain.Page      `json:"page"`
	Room   domain.RoomState `json:"room"`
	Draft  *domain.Playlist `json:"draft"`
	Player Player           `json:"player"`
}

func NewSession() Session {
	return Session{
		Page: domain.PageRoom,
		Room: domain.NewRoomState(),
	}
}

// Clone returns a deep copy.
func (s Session) Clone() Session {
	c := s
	c.Room = s.Room.Clone()

	if s.Draft != nil {
		d := s.Draft.Clone()
		c.Draft = &d
	}

	if s.Player.Current != nil {
		cur := *s.Player.Current
		c.Player.Current = &cur
	}

	return c
}
