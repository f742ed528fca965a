package state

import (
	"context"
	"fmt"

	"github.com/sharetube/roomdecor/internal/domain"
)

func (p *Player) play(room *domain.RoomState, playlistIndex, songIndex int) {
	song := room.Playlists[playlistIndex].Songs[songIndex]
	p.Current = &SongRef{
		PlaylistIndex: playlistIndex,
		SongIndex:     songIndex,
		Song:          song,
	}
	p.IsPlaying = true
	p.PreviewURL = song.Preview
}

func (p *Player) stop() {
	p.Current = nil
	p.IsPlaying = false
	p.PreviewURL = ""
}

func playSong(_ *Reducer, s *Session, p PlaySongPayload) error {
	if p.PlaylistIndex < 0 || p.PlaylistIndex >= len(s.Room.Playlists) {
		return fmt.Errorf("%w: playlist %d", ErrIndexOutOfRange, p.PlaylistIndex)
	}

	songs := s.Room.Playlists[p.PlaylistIndex].Songs
	if p.SongIndex < 0 || p.SongIndex >= len(songs) {
		return fmt.Errorf("%w: song %d", ErrIndexOutOfRange, p.SongIndex)
	}

	s.Player.play(&s.Room, p.PlaylistIndex, p.SongIndex)
	return nil
}

func togglePlay(_ *Reducer, s *Session, _ Empty) error {
	if s.Player.Current != nil {
		s.Player.IsPlaying = !s.Player.IsPlaying
		return nil
	}

	for i, pl := range s.Room.Playlists {
		if len(pl.Songs) > 0 {
			s.Player.play(&s.Room, i, 0)
			return nil
		}
	}

	return nil
}

// step moves the current song by delta, wrapping within its playlist.
func step(s *Session, delta int) {
	cur := s.Player.Current
	if cur == nil {
		return
	}

	if cur.PlaylistIndex >= len(s.Room.Playlists) {
		s.Player.stop()
		return
	}

	n := len(s.Room.Playlists[cur.PlaylistIndex].Songs)
	if n == 0 {
		s.Player.stop()
		return
	}

	s.Player.play(&s.Room, cur.PlaylistIndex, ((cur.SongIndex+delta)%n+n)%n)
}

func playNext(_ *Reducer, s *Session, _ Empty) error {
	step(s, 1)
	return nil
}

func playPrev(_ *Reducer, s *Session, _ Empty) error {
	step(s, -1)
	return nil
}

// setPreview applies a fetched preview url only while its song is still current.
func setPreview(_ *Reducer, s *Session, p SetPreviewPayload) error {
	cur := s.Player.Current
	if cur == nil || cur.Song.ID != p.SongID {
		return nil
	}

	s.Player.PreviewURL = p.URL
	cur.Song.Preview = p.URL
	return nil
}

func hydrate(ctx context.Context, r *Reducer, s *Session, p HydratePayload) error {
	if r.hydrator != nil {
		s.Room = r.hydrator.Hydrate(ctx, p.Token)
	} else {
		s.Room = domain.NewRoomState()
	}

	s.Draft = nil
	s.Player.stop()
	return nil
}
