package state

import (
	"fmt"
	"strings"

	"github.com/sharetube/roomdecor/internal/domain"
)

func setPage(_ *Reducer, s *Session, p SetPagePayload) error {
	s.Page = domain.SanitizePage(p.Page)
	return nil
}

func startPlaylist(r *Reducer, s *Session, _ Empty) error {
	s.Draft = &domain.Playlist{
		ID:    r.newID(),
		Name:  domain.NewPlaylistName,
		Color: domain.DefaultPlaylistColor,
		Songs: []domain.Song{},
	}
	s.Page = domain.PagePlaylistName
	return nil
}

func setDraftName(_ *Reducer, s *Session, p NamePayload) error {
	if s.Draft == nil {
		return ErrNoDraft
	}

	name := strings.TrimSpace(p.Name)
	if name == "" {
		name = domain.NewPlaylistName
	}

	s.Draft.Name = name
	return nil
}

func setDraftColor(_ *Reducer, s *Session, p ColorPayload) error {
	if s.Draft == nil {
		return ErrNoDraft
	}

	if err := checkColor(p.Color); err != nil {
		return err
	}

	s.Draft.Color = p.Color
	return nil
}

func addSongToDraft(r *Reducer, s *Session, p SongPayload) error {
	if s.Draft == nil {
		return ErrNoDraft
	}

	if s.Draft.IndexOfSong(p.Song.ID) >= 0 {
		return nil
	}

	if len(s.Draft.Songs) >= r.songsLimit {
		return ErrSongsLimitReached
	}

	s.Draft.Songs = append(s.Draft.Songs, p.Song)
	return nil
}

func removeSongFromDraft(_ *Reducer, s *Session, p IDPayload) error {
	if s.Draft == nil {
		return ErrNoDraft
	}

	if i := s.Draft.IndexOfSong(p.ID); i >= 0 {
		s.Draft.Songs = append(s.Draft.Songs[:i], s.Draft.Songs[i+1:]...)
	}

	return nil
}

func commitDraft(r *Reducer, s *Session, _ Empty) error {
	if s.Draft == nil {
		return ErrNoDraft
	}

	if len(s.Room.Playlists) >= r.playlistLimit {
		return ErrPlaylistLimitReached
	}

	s.Room.Playlists = append(s.Room.Playlists, *s.Draft)
	s.Draft = nil
	s.Page = domain.PageRoom
	return nil
}

func checkColor(c string) error {
	if !domain.IsHexColor(c) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, c)
	}

	return nil
}
