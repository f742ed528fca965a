// Package library serves the fixed list of songs users pick playlists from.
package library

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sharetube/roomdecor/internal/domain"
)

//go:embed songs.json
var defaultSongs []byte

var ErrSongNotFound = errors.New("song not found")

type Library struct {
	songs []domain.Song
	byID  map[string]int
}

// Default returns the library compiled into the binary.
func Default() (*Library, error) {
	return Parse(defaultSongs)
}

// Load reads a songs file from path. An empty path means the embedded default.
func Load(path string) (*Library, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read songs file: %w", err)
	}

	return Parse(data)
}

func Parse(data []byte) (*Library, error) {
	var songs []domain.Song
	if err := json.Unmarshal(data, &songs); err != nil {
		return nil, fmt.Errorf("failed to parse songs: %w", err)
	}

	return New(songs)
}

func New(songs []domain.Song) (*Library, error) {
	l := Library{
		songs: make([]domain.Song, 0, len(songs)),
		byID:  make(map[string]int, len(songs)),
	}

	for i, s := range songs {
		if s.ID == "" {
			return nil, fmt.Errorf("song %d has no id", i)
		}
		if _, dup := l.byID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate song id %q", s.ID)
		}

		l.byID[s.ID] = len(l.songs)
		l.songs = append(l.songs, s)
	}

	return &l, nil
}

func (l *Library) Get(id string) (domain.Song, error) {
	i, ok := l.byID[id]
	if !ok {
		return domain.Song{}, ErrSongNotFound
	}

	return l.songs[i], nil
}

// Songs returns a copy of every song in library order.
func (l *Library) Songs() []domain.Song {
	out := make([]domain.Song, len(l.songs))
	copy(out, l.songs)
	return out
}

// Search matches query case-insensitively against song names and artists.
// An empty query lists the first limit songs; limit <= 0 means no limit.
func (l *Library) Search(query string, limit int) []domain.Song {
	q := strings.ToLower(strings.TrimSpace(query))

	out := []domain.Song{}
	for _, s := range l.songs {
		if limit > 0 && len(out) >= limit {
			break
		}

		if q == "" || strings.Contains(strings.ToLower(s.Name), q) || strings.Contains(strings.ToLower(s.Artist), q) {
			out = append(out, s)
		}
	}

	return out
}

func (l *Library) Len() int {
	return len(l.songs)
}
