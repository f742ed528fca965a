// Package codec turns a room into a URL-safe share token and back.
//
// A token is the room's JSON snapshot, deflated and written in base62. Embedded images
// and song preview links never enter the token. Decoding merges whatever the token
// carries onto a default room, so tokens from older or newer builds still produce a
// valid room.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/jxskiss/base62"
	"github.com/klauspost/compress/flate"
	"github.com/sharetube/roomdecor/internal/domain"
)

const (
	DefaultMaxTokenLength = 4096
	DefaultParam          = "room"

	schemaVersion   = 1
	maxPayloadBytes = 1 << 20
)

type Config struct {
	MaxTokenLength int
	Param          string
}

type Codec struct {
	maxTokenLength int
	param          string
	logger         *slog.Logger
}

func New(cfg *Config, logger *slog.Logger) *Codec {
	c := Codec{
		maxTokenLength: DefaultMaxTokenLength,
		param:          DefaultParam,
		logger:         logger,
	}

	if cfg != nil {
		if cfg.MaxTokenLength > 0 {
			c.maxTokenLength = cfg.MaxTokenLength
		}
		if cfg.Param != "" {
			c.param = cfg.Param
		}
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	return &c
}

// Param is the query parameter that carries the token.
func (c *Codec) Param() string {
	return c.param
}

type wireSong struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Artist string `json:"artist"`
	Color  string `json:"color,omitempty"`
	Cover  string `json:"cover,omitempty"`
}

type wirePlaylist struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Color string     `json:"color"`
	Songs []wireSong `json:"songs"`
}

type wireProfile struct {
	Name  string `json:"name"`
	Genre string `json:"genre"`
	Bio   string `json:"bio"`
	Frame int    `json:"frame"`
}

type wireRoom struct {
	Version         int                    `json:"v"`
	BgColor         string                 `json:"bgColor"`
	Playlists       []wirePlaylist         `json:"playlists"`
	Profile         wireProfile            `json:"profile"`
	RadioColors     domain.RadioColors     `json:"radioColors"`
	ShelfColor      string                 `json:"shelfColor"`
	ShelfInterior   string                 `json:"shelfInterior"`
	ShelfOutline    string                 `json:"shelfOutline"`
	ShelfPlank      string                 `json:"shelfPlank"`
	ProfileStickers []string               `json:"profileStickers,omitempty"`
	PlacedStickers  []domain.PlacedSticker `json:"placedStickers,omitempty"`
	ShelfObjects    []string               `json:"shelfObjects,omitempty"`
}

func snapshot(s *domain.RoomState) wireRoom {
	w := wireRoom{
		Version:         schemaVersion,
		BgColor:         s.BgColor,
		Playlists:       make([]wirePlaylist, 0, len(s.Playlists)),
		RadioColors:     s.RadioColors,
		ShelfColor:      s.ShelfColor,
		ShelfInterior:   s.ShelfInterior,
		ShelfOutline:    s.ShelfOutline,
		ShelfPlank:      s.ShelfPlank,
		ProfileStickers: s.ProfileStickers,
		PlacedStickers:  s.PlacedStickers,
		ShelfObjects:    s.ShelfObjects,
		Profile: wireProfile{
			Name:  s.Profile.Name,
			Genre: s.Profile.Genre,
			Bio:   s.Profile.Bio,
			Frame: s.Profile.Frame,
		},
	}

	for _, p := range s.Playlists {
		wp := wirePlaylist{
			ID:    p.ID,
			Name:  p.Name,
			Color: p.Color,
			Songs: make([]wireSong, 0, len(p.Songs)),
		}
		for _, song := range p.Songs {
			wp.Songs = append(wp.Songs, wireSong{
				ID:     song.ID,
				Name:   song.Name,
				Artist: song.Artist,
				Color:  song.Color,
				Cover:  song.Cover,
			})
		}
		w.Playlists = append(w.Playlists, wp)
	}

	return w
}

// Encode returns the share token for s.
func (c *Codec) Encode(s *domain.RoomState) (string, error) {
	raw, err := json.Marshal(snapshot(s))
	if err != nil {
		return "", fmt.Errorf("failed to marshal room: %w", err)
	}

	var buf bytes.Buffer
	fw, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return "", fmt.Errorf("failed to create deflate writer: %w", err)
	}
	if _, err := fw.Write(raw); err != nil {
		return "", fmt.Errorf("failed to deflate room: %w", err)
	}
	if err := fw.Close(); err != nil {
		return "", fmt.Errorf("failed to deflate room: %w", err)
	}

	token := base62.EncodeToString(buf.Bytes())
	if len(token) > c.maxTokenLength {
		return "", fmt.Errorf("%w: %d characters, limit is %d", ErrTokenTooLarge, len(token), c.maxTokenLength)
	}

	return token, nil
}

// Decode rebuilds a room from token. The returned issues list every field that was
// ignored or reset to its default; they never make decoding fail.
func (c *Codec) Decode(token string) (*domain.RoomState, []Issue, error) {
	if len(token) > c.maxTokenLength {
		return nil, nil, fmt.Errorf("%w: %d characters, limit is %d", ErrTokenTooLarge, len(token), c.maxTokenLength)
	}
	if token == "" {
		return nil, nil, fmt.Errorf("%w: empty", ErrMalformedToken)
	}

	compressed, err := base62.DecodeString(token)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	fr := flate.NewReader(bytes.NewReader(compressed))
	defer fr.Close()

	raw, err := io.ReadAll(io.LimitReader(fr, maxPayloadBytes+1))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrCorruptPayload, err)
	}
	if len(raw) > maxPayloadBytes {
		return nil, nil, fmt.Errorf("%w: payload exceeds %d bytes", ErrCorruptPayload, maxPayloadBytes)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrCorruptPayload, err)
	}
	if fields == nil {
		return nil, nil, fmt.Errorf("%w: not an object", ErrCorruptPayload)
	}

	m := merger{}
	state := m.merge(fields)

	return &state, m.issues, nil
}
