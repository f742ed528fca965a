package domain

import "slices"

const (
	DefaultBgColor       = "#c8e8ed"
	DefaultShelfColor    = "#b5813b"
	DefaultShelfInterior = "#c9a96e"
	DefaultShelfOutline  = "#8a5e22"
	DefaultShelfPlank    = "#8a5e22"
)

type RadioColors struct {
	Body    string `json:"body" validate:"required,hexcolor"`
	Speaker string `json:"speaker" validate:"required,hexcolor"`
	Handle  string `json:"handle" validate:"required,hexcolor"`
	Buttons string `json:"buttons" validate:"required,hexcolor"`
	Detail  string `json:"detail" validate:"required,hexcolor"`
}

func DefaultRadioColors() RadioColors {
	return RadioColors{
		Body:    "#e74c3c",
		Speaker: "#2c3e50",
		Handle:  "#7f8c8d",
		Buttons: "#f39c12",
		Detail:  "#ecf0f1",
	}
}

type Profile struct {
	Name  string  `json:"name" validate:"max=64"`
	Genre string  `json:"genre" validate:"max=64"`
	Bio   string  `json:"bio" validate:"max=280"`
	Photo *string `json:"photo"`
	Frame int     `json:"frame" validate:"min=0"`
}

type PlacedSticker struct {
	ID string  `json:"id" validate:"required"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// RoomState is everything a user can customize about their room.
type RoomState struct {
	BgColor         string          `json:"bgColor" validate:"required,hexcolor"`
	BgImage         *string         `json:"bgImage"`
	Playlists       []Playlist      `json:"playlists" validate:"required,min=1,dive"`
	Profile         Profile         `json:"profile"`
	RadioColors     RadioColors     `json:"radioColors"`
	ShelfColor      string          `json:"shelfColor" validate:"required,hexcolor"`
	ShelfInterior   string          `json:"shelfInterior" validate:"required,hexcolor"`
	ShelfOutline    string          `json:"shelfOutline" validate:"required,hexcolor"`
	ShelfPlank      string          `json:"shelfPlank" validate:"required,hexcolor"`
	ProfileStickers []string        `json:"profileStickers"`
	PlacedStickers  []PlacedSticker `json:"placedStickers" validate:"dive"`
	PosterImage     *string         `json:"posterImage"`
	ShelfObjects    []string        `json:"shelfObjects"`
}

// NewRoomState returns a fresh room with every field at its default.
func NewRoomState() RoomState {
	return RoomState{
		BgColor:         DefaultBgColor,
		Playlists:       []Playlist{DefaultPlaylist()},
		RadioColors:     DefaultRadioColors(),
		ShelfColor:      DefaultShelfColor,
		ShelfInterior:   DefaultShelfInterior,
		ShelfOutline:    DefaultShelfOutline,
		ShelfPlank:      DefaultShelfPlank,
		ProfileStickers: []string{},
		PlacedStickers:  []PlacedSticker{},
		ShelfObjects:    []string{},
	}
}

// Clone returns a deep copy.
func (r RoomState) Clone() RoomState {
	c := r
	c.BgImage = clonePtr(r.BgImage)
	c.PosterImage = clonePtr(r.PosterImage)
	c.Profile.Photo = clonePtr(r.Profile.Photo)

	c.Playlists = make([]Playlist, len(r.Playlists))
	for i, p := range r.Playlists {
		c.Playlists[i] = p.Clone()
	}

	c.ProfileStickers = cloneSlice(r.ProfileStickers)
	c.PlacedStickers = cloneSlice(r.PlacedStickers)
	c.ShelfObjects = cloneSlice(r.ShelfObjects)

	return c
}

// WithoutImages drops the embedded image payloads.
func (r RoomState) WithoutImages() RoomState {
	c := r.Clone()
	c.BgImage = nil
	c.PosterImage = nil
	c.Profile.Photo = nil
	return c
}

func clonePtr(s *string) *string {
	if s == nil {
		return nil
	}

	v := *s
	return &v
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return slices.Clone(s)
}
