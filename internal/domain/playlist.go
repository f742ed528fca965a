package domain

const (
	DefaultPlaylistID    = "default"
	DefaultPlaylistName  = "Playlist #1"
	DefaultPlaylistColor = "#f4a0a0"
	NewPlaylistName      = "New Playlist"
)

type Song struct {
	ID      string `json:"id" validate:"required,max=64"`
	Name    string `json:"name" validate:"required,max=200"`
	Artist  string `json:"artist" validate:"max=200"`
	Color   string `json:"color,omitempty" validate:"omitempty,hexcolor"`
	Cover   string `json:"cover,omitempty" validate:"omitempty,http_url"`
	Preview string `json:"preview,omitempty" validate:"omitempty,http_url"`
}

type Playlist struct {
	ID    string `json:"id" validate:"required,max=64"`
	Name  string `json:"name" validate:"max=100"`
	Color string `json:"color" validate:"required,hexcolor"`
	Songs []Song `json:"songs" validate:"dive"`
}

func DefaultPlaylist() Playlist {
	return Playlist{
		ID:    DefaultPlaylistID,
		Name:  DefaultPlaylistName,
		Color: DefaultPlaylistColor,
		Songs: []Song{},
	}
}

func (p Playlist) Clone() Playlist {
	c := p
	c.Songs = cloneSlice(p.Songs)
	return c
}

// IndexOfSong returns the position of the song with id, or -1.
func (p Playlist) IndexOfSong(id string) int {
	for i, s := range p.Songs {
		if s.ID == id {
			return i
		}
	}

	return -1
}
