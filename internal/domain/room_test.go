package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoomStateHasDefaultPlaylist(t *testing.T) {
	r := NewRoomState()
	require.Len(t, r.Playlists, 1)
	assert.Equal(t, DefaultPlaylistID, r.Playlists[0].ID)
	assert.Equal(t, DefaultBgColor, r.BgColor)
	assert.Equal(t, DefaultRadioColors(), r.RadioColors)
	assert.Nil(t, r.BgImage)
	assert.Equal(t, 0, r.Profile.Frame)
}

func TestCloneIsDeep(t *testing.T) {
	img := "data:image/png;base64,AAAA"
	r := NewRoomState()
	r.BgImage = &img
	r.Playlists[0].Songs = append(r.Playlists[0].Songs, Song{ID: "s1", Name: "Espresso"})
	r.PlacedStickers = append(r.PlacedStickers, PlacedSticker{ID: "star", X: 1, Y: 2})

	c := r.Clone()
	c.Playlists[0].Songs[0].Name = "changed"
	c.PlacedStickers[0].X = 99
	*c.BgImage = "other"

	assert.Equal(t, "Espresso", r.Playlists[0].Songs[0].Name)
	assert.Equal(t, float64(1), r.PlacedStickers[0].X)
	assert.Equal(t, img, *r.BgImage)
}

func TestWithoutImages(t *testing.T) {
	img := "data:image/png;base64,AAAA"
	r := NewRoomState()
	r.BgImage = &img
	r.PosterImage = &img
	r.Profile.Photo = &img

	c := r.WithoutImages()
	assert.Nil(t, c.BgImage)
	assert.Nil(t, c.PosterImage)
	assert.Nil(t, c.Profile.Photo)
	assert.NotNil(t, r.BgImage, "original must be untouched")
}

func TestIsHexColor(t *testing.T) {
	for _, c := range []string{"#fff", "#c8e8ed", "#C8E8ED"} {
		assert.True(t, IsHexColor(c), c)
	}
	for _, c := range []string{"", "fff", "#ggg", "red", "#12345"} {
		assert.False(t, IsHexColor(c), c)
	}
}

func TestSanitizePage(t *testing.T) {
	assert.Equal(t, PageShelfPicker, SanitizePage("shelf-picker"))
	assert.Equal(t, PageRoom, SanitizePage("admin"))
	assert.Equal(t, PageRoom, SanitizePage(""))
}
