package codec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/jxskiss/base62"
	"github.com/klauspost/compress/flate"
	"github.com/sharetube/roomdecor/internal/domain"
	"github.com/sharetube/roomdecor/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rawToken encodes an arbitrary JSON document the same way Encode does.
func rawToken(t *testing.T, doc string) string {
	t.Helper()

	var buf bytes.Buffer
	fw, err := flate.NewWriter(&buf, flate.BestCompression)
	require.NoError(t, err)
	_, err = fw.Write([]byte(doc))
	require.NoError(t, err)
	require.NoError(t, fw.Close())

	return base62.EncodeToString(buf.Bytes())
}

func sampleRoom() domain.RoomState {
	s := domain.NewRoomState()
	s.BgColor = "#f4a0d4"
	s.Playlists = []domain.Playlist{
		{
			ID:    "p1",
			Name:  "Chill",
			Color: "#f4a0a0",
			Songs: []domain.Song{
				{ID: "s1", Name: "Espresso", Artist: "Sabrina Carpenter", Color: "#d4a474", Cover: "https://cdn.example.com/espresso.jpg"},
				{ID: "s2", Name: "APT.", Artist: "ROSÉ & Bruno Mars"},
			},
		},
		{ID: "p2", Name: "", Color: "#4a90d9", Songs: []domain.Song{}},
	}
	s.Profile = domain.Profile{Name: "Ana", Genre: "Pop", Bio: "hi there\nsecond line", Frame: 2}
	s.RadioColors = domain.RadioColors{Body: "#8e44ad", Speaker: "#2c2c54", Handle: "#a0a0a0", Buttons: "#e74c3c", Detail: "#f5f5f5"}
	s.ShelfColor = "#5c3d2e"
	s.ShelfInterior = "#7a5a47"
	s.ShelfOutline = "#3e2a1e"
	s.ShelfPlank = "#4a3428"
	s.ProfileStickers = []string{"fire"}
	s.PlacedStickers = []domain.PlacedSticker{{ID: "star", X: 120, Y: 80}, {ID: "alien", X: 310.25, Y: 0.1}}
	s.ShelfObjects = []string{"plant", "vinyl"}

	return s
}

func TestRoundTrip(t *testing.T) {
	c := New(nil, nil)
	s := sampleRoom()

	token, err := c.Encode(&s)
	require.NoError(t, err)

	decoded, issues, err := c.Decode(token)
	require.NoError(t, err)
	assert.Empty(t, issues)
	assert.Equal(t, s, *decoded)
}

func TestRoundTripDropsImagesAndPreviews(t *testing.T) {
	c := New(nil, nil)
	img := "data:image/png;base64," + strings.Repeat("A", 20000)

	s := sampleRoom()
	s.BgImage = &img
	s.PosterImage = &img
	s.Profile.Photo = &img
	s.Playlists[0].Songs[0].Preview = "https://cdn.example.com/preview.mp3"

	token, err := c.Encode(&s)
	require.NoError(t, err, "images must not count toward the token size")

	decoded, _, err := c.Decode(token)
	require.NoError(t, err)
	assert.Nil(t, decoded.BgImage)
	assert.Nil(t, decoded.PosterImage)
	assert.Nil(t, decoded.Profile.Photo)
	assert.Empty(t, decoded.Playlists[0].Songs[0].Preview)

	want := s.WithoutImages()
	want.Playlists[0].Songs[0].Preview = ""
	assert.Equal(t, want, *decoded)
}

func TestIdempotence(t *testing.T) {
	c := New(nil, nil)
	s := sampleRoom()
	s.PlacedStickers = append(s.PlacedStickers, domain.PlacedSticker{ID: "not-a-sticker", X: 1, Y: 1})

	t1, err := c.Encode(&s)
	require.NoError(t, err)
	once, _, err := c.Decode(t1)
	require.NoError(t, err)

	t2, err := c.Encode(once)
	require.NoError(t, err)
	twice, issues, err := c.Decode(t2)
	require.NoError(t, err)

	assert.Empty(t, issues)
	assert.Equal(t, once, twice)
	assert.NotEqual(t, t1, t2, "first decode drops the unknown sticker")
}

func TestEncodeDecodeEspressoRoom(t *testing.T) {
	c := New(nil, nil)
	s := domain.NewRoomState()
	s.BgColor = "#c8e8ed"
	s.Playlists = []domain.Playlist{{
		ID:    "p1",
		Name:  "Chill",
		Color: "#f4a0a0",
		Songs: []domain.Song{{ID: "s1", Name: "Espresso", Artist: "Sabrina Carpenter"}},
	}}
	s.Profile = domain.Profile{Name: "Ana", Genre: "Pop", Frame: 2}
	s.PlacedStickers = []domain.PlacedSticker{{ID: "star", X: 120, Y: 80}}

	token, err := c.Encode(&s)
	require.NoError(t, err)

	decoded, _, err := c.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "Espresso", decoded.Playlists[0].Songs[0].Name)
	assert.Equal(t, "star", decoded.PlacedStickers[0].ID)
	assert.Equal(t, "#e74c3c", decoded.RadioColors.Body)
}

func TestTokenIsURLSafe(t *testing.T) {
	c := New(nil, nil)
	s := sampleRoom()

	token, err := c.Encode(&s)
	require.NoError(t, err)
	assert.Equal(t, token, url.QueryEscape(token), "token must not need percent-encoding")
}

func TestDecodeErrors(t *testing.T) {
	c := New(nil, nil)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"empty", "", ErrMalformedToken},
		{"bad alphabet", "abc!def", ErrMalformedToken},
		{"padding char", "abcd==", ErrMalformedToken},
		{"not json", rawToken(t, "room please"), ErrCorruptPayload},
		{"json array", rawToken(t, `[1,2,3]`), ErrCorruptPayload},
		{"json null", rawToken(t, `null`), ErrCorruptPayload},
		{"too large", strings.Repeat("a", DefaultMaxTokenLength+1), ErrTokenTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, _, err := c.Decode(tt.token)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, state)
		})
	}
}

func TestDecodeGarbageFails(t *testing.T) {
	c := New(nil, nil)
	for _, token := range []string{"hello", "Zm9vYmFy", "0000000000"} {
		_, _, err := c.Decode(token)
		require.Error(t, err, token)
		assert.True(t, errors.Is(err, ErrMalformedToken) || errors.Is(err, ErrCorruptPayload), "%s: %v", token, err)
	}
}

func TestEncodeTokenTooLarge(t *testing.T) {
	c := New(&Config{MaxTokenLength: 64}, nil)
	s := sampleRoom()

	_, err := c.Encode(&s)
	assert.ErrorIs(t, err, ErrTokenTooLarge)
}

func TestEncodeManySongsTooLarge(t *testing.T) {
	c := New(nil, nil)
	s := domain.NewRoomState()
	for i := 0; i < 2000; i++ {
		s.Playlists[0].Songs = append(s.Playlists[0].Songs, domain.Song{
			ID:     fmt.Sprintf("song-%d-%x", i, i*7919),
			Name:   fmt.Sprintf("Track %d %x", i, i*104729),
			Artist: fmt.Sprintf("Artist %x", i*1299709),
		})
	}

	_, err := c.Encode(&s)
	assert.ErrorIs(t, err, ErrTokenTooLarge)
}

func TestFromQuery(t *testing.T) {
	c := New(nil, nil)
	ctx := context.Background()
	s := sampleRoom()

	token, err := c.Encode(&s)
	require.NoError(t, err)

	q := url.Values{}
	q.Set("page", "bg-picker")
	q.Set("room", token)

	decoded := c.FromQuery(ctx, q)
	require.NotNil(t, decoded)
	assert.Equal(t, s, *decoded)

	assert.Nil(t, c.FromQuery(ctx, url.Values{"page": {"room"}}), "no token means no shared state")
	assert.Nil(t, c.FromQuery(ctx, url.Values{"room": {"!!garbage!!"}}), "bad token degrades to no shared state")
}

func TestHydrateFallsBackToDefaults(t *testing.T) {
	c := New(nil, nil)
	ctx := context.Background()
	defaults := domain.NewRoomState()

	assert.Equal(t, defaults, c.Hydrate(ctx, ""))
	assert.Equal(t, defaults, c.Hydrate(ctx, "garbage-string"))
	assert.Equal(t, defaults, c.Hydrate(ctx, "%%%"))
}

func TestShareURL(t *testing.T) {
	c := New(nil, nil)

	u, err := c.ShareURL("https://rooms.example.com/app?theme=dark", domain.PageRoom, "abc123")
	require.NoError(t, err)

	parsed, err := url.Parse(u)
	require.NoError(t, err)
	assert.Equal(t, "dark", parsed.Query().Get("theme"))
	assert.Equal(t, "room", parsed.Query().Get("page"))
	assert.Equal(t, "abc123", parsed.Query().Get("room"))
}

func TestCustomParam(t *testing.T) {
	c := New(&Config{Param: "r"}, nil)
	s := sampleRoom()
	token, err := c.Encode(&s)
	require.NoError(t, err)

	assert.NotNil(t, c.FromQuery(context.Background(), url.Values{"r": {token}}))
	assert.Nil(t, c.FromQuery(context.Background(), url.Values{"room": {token}}))
	assert.Equal(t, "r", c.Param())
}

func TestSongCoverValidationMatchesDecode(t *testing.T) {
	c := New(nil, nil)
	v := validator.NewValidator()

	tests := []struct {
		cover string
		valid bool
	}{
		{"https://cdn.test/m.jpg", true},
		{"http://cdn.test/m.jpg", true},
		{"ftp://cdn.test/m.jpg", false},
		{"mailto:someone@cdn.test", false},
	}

	for _, tt := range tests {
		t.Run(tt.cover, func(t *testing.T) {
			s := domain.NewRoomState()
			s.Playlists = []domain.Playlist{{
				ID:    "p1",
				Name:  "Chill",
				Color: "#f4a0a0",
				Songs: []domain.Song{{ID: "s1", Name: "Espresso", Artist: "Sabrina Carpenter", Cover: tt.cover}},
			}}

			_, ok := v.Validate(s)
			require.Equal(t, tt.valid, ok)
			if !ok {
				return
			}

			token, err := c.Encode(&s)
			require.NoError(t, err)

			decoded, issues, err := c.Decode(token)
			require.NoError(t, err)
			assert.Empty(t, issues)
			assert.Equal(t, tt.cover, decoded.Playlists[0].Songs[0].Cover)
		})
	}
}
