package codec

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sharetube/roomdecor/internal/catalog"
	"github.com/sharetube/roomdecor/internal/domain"
)

// Keys a token may carry that the merge deliberately ignores.
var inertKeys = map[string]struct{}{
	"v":           {},
	"bgImage":     {},
	"posterImage": {},
}

type merger struct {
	issues []Issue
}

func (m *merger) drop(field string, err error) {
	m.issues = append(m.issues, Issue{Field: field, Err: err})
}

// merge lays every well-formed field of fields over a default room.
func (m *merger) merge(fields map[string]json.RawMessage) domain.RoomState {
	s := domain.NewRoomState()

	for key, raw := range fields {
		switch key {
		case "bgColor":
			m.color(key, raw, &s.BgColor)
		case "shelfColor":
			m.color(key, raw, &s.ShelfColor)
		case "shelfInterior":
			m.color(key, raw, &s.ShelfInterior)
		case "shelfOutline":
			m.color(key, raw, &s.ShelfOutline)
		case "shelfPlank":
			m.color(key, raw, &s.ShelfPlank)
		case "playlists":
			if playlists := m.playlists(raw); len(playlists) > 0 {
				s.Playlists = playlists
			}
		case "profile":
			m.profile(raw, &s.Profile)
		case "radioColors":
			m.radioColors(raw, &s.RadioColors)
		case "profileStickers":
			s.ProfileStickers = m.catalogIDs(key, raw, isSticker)
		case "shelfObjects":
			s.ShelfObjects = m.catalogIDs(key, raw, isShelfObject)
		case "placedStickers":
			s.PlacedStickers = m.placedStickers(raw)
		default:
			if _, ok := inertKeys[key]; !ok {
				m.drop(key, ErrUnknownField)
			}
		}
	}

	return s
}

func isSticker(id string) bool {
	_, ok := catalog.StickerByID(id)
	return ok
}

func isShelfObject(id string) bool {
	_, ok := catalog.ShelfObjectByID(id)
	return ok
}

func (m *merger) color(field string, raw json.RawMessage, dst *string) bool {
	var v string
	if err := json.Unmarshal(raw, &v); err != nil || !domain.IsHexColor(v) {
		m.drop(field, ErrInvalidValue)
		return false
	}

	*dst = v
	return true
}

func (m *merger) str(field string, raw json.RawMessage, dst *string) bool {
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		m.drop(field, ErrInvalidValue)
		return false
	}

	*dst = v
	return true
}

func (m *merger) object(field string, raw json.RawMessage) (map[string]json.RawMessage, bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		m.drop(field, ErrInvalidValue)
		return nil, false
	}

	return obj, true
}

func (m *merger) array(field string, raw json.RawMessage) ([]json.RawMessage, bool) {
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err != nil {
		m.drop(field, ErrInvalidValue)
		return nil, false
	}

	return arr, true
}

func (m *merger) profile(raw json.RawMessage, dst *domain.Profile) {
	obj, ok := m.object("profile", raw)
	if !ok {
		return
	}

	for key, v := range obj {
		field := "profile." + key
		switch key {
		case "name":
			m.str(field, v, &dst.Name)
		case "genre":
			m.str(field, v, &dst.Genre)
		case "bio":
			m.str(field, v, &dst.Bio)
		case "photo":
		case "frame":
			var frame int
			if err := json.Unmarshal(v, &frame); err != nil {
				m.drop(field, ErrInvalidValue)
				continue
			}
			if _, ok := catalog.Frame(frame); !ok {
				m.drop(field, ErrOutOfCatalog)
				continue
			}
			dst.Frame = frame
		default:
			m.drop(field, ErrUnknownField)
		}
	}
}

func (m *merger) radioColors(raw json.RawMessage, dst *domain.RadioColors) {
	obj, ok := m.object("radioColors", raw)
	if !ok {
		return
	}

	slots := map[string]*string{
		"body":    &dst.Body,
		"speaker": &dst.Speaker,
		"handle":  &dst.Handle,
		"buttons": &dst.Buttons,
		"detail":  &dst.Detail,
	}
	for key, v := range obj {
		slot, ok := slots[key]
		if !ok {
			m.drop("radioColors."+key, ErrUnknownField)
			continue
		}
		m.color("radioColors."+key, v, slot)
	}
}

func (m *merger) playlists(raw json.RawMessage) []domain.Playlist {
	items, ok := m.array("playlists", raw)
	if !ok {
		return nil
	}

	out := make([]domain.Playlist, 0, len(items))
	for i, item := range items {
		field := fmt.Sprintf("playlists[%d]", i)
		obj, ok := m.object(field, item)
		if !ok {
			continue
		}

		p := domain.Playlist{
			Name:  domain.DefaultPlaylistName,
			Color: domain.DefaultPlaylistColor,
			Songs: []domain.Song{},
		}
		if v, ok := obj["id"]; !ok || !m.str(field+".id", v, &p.ID) || p.ID == "" {
			m.drop(field, ErrInvalidValue)
			continue
		}
		if v, ok := obj["name"]; ok {
			m.str(field+".name", v, &p.Name)
		}
		if v, ok := obj["color"]; ok {
			m.color(field+".color", v, &p.Color)
		}
		if v, ok := obj["songs"]; ok && string(v) != "null" {
			p.Songs = m.songs(field+".songs", v)
		}

		out = append(out, p)
	}

	return out
}

func (m *merger) songs(field string, raw json.RawMessage) []domain.Song {
	out := []domain.Song{}

	items, ok := m.array(field, raw)
	if !ok {
		return out
	}

	for i, item := range items {
		f := fmt.Sprintf("%s[%d]", field, i)
		obj, ok := m.object(f, item)
		if !ok {
			continue
		}

		var song domain.Song
		idRaw, hasID := obj["id"]
		nameRaw, hasName := obj["name"]
		if !hasID || !hasName || !m.str(f+".id", idRaw, &song.ID) || !m.str(f+".name", nameRaw, &song.Name) || song.ID == "" {
			m.drop(f, ErrInvalidValue)
			continue
		}
		if v, ok := obj["artist"]; ok {
			m.str(f+".artist", v, &song.Artist)
		}
		if v, ok := obj["color"]; ok {
			m.color(f+".color", v, &song.Color)
		}
		if v, ok := obj["cover"]; ok {
			var cover string
			if m.str(f+".cover", v, &cover) && isHTTPURL(cover) {
				song.Cover = cover
			} else if cover != "" {
				m.drop(f+".cover", ErrInvalidValue)
			}
		}

		out = append(out, song)
	}

	return out
}

func (m *merger) catalogIDs(field string, raw json.RawMessage, known func(string) bool) []string {
	out := []string{}

	items, ok := m.array(field, raw)
	if !ok {
		return out
	}

	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		f := fmt.Sprintf("%s[%d]", field, i)
		var id string
		if !m.str(f, item, &id) {
			continue
		}
		if !known(id) {
			m.drop(f, ErrOutOfCatalog)
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}

func (m *merger) placedStickers(raw json.RawMessage) []domain.PlacedSticker {
	out := []domain.PlacedSticker{}

	items, ok := m.array("placedStickers", raw)
	if !ok {
		return out
	}

	for i, item := range items {
		f := fmt.Sprintf("placedStickers[%d]", i)
		var ps struct {
			ID *string  `json:"id"`
			X  *float64 `json:"x"`
			Y  *float64 `json:"y"`
		}
		if err := json.Unmarshal(item, &ps); err != nil || ps.ID == nil || ps.X == nil || ps.Y == nil {
			m.drop(f, ErrInvalidValue)
			continue
		}
		if !isSticker(*ps.ID) {
			m.drop(f, ErrOutOfCatalog)
			continue
		}
		out = append(out, domain.PlacedSticker{ID: *ps.ID, X: *ps.X, Y: *ps.Y})
	}

	return out
}

func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
