package state

import (
	"encoding/json"

	"github.com/sharetube/roomdecor/internal/domain"
)

type ActionType string

const (
	ActionSetPage ActionType = "SET_PAGE"

	ActionStartPlaylist       ActionType = "START_PLAYLIST"
	ActionSetDraftName        ActionType = "SET_DRAFT_NAME"
	ActionSetDraftColor       ActionType = "SET_DRAFT_COLOR"
	ActionAddSongToDraft      ActionType = "ADD_SONG_TO_DRAFT"
	ActionRemoveSongFromDraft ActionType = "REMOVE_SONG_FROM_DRAFT"
	ActionCommitDraft         ActionType = "COMMIT_DRAFT"

	ActionSetBgColor        ActionType = "SET_BG_COLOR"
	ActionSetBgImage        ActionType = "SET_BG_IMAGE"
	ActionSetShelfColors    ActionType = "SET_SHELF_COLORS"
	ActionApplyShelfPreset  ActionType = "APPLY_SHELF_PRESET"
	ActionToggleShelfObject ActionType = "TOGGLE_SHELF_OBJECT"
	ActionSetPoster         ActionType = "SET_POSTER"

	ActionSetRadioColors   ActionType = "SET_RADIO_COLORS"
	ActionApplyRadioPreset ActionType = "APPLY_RADIO_PRESET"

	ActionSetProfile           ActionType = "SET_PROFILE"
	ActionSetFrame             ActionType = "SET_FRAME"
	ActionToggleProfileSticker ActionType = "TOGGLE_PROFILE_STICKER"

	ActionAddSticker    ActionType = "ADD_STICKER"
	ActionMoveSticker   ActionType = "MOVE_STICKER"
	ActionRemoveSticker ActionType = "REMOVE_STICKER"

	ActionPlaySong   ActionType = "PLAY_SONG"
	ActionTogglePlay ActionType = "TOGGLE_PLAY"
	ActionPlayNext   ActionType = "PLAY_NEXT"
	ActionPlayPrev   ActionType = "PLAY_PREV"
	ActionSetPreview ActionType = "SET_PREVIEW"

	ActionHydrate ActionType = "HYDRATE"
)

type Action struct {
	Type    ActionType      `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// NewAction builds an action from a typed payload.
func NewAction(t ActionType, payload any) (Action, error) {
	if payload == nil {
		return Action{Type: t}, nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return Action{}, err
	}

	return Action{Type: t, Payload: raw}, nil
}

type Empty struct{}

type SetPagePayload struct {
	Page string `json:"page"`
}

type NamePayload struct {
	Name string `json:"name" validate:"max=100"`
}

type ColorPayload struct {
	Color string `json:"color"`
}

type SongPayload struct {
	Song domain.Song `json:"song"`
}

type IDPayload struct {
	ID string `json:"id" validate:"required"`
}

type IndexPayload struct {
	Index int `json:"index"`
}

type ImagePayload struct {
	Image *string `json:"image"`
}

type ShelfColorsPayload struct {
	Wood     *string `json:"wood"`
	Interior *string `json:"interior"`
	Outline  *string `json:"outline"`
	Plank    *string `json:"plank"`
}

type RadioColorsPayload struct {
	Body    *string `json:"body"`
	Speaker *string `json:"speaker"`
	Handle  *string `json:"handle"`
	Buttons *string `json:"buttons"`
	Detail  *string `json:"detail"`
}

type ProfilePayload struct {
	Name  *string `json:"name" validate:"omitempty,max=64"`
	Genre *string `json:"genre" validate:"omitempty,max=64"`
	Bio   *string `json:"bio" validate:"omitempty,max=280"`
	Photo *string `json:"photo"`
}

type AddStickerPayload struct {
	ID string   `json:"id" validate:"required"`
	X  *float64 `json:"x"`
	Y  *float64 `json:"y"`
}

type MoveStickerPayload struct {
	Index int     `json:"index"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

type PlaySongPayload struct {
	PlaylistIndex int `json:"playlist_index"`
	SongIndex     int `json:"song_index"`
}

type SetPreviewPayload struct {
	SongID string `json:"song_id" validate:"required"`
	URL    string `json:"url" validate:"omitempty,http_url"`
}

type HydratePayload struct {
	Token string `json:"token"`
}
