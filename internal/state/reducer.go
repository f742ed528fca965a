package state

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/sharetube/roomdecor/internal/domain"
	"github.com/sharetube/roomdecor/pkg/validator"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	DefaultPlaylistLimit = 25
	DefaultSongsLimit    = 100
)

// Hydrator turns a share token into a room, falling back to defaults.
type Hydrator interface {
	Hydrate(ctx context.Context, token string) domain.RoomState
}

type Config struct {
	Hydrator      Hydrator
	PlaylistLimit int
	SongsLimit    int
	// Rand returns a number in [0, 1); used to scatter new stickers.
	Rand func() float64
	// NewID generates playlist ids.
	NewID func() string
}

type handler func(ctx context.Context, r *Reducer, s *Session, payload json.RawMessage) error

// Reducer applies actions to sessions. It is safe for concurrent use.
type Reducer struct {
	handlers      map[ActionType]handler
	hydrator      Hydrator
	validate      *validator.Validator
	playlistLimit int
	songsLimit    int
	rand          func() float64
	newID         func() string
}

func NewReducer(cfg *Config) *Reducer {
	r := Reducer{
		validate:      validator.NewValidator(),
		playlistLimit: DefaultPlaylistLimit,
		songsLimit:    DefaultSongsLimit,
		rand:          rand.Float64,
		newID:         uuid.NewString,
	}

	if cfg != nil {
		r.hydrator = cfg.Hydrator
		if cfg.PlaylistLimit > 0 {
			r.playlistLimit = cfg.PlaylistLimit
		}
		if cfg.SongsLimit > 0 {
			r.songsLimit = cfg.SongsLimit
		}
		if cfg.Rand != nil {
			r.rand = cfg.Rand
		}
		if cfg.NewID != nil {
			r.newID = cfg.NewID
		}
	}

	r.handlers = map[ActionType]handler{
		ActionSetPage: handle(setPage),

		ActionStartPlaylist:       handle(startPlaylist),
		ActionSetDraftName:        handle(setDraftName),
		ActionSetDraftColor:       handle(setDraftColor),
		ActionAddSongToDraft:      handle(addSongToDraft),
		ActionRemoveSongFromDraft: handle(removeSongFromDraft),
		ActionCommitDraft:         handle(commitDraft),

		ActionSetBgColor:        handle(setBgColor),
		ActionSetBgImage:        handle(setBgImage),
		ActionSetShelfColors:    handle(setShelfColors),
		ActionApplyShelfPreset:  handle(applyShelfPreset),
		ActionToggleShelfObject: handle(toggleShelfObject),
		ActionSetPoster:         handle(setPoster),

		ActionSetRadioColors:   handle(setRadioColors),
		ActionApplyRadioPreset: handle(applyRadioPreset),

		ActionSetProfile:           handle(setProfile),
		ActionSetFrame:             handle(setFrame),
		ActionToggleProfileSticker: handle(toggleProfileSticker),

		ActionAddSticker:    handle(addSticker),
		ActionMoveSticker:   handle(moveSticker),
		ActionRemoveSticker: handle(removeSticker),

		ActionPlaySong:   handle(playSong),
		ActionTogglePlay: handle(togglePlay),
		ActionPlayNext:   handle(playNext),
		ActionPlayPrev:   handle(playPrev),
		ActionSetPreview: handle(setPreview),

		ActionHydrate: handleCtx(hydrate),
	}

	return &r
}

// handle adapts a typed reducer into a handler that decodes and validates its payload.
func handle[T any](fn func(r *Reducer, s *Session, payload T) error) handler {
	return handleCtx(func(_ context.Context, r *Reducer, s *Session, payload T) error {
		return fn(r, s, payload)
	})
}

func handleCtx[T any](fn func(ctx context.Context, r *Reducer, s *Session, payload T) error) handler {
	return func(ctx context.Context, r *Reducer, s *Session, raw json.RawMessage) error {
		var payload T
		if len(raw) > 0 && string(raw) != "null" {
			if err := json.Unmarshal(raw, &payload); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
			}
		}

		if err := r.validate.Err(payload); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}

		return fn(ctx, r, s, payload)
	}
}

// Reduce returns the session that results from applying a to s. s itself is never
// modified; on error s is returned unchanged alongside the error.
func (r *Reducer) Reduce(ctx context.Context, s Session, a Action) (Session, error) {
	h, ok := r.handlers[a.Type]
	if !ok {
		return s, fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
	}

	next := s.Clone()
	if err := h(ctx, r, &next, a.Payload); err != nil {
		return s, fmt.Errorf("%s: %w", a.Type, err)
	}

	return next, nil
}

// Handles reports whether t is a known action type.
func (r *Reducer) Handles(t ActionType) bool {
	_, ok := r.handlers[t]
	return ok
}

// Actions lists every action type the reducer handles, sorted.
func (r *Reducer) Actions() []ActionType {
	types := maps.Keys(r.handlers)
	slices.Sort(types)
	return types
}
