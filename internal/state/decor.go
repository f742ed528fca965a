package state

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sharetube/roomdecor/internal/catalog"
)

const imagePrefix = "data:image/"

// image returns the image to store, or nil when the payload clears it.
func image(v *string) (*string, error) {
	if v == nil || *v == "" {
		return nil, nil
	}

	if !strings.HasPrefix(*v, imagePrefix) {
		return nil, fmt.Errorf("%w: image must be a %s data uri", ErrInvalidPayload, imagePrefix)
	}

	img := *v
	return &img, nil
}

func setBgColor(_ *Reducer, s *Session, p ColorPayload) error {
	if err := checkColor(p.Color); err != nil {
		return err
	}

	s.Room.BgColor = p.Color
	return nil
}

func setBgImage(_ *Reducer, s *Session, p ImagePayload) error {
	img, err := image(p.Image)
	if err != nil {
		return err
	}

	s.Room.BgImage = img
	return nil
}

func setPoster(_ *Reducer, s *Session, p ImagePayload) error {
	img, err := image(p.Image)
	if err != nil {
		return err
	}

	s.Room.PosterImage = img
	return nil
}

// applyColors checks every non-nil source first so a bad slot leaves all slots untouched.
func applyColors(slots map[*string]*string) error {
	for _, src := range slots {
		if src == nil {
			continue
		}
		if err := checkColor(*src); err != nil {
			return err
		}
	}

	for dst, src := range slots {
		if src != nil {
			*dst = *src
		}
	}

	return nil
}

func setShelfColors(_ *Reducer, s *Session, p ShelfColorsPayload) error {
	return applyColors(map[*string]*string{
		&s.Room.ShelfColor:    p.Wood,
		&s.Room.ShelfInterior: p.Interior,
		&s.Room.ShelfOutline:  p.Outline,
		&s.Room.ShelfPlank:    p.Plank,
	})
}

func applyShelfPreset(_ *Reducer, s *Session, p IndexPayload) error {
	preset, ok := catalog.ShelfPresetAt(p.Index)
	if !ok {
		return fmt.Errorf("%w: shelf preset %d", ErrIndexOutOfRange, p.Index)
	}

	s.Room.ShelfColor = preset.Wood
	s.Room.ShelfInterior = preset.Interior
	s.Room.ShelfOutline = preset.Outline
	s.Room.ShelfPlank = preset.Plank
	return nil
}

func toggleShelfObject(_ *Reducer, s *Session, p IDPayload) error {
	if _, ok := catalog.ShelfObjectByID(p.ID); !ok {
		return fmt.Errorf("%w: shelf object %q", ErrNotInCatalog, p.ID)
	}

	s.Room.ShelfObjects = toggle(s.Room.ShelfObjects, p.ID)
	return nil
}

func setRadioColors(_ *Reducer, s *Session, p RadioColorsPayload) error {
	return applyColors(map[*string]*string{
		&s.Room.RadioColors.Body:    p.Body,
		&s.Room.RadioColors.Speaker: p.Speaker,
		&s.Room.RadioColors.Handle:  p.Handle,
		&s.Room.RadioColors.Buttons: p.Buttons,
		&s.Room.RadioColors.Detail:  p.Detail,
	})
}

func applyRadioPreset(_ *Reducer, s *Session, p IndexPayload) error {
	preset, ok := catalog.RadioPresetAt(p.Index)
	if !ok {
		return fmt.Errorf("%w: radio preset %d", ErrIndexOutOfRange, p.Index)
	}

	s.Room.RadioColors.Body = preset.Body
	s.Room.RadioColors.Speaker = preset.Speaker
	s.Room.RadioColors.Handle = preset.Handle
	s.Room.RadioColors.Buttons = preset.Buttons
	s.Room.RadioColors.Detail = preset.Detail
	return nil
}

// toggle removes id from ids when present and appends it otherwise.
func toggle(ids []string, id string) []string {
	if i := slices.Index(ids, id); i >= 0 {
		return slices.Delete(ids, i, i+1)
	}

	return append(ids, id)
}
