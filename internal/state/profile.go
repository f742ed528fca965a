package state

import (
	"fmt"

	"github.com/sharetube/roomdecor/internal/catalog"
)

func setProfile(_ *Reducer, s *Session, p ProfilePayload) error {
	var photo *string
	if p.Photo != nil {
		var err error
		if photo, err = image(p.Photo); err != nil {
			return err
		}
	}

	if p.Name != nil {
		s.Room.Profile.Name = *p.Name
	}
	if p.Genre != nil {
		s.Room.Profile.Genre = *p.Genre
	}
	if p.Bio != nil {
		s.Room.Profile.Bio = *p.Bio
	}
	if p.Photo != nil {
		s.Room.Profile.Photo = photo
	}

	return nil
}

func setFrame(_ *Reducer, s *Session, p IndexPayload) error {
	if _, ok := catalog.Frame(p.Index); !ok {
		return fmt.Errorf("%w: frame %d", ErrIndexOutOfRange, p.Index)
	}

	s.Room.Profile.Frame = p.Index
	return nil
}

func toggleProfileSticker(_ *Reducer, s *Session, p IDPayload) error {
	if _, ok := catalog.StickerByID(p.ID); !ok {
		return fmt.Errorf("%w: sticker %q", ErrNotInCatalog, p.ID)
	}

	s.Room.ProfileStickers = toggle(s.Room.ProfileStickers, p.ID)
	return nil
}
