package state

import (
	"fmt"
	"slices"

	"github.com/sharetube/roomdecor/internal/catalog"
	"github.com/sharetube/roomdecor/internal/domain"
)

// New stickers without a position land somewhere inside this box.
const (
	stickerMinX   = 150
	stickerRangeX = 400
	stickerMinY   = 50
	stickerRangeY = 200
)

func addSticker(r *Reducer, s *Session, p AddStickerPayload) error {
	if _, ok := catalog.StickerByID(p.ID); !ok {
		return fmt.Errorf("%w: sticker %q", ErrNotInCatalog, p.ID)
	}

	x := stickerMinX + r.rand()*stickerRangeX
	if p.X != nil {
		x = max(*p.X, 0)
	}

	y := stickerMinY + r.rand()*stickerRangeY
	if p.Y != nil {
		y = max(*p.Y, 0)
	}

	s.Room.PlacedStickers = append(s.Room.PlacedStickers, domain.PlacedSticker{ID: p.ID, X: x, Y: y})
	return nil
}

func moveSticker(_ *Reducer, s *Session, p MoveStickerPayload) error {
	if p.Index < 0 || p.Index >= len(s.Room.PlacedStickers) {
		return fmt.Errorf("%w: sticker %d", ErrIndexOutOfRange, p.Index)
	}

	s.Room.PlacedStickers[p.Index].X = max(p.X, 0)
	s.Room.PlacedStickers[p.Index].Y = max(p.Y, 0)
	return nil
}

func removeSticker(_ *Reducer, s *Session, p IndexPayload) error {
	if p.Index < 0 || p.Index >= len(s.Room.PlacedStickers) {
		return fmt.Errorf("%w: sticker %d", ErrIndexOutOfRange, p.Index)
	}

	s.Room.PlacedStickers = slices.Delete(s.Room.PlacedStickers, p.Index, p.Index+1)
	return nil
}
