package state

import "errors"

var (
	ErrUnknownAction        = errors.New("unknown action")
	ErrInvalidPayload       = errors.New("invalid payload")
	ErrInvalidColor         = errors.New("invalid color")
	ErrNotInCatalog         = errors.New("not in catalog")
	ErrIndexOutOfRange      = errors.New("index out of range")
	ErrNoDraft              = errors.New("no playlist draft in progress")
	ErrPlaylistLimitReached = errors.New("playlist limit reached")
	ErrSongsLimitReached    = errors.New("songs limit reached")
)
