package controller

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gorilla/websocket"
	"github.com/sharetube/roomdecor/internal/covers"
	"github.com/sharetube/roomdecor/internal/domain"
	"github.com/sharetube/roomdecor/internal/state"
	"github.com/sharetube/roomdecor/pkg/validator"
	"github.com/sharetube/roomdecor/pkg/wsrouter"
)

type iCodec interface {
	Encode(*domain.RoomState) (string, error)
	FromQuery(context.Context, url.Values) *domain.RoomState
	ShareURL(base string, page domain.Page, token string) (string, error)
	Param() string
}

type iReducer interface {
	Reduce(context.Context, state.Session, state.Action) (state.Session, error)
	Actions() []state.ActionType
}

type iLibrary interface {
	Search(query string, limit int) []domain.Song
}

type iCoverService interface {
	Lookup(ctx context.Context, name, artist string) (covers.Cover, error)
	LookupPreview(ctx context.Context, name, artist string) (covers.Cover, error)
}

type Config struct {
	// PublicURL is the page share links point at.
	PublicURL string
}

type Params struct {
	Codec        iCodec
	Reducer      iReducer
	Library      iLibrary
	CoverService iCoverService
}

type controller struct {
	codec        iCodec
	reducer      iReducer
	library      iLibrary
	coverService iCoverService
	publicURL    string
	upgrader     websocket.Upgrader
	validate     *validator.Validator
	wsmux        *wsrouter.WSRouter
	logger       *slog.Logger
}

func NewController(params *Params, cfg *Config, logger *slog.Logger) *controller {
	c := controller{
		codec:        params.Codec,
		reducer:      params.Reducer,
		library:      params.Library,
		coverService: params.CoverService,
		publicURL:    cfg.PublicURL,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		validate: validator.NewValidator(),
		logger:   logger,
	}
	c.wsmux = c.getWSRouter()

	return &c
}
