package controller

import (
	"errors"
	"net/http"

	"github.com/sharetube/roomdecor/internal/catalog"
	"github.com/sharetube/roomdecor/internal/codec"
	"github.com/sharetube/roomdecor/internal/covers"
	"github.com/sharetube/roomdecor/internal/domain"
	"github.com/sharetube/roomdecor/pkg/rest"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSongsLimit = 20
	maxSongsLimit     = 100
	qrSize            = 320
)

func (c controller) getCatalog(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, rest.Envelope{"data": catalog.Snapshot()})
}

func (c controller) searchSongs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit := intQuery(query.Get("limit"), defaultSongsLimit, maxSongsLimit)

	rest.WriteJSON(w, http.StatusOK, rest.Envelope{"data": c.library.Search(query.Get("q"), limit)})
}

func (c controller) getCover(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		rest.WriteJSON(w, http.StatusBadRequest, rest.Envelope{"error": "name is required"})
		return
	}

	cover, err := c.coverService.Lookup(r.Context(), name, r.URL.Query().Get("artist"))
	if err != nil {
		// artwork is cosmetic, a failed lookup is served as no artwork
		c.logger.WarnContext(r.Context(), "failed to look up cover", "error", err)
		cover = covers.Cover{}
	}

	rest.WriteJSON(w, http.StatusOK, rest.Envelope{"data": cover})
}

type shareResponse struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

func (c controller) share(w http.ResponseWriter, r *http.Request) {
	// rooms from newer clients may carry fields this server does not know yet
	var room domain.RoomState
	if err := rest.ReadJSONLenient(r, &room); err != nil {
		c.logger.DebugContext(r.Context(), "failed to read share body", "error", err)
		status := http.StatusUnprocessableEntity
		if errors.Is(err, rest.ErrBodyTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		rest.WriteJSON(w, status, rest.Envelope{"error": err.Error()})
		return
	}

	if validationErrors, ok := c.validate.Validate(room); !ok {
		c.logger.DebugContext(r.Context(), "invalid share body", "errors", validationErrors)
		rest.WriteJSON(w, http.StatusBadRequest, rest.Envelope{"errors": validationErrors})
		return
	}

	page := domain.SanitizePage(r.URL.Query().Get("page"))
	resp, err := c.shareLink(&room, page)
	if err != nil {
		c.logger.InfoContext(r.Context(), "failed to share room", "error", err)
		status := http.StatusInternalServerError
		if errors.Is(err, codec.ErrTokenTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		rest.WriteJSON(w, status, rest.Envelope{"error": err.Error()})
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.Envelope{"data": resp})
}

func (c controller) shareLink(room *domain.RoomState, page domain.Page) (shareResponse, error) {
	token, err := c.codec.Encode(room)
	if err != nil {
		return shareResponse{}, err
	}

	url, err := c.codec.ShareURL(c.publicURL, page, token)
	if err != nil {
		return shareResponse{}, err
	}

	return shareResponse{Token: token, URL: url}, nil
}

func (c controller) shareQR(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if c.codec.FromQuery(r.Context(), query) == nil {
		rest.WriteJSON(w, http.StatusBadRequest, rest.Envelope{"error": "missing or invalid room token"})
		return
	}

	page := domain.SanitizePage(query.Get("page"))
	url, err := c.codec.ShareURL(c.publicURL, page, query.Get(c.codec.Param()))
	if err != nil {
		c.logger.WarnContext(r.Context(), "failed to build share url", "error", err)
		rest.WriteJSON(w, http.StatusInternalServerError, rest.Envelope{"error": err.Error()})
		return
	}

	png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		c.logger.WarnContext(r.Context(), "failed to encode qr code", "error", err)
		rest.WriteJSON(w, http.StatusInternalServerError, rest.Envelope{"error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

type roomResponse struct {
	Page   domain.Page      `json:"page"`
	Room   domain.RoomState `json:"room"`
	Shared bool             `json:"shared"`
}

// getRoom resolves a share link. Anything wrong with the token yields the default room.
func (c controller) getRoom(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	resp := roomResponse{
		Page: domain.SanitizePage(query.Get("page")),
	}
	if room := c.codec.FromQuery(r.Context(), query); room != nil {
		resp.Room = *room
		resp.Shared = true
	} else {
		resp.Room = domain.NewRoomState()
	}

	rest.WriteJSON(w, http.StatusOK, rest.Envelope{"data": resp})
}
