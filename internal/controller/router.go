package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (c controller) GetMux() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(c.requestIdMw)
	r.Use(c.requestLoggingMw)
	r.Use(cors.AllowAll().Handler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("OK"))
		})
		r.Get("/catalog", c.getCatalog)
		r.Get("/songs", c.searchSongs)
		r.Get("/covers", c.getCover)
		r.Get("/room", c.getRoom)
		r.Route("/share", func(r chi.Router) {
			r.Post("/", c.share)
			r.Get("/qr", c.shareQR)
		})
		r.Route("/ws", func(r chi.Router) {
			r.Get("/session", c.session)
		})
	})

	return r
}
