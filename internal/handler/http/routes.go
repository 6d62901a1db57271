package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getVersion)

		r.Route("/bookmarks", func(r chi.Router) {
			r.Get("/", h.listBookmarks)
			r.Post("/", h.createBookmark)
			r.Put("/order", h.reorderBookmarks)
			r.Put("/{id}", h.updateBookmark)
			r.Delete("/{id}", h.deleteBookmark)
		})

		r.Route("/background", func(r chi.Router) {
			r.Get("/", h.getBackground)
			r.Patch("/", h.patchBackground)
			r.Get("/style", h.getBackgroundStyle)
			r.Post("/bing", h.refreshBingWallpaper)
		})

		r.Route("/search", func(r chi.Router) {
			r.Get("/", h.searchURL)
			r.Get("/engine", h.getSearchEngine)
			r.Put("/engine", h.putSearchEngine)
		})

		r.Route("/foods", func(r chi.Router) {
			r.Get("/", h.listFoods)
			r.Post("/", h.createFood)
			r.Put("/{id}", h.updateFood)
			r.Delete("/{id}", h.deleteFood)
		})

		r.Route("/intake", func(r chi.Router) {
			r.Get("/records", h.listRecords)
			r.Post("/records", h.createRecord)
			r.Delete("/records/{id}", h.deleteRecord)
			r.Get("/totals", h.getTotals)
			r.Get("/limits", h.getDailyLimits)
			r.Put("/limits", h.putDailyLimits)
		})

		r.Route("/backup", func(r chi.Router) {
			r.Get("/", h.downloadBackup)
			r.Post("/", h.uploadBackup)
		})
	})

	return router
}
