package handler

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts every API endpoint on a fresh chi router.
// Cross-cutting middleware (logging, CORS, metrics, body limits) is applied
// by the caller so tests can exercise routes bare.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.getHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/locations", func(r chi.Router) {
			r.Get("/", s.listLocations)
			r.Post("/", s.createLocation)
			r.Route("/{locationID}", func(r chi.Router) {
				r.Get("/", s.getLocation)
				r.Patch("/", s.updateLocation)
				r.Delete("/", s.deleteLocation)
				r.Post("/visits", s.createVisit)
				r.Patch("/visits/{visitID}", s.updateVisit)
				r.Delete("/visits/{visitID}", s.deleteVisit)
			})
		})
		r.Get("/stats", s.getStats)
		r.Get("/export", s.getExport)
		r.Delete("/data", s.resetData)
	})

	return r
}
