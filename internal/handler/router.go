package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tidechart/asv-telemetry/spec"
)

// Routes mounts every API endpoint on a chi router. The /api prefix and the
// resource layout mirror the clients the vessel firmware and frontend
// already speak to.
//
// When staticDir is non-empty the frontend is served from it at the web root,
// with / redirecting to /index.html.
func (s *Server) Routes(staticDir string) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.Write(spec.OpenAPI) //nolint:errcheck
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/data", func(r chi.Router) {
			r.Get("/{tripID}", s.GetData)
			r.Post("/", s.PostData)
		})
		r.Route("/gps", func(r chi.Router) {
			r.Get("/", s.GetGPS)
			r.Post("/", s.PostGPS)
		})
		r.Route("/paths", func(r chi.Router) {
			r.Get("/", s.GetPaths)
			r.Get("/{pathID}", s.GetPath)
			r.Post("/", s.PostPaths)
		})
		r.Route("/trips", func(r chi.Router) {
			r.Get("/", s.GetTrips)
			r.Post("/", s.PostTrips)
		})
		r.Route("/led_test", func(r chi.Router) {
			r.Get("/", s.GetLED)
			r.Post("/", s.PostLED)
		})
	})

	if staticDir != "" {
		fs := http.FileServer(http.Dir(staticDir))
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			http.Redirect(w, req, "/index.html", http.StatusMovedPermanently)
		})
		r.NotFound(fs.ServeHTTP)
	}

	return r
}
