// Package http exposes the hazard workspace over a REST API.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hazop-lab/hazgrid/pkg/usecase"
	"github.com/hazop-lab/hazgrid/pkg/utils/logging"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

type Options func(*Server)

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Route("/hazards", func(r chi.Router) {
			r.Get("/", s.listHazards)
			r.Post("/", s.createHazard)
			r.Route("/{hazardID}", func(r chi.Router) {
				r.Get("/", s.getHazard)
				r.Put("/", s.updateHazard)
				r.Delete("/", s.deleteHazard)
				r.Post("/duplicate", s.duplicateHazard)
			})
		})

		r.Get("/layout", s.getLayouts)

		r.Route("/matrix", func(r chi.Router) {
			r.Get("/", s.getMatrix)
			r.Put("/", s.updateMatrix)
			r.Get("/config", s.exportMatrixConfig)
			r.Post("/config", s.importMatrixConfig)
		})

		r.Route("/document", func(r chi.Router) {
			r.Get("/", s.exportDocument)
			r.Post("/", s.importDocument)
		})

		r.Get("/export/xlsx", s.exportWorkbook)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
