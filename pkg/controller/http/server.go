package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/usecase"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

func New(uc *usecase.UseCases) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}

	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK")) //nolint:errcheck
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", s.handleChat)
		r.Post("/voice", s.handleVoice)
		r.Post("/transcript", s.handleTranscript)

		r.Route("/timeline", func(r chi.Router) {
			r.Get("/", s.handleTimelineList)
			r.Post("/", s.handleTimelineCreate)
			r.Put("/{id}", s.handleTimelineUpdate)
			r.Delete("/{id}", s.handleTimelineDelete)
		})

		r.Route("/deadlines", func(r chi.Router) {
			r.Get("/", s.handleDeadlineList)
			r.Get("/calculate", s.handleDeadlineCalculate)
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
