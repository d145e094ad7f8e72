package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kaiwen-teo/primeprep-lambda/internal/assessment"
	"github.com/kaiwen-teo/primeprep-lambda/internal/middlewares"
)

type RouterConfig struct {
	AssessmentHandler *assessment.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)
	r.Use(middlewares.SharedSecretMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/", assessment.Routes(cfg.AssessmentHandler))
	})

	return r
}
