package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/unrolled/secure"

	_ "github.com/GlebRadaev/courier-settlement/docs"
	ridershandlers "github.com/GlebRadaev/courier-settlement/internal/handlers/riders"
	settlementshandlers "github.com/GlebRadaev/courier-settlement/internal/handlers/settlements"
	"github.com/GlebRadaev/courier-settlement/internal/metrics"
	"github.com/GlebRadaev/courier-settlement/internal/service"
	"github.com/GlebRadaev/courier-settlement/pkg/auth"
)

type SettlementHandler interface {
	GetSummary(w http.ResponseWriter, r *http.Request)
	GetDayDetail(w http.ResponseWriter, r *http.Request)
	MarkPendingValidation(w http.ResponseWriter, r *http.Request)
	Validate(w http.ResponseWriter, r *http.Request)
	Reopen(w http.ResponseWriter, r *http.Request)
	GetCounterparties(w http.ResponseWriter, r *http.Request)
}

type RiderHandler interface {
	GetRiderSummary(w http.ResponseWriter, r *http.Request)
	SetRiderValidated(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	SettlementHandler SettlementHandler
	RiderHandler      RiderHandler

	jwt                *auth.JWTService
	metrics            *metrics.Metrics
	rateLimitPerMinute int
}

type Options struct {
	JWT                *auth.JWTService
	Metrics            *metrics.Metrics
	RateLimitPerMinute int
}

func New(s *service.Services, opts Options) *Handlers {
	return &Handlers{
		SettlementHandler:  settlementshandlers.New(s.SettlementService),
		RiderHandler:       ridershandlers.New(s.RiderService),
		jwt:                opts.JWT,
		metrics:            opts.Metrics,
		rateLimitPerMinute: opts.RateLimitPerMinute,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	headers := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		headers.Handler,
		h.metrics.Middleware,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", h.metrics.Handler())

	writeLimit := func(next http.Handler) http.Handler { return next }
	if h.rateLimitPerMinute > 0 {
		writeLimit = httprate.LimitByIP(h.rateLimitPerMinute, time.Minute)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(auth.Middleware(h.jwt))

		r.Route("/settlements", func(r chi.Router) {
			r.Get("/summary", h.SettlementHandler.GetSummary)
			r.Get("/detail", h.SettlementHandler.GetDayDetail)
			r.Get("/counterparties", h.SettlementHandler.GetCounterparties)
			r.Group(func(r chi.Router) {
				r.Use(writeLimit)
				r.Post("/mark-pending", h.SettlementHandler.MarkPendingValidation)
				r.Post("/validate", h.SettlementHandler.Validate)
				r.Post("/reopen", h.SettlementHandler.Reopen)
			})
		})
		r.Route("/riders", func(r chi.Router) {
			r.Get("/summary", h.RiderHandler.GetRiderSummary)
			r.With(writeLimit).Post("/validate", h.RiderHandler.SetRiderValidated)
		})
	})

	return r
}
