package http

import (
	"log/slog"

	"github.com/cmlabs-hris/workforce/internal/config"
	"github.com/cmlabs-hris/workforce/internal/handler/http/middleware"
	"github.com/cmlabs-hris/workforce/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Auth       AuthHandler
	Profile    ProfileHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Report     ReportHandler
}

func NewRouter(logger *slog.Logger, app config.AppConfig, JWTService jwt.Service, sessions middleware.SessionVerifier, authLimiter *middleware.RateLimiter, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.CORSAllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Retry-After"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RealIP)

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(middleware.Metrics)
	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(authLimiter.Handler)
				r.Post("/signup", h.Auth.SignUp)
				r.Post("/signin", h.Auth.SignIn)
			})

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
				r.Use(middleware.AuthRequired(JWTService.JWTAuth(), sessions))
				r.Post("/signout", h.Auth.SignOut)
				r.Get("/session", h.Auth.Session)
			})
		})

		// Profile insert follows sign-up, before the account has a token.
		r.Post("/users", h.Profile.Create)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth(), sessions))

			r.Get("/users", h.Profile.List)
			r.Get("/users/{id}", h.Profile.Get)

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.Attendance.Get)
				r.Post("/", h.Attendance.Create)
				r.Patch("/{id}", h.Attendance.CheckOut)
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Get("/", h.Leave.List)
				r.Post("/", h.Leave.Create)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/", h.Report.List)
				r.Post("/", h.Report.Create)
				r.Get("/{id}", h.Report.Get)
			})
		})
	})
	return r
}
