package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/rndpresence/presence-backend-go/internal/config"
	"github.com/rndpresence/presence-backend-go/internal/handler/http/middleware"
	"github.com/rndpresence/presence-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	hrHandler HRHandler,
	piHandler PIHandler,
	profileHandler ProfileHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       logLevel(cfg.App.LogLevel),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "presence-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth/login", func(r chi.Router) {
			r.Post("/hr", authHandler.LoginHR)
			r.Post("/pi", authHandler.LoginPI)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/hr", func(r chi.Router) {
				r.Use(middleware.HROnly)

				r.Get("/pis", hrHandler.ListPIs)
				r.Post("/requests", hrHandler.RequestData)
				r.Get("/status", hrHandler.GetStatus)
				r.Get("/report", hrHandler.DownloadReport)
				r.Get("/report/xlsx", hrHandler.DownloadReportXLSX)
				r.Post("/holidays", hrHandler.AddHoliday)

				r.Route("/pis/{username}", func(r chi.Router) {
					r.Get("/attendance", hrHandler.PISummary)
					r.Get("/report", hrHandler.DownloadPIReport)
				})
			})

			r.Route("/pi", func(r chi.Router) {
				r.Use(middleware.PIOnly)

				r.Get("/attendance", piHandler.Attendance)
				r.Get("/notifications", piHandler.Notifications)
				r.Post("/submissions", piHandler.Submit)
			})

			r.Route("/profiles/{employeeNumber}", func(r chi.Router) {
				r.Get("/", profileHandler.GetByEmployeeNumber)
				r.Put("/", profileHandler.Update)
			})
		})
	})
	return r
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
