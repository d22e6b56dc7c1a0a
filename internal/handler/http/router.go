package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/li-cell/election-backend-go/internal/config"
	"github.com/li-cell/election-backend-go/internal/handler/http/middleware"
	"github.com/li-cell/election-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	resultsHandler ResultsHandler,
	seatHandler SeatHandler,
	reportHandler ReportHandler,
	adminHandler AdminHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "election-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Post("/auth/login", authHandler.Login)

		r.Route("/results", func(r chi.Router) {
			r.Get("/", resultsHandler.Overview)
			r.Get("/rollup", resultsHandler.Rollup)
			r.Get("/ticker", resultsHandler.Ticker)
			r.Get("/chart-series", resultsHandler.ChartSeries)
			r.Get("/chart.png", reportHandler.ChartPNG)
			r.Get("/options", resultsHandler.Options)
		})

		r.Get("/seats/{seatNo}", resultsHandler.GetSeat)

		r.Route("/reports", func(r chi.Router) {
			r.Get("/winners.txt", reportHandler.WinnersReport)
			r.Get("/party-summary.txt", reportHandler.PartySummary)
		})

		r.Get("/parties", seatHandler.ListParties)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Post("/results/refresh", resultsHandler.Refresh)
			r.Post("/parties", seatHandler.RegisterParty)

			r.Route("/seats/{seatNo}", func(r chi.Router) {
				r.Put("/results", seatHandler.EnterResult)
				r.Post("/declare", seatHandler.Declare)
				r.Post("/revoke", seatHandler.Revoke)
				r.Post("/suspend", seatHandler.Suspend)
				r.Post("/unsuspend", seatHandler.Unsuspend)
				r.Delete("/results/{party}", seatHandler.DeleteResult)
			})

			// Admin only
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Post("/initialize", seatHandler.Initialize)
				r.Post("/delete-all", seatHandler.DeleteAll)

				r.Route("/roles", func(r chi.Router) {
					r.Get("/", adminHandler.ListRoles)
					r.Post("/", adminHandler.CreateRole)
					r.Get("/{id}", adminHandler.GetRole)
					r.Put("/{id}", adminHandler.UpdateRole)
					r.Delete("/{id}", adminHandler.DeleteRole)
				})

				r.Route("/users", func(r chi.Router) {
					r.Get("/", adminHandler.ListUsers)
					r.Post("/", adminHandler.CreateUser)
					r.Get("/{id}", adminHandler.GetUser)
					r.Put("/{id}", adminHandler.UpdateUser)
					r.Delete("/{id}", adminHandler.DeleteUser)
				})
			})
		})
	})
	return r
}
