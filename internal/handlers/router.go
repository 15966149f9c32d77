package handlers

import (
	"net/http"

	"github.com/aakhmedov/freightpay/internal/config"
	"github.com/aakhmedov/freightpay/internal/middleware"
	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"
)

func NewRouter(handler *Handler, cfg *config.Config) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.NewLoggingMiddleware())
	r.Use(middleware.NewGzipMiddleware())

	limiter := middleware.NewCallerRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid URL format", http.StatusNotFound)
	})

	// The webhook authenticates by body signature, not by service token.
	r.With(middleware.RateLimitMiddleware(limiter)).
		Post("/api/webhook/payment", handler.PaymentWebhook)

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTMiddleware(cfg.SecretKey))
		r.Use(middleware.RateLimitMiddleware(limiter))

		r.Route("/api/users/{userID}", func(r chi.Router) {
			r.Get("/balance", handler.GetBalance)
			r.Get("/transactions", handler.GetTransactions)
			r.Post("/withdraw", handler.Withdraw)
		})

		r.Route("/api/escrow", func(r chi.Router) {
			r.Post("/freeze", handler.Freeze)
			r.Post("/release", handler.Release)
			r.Post("/refund", handler.Refund)
			r.Get("/{orderID}", handler.GetEscrow)
		})

		r.Route("/api/admin", func(r chi.Router) {
			r.Use(middleware.AdminOnly())

			r.Get("/settings", handler.GetSettings)
			r.Put("/settings", handler.UpdateSettings)
			r.Get("/income", handler.GetPlatformIncome)

			r.Route("/commission/levels", func(r chi.Router) {
				r.Get("/", handler.GetLevels)
				r.Post("/", handler.CreateLevel)
				r.Put("/{levelID}", handler.UpdateLevel)
				r.Delete("/{levelID}", handler.DeleteLevel)
			})

			r.Put("/commission/overrides/{userID}", handler.SetOverride)
			r.Delete("/commission/overrides/{userID}", handler.ClearOverride)

			r.Post("/subscriptions", handler.GrantSubscription)
			r.Post("/users/{userID}/bonus", handler.GrantBonus)
		})
	})

	return r
}
