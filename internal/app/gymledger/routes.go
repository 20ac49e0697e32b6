// Package gymledger предоставляет маршруты для основного приложения.
package gymledger

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alaagym/gym-ledger/internal/config"
	"github.com/alaagym/gym-ledger/internal/http/handlers/auth/login"
	insighthandler "github.com/alaagym/gym-ledger/internal/http/handlers/dashboard/insight"
	statshandler "github.com/alaagym/gym-ledger/internal/http/handlers/dashboard/stats"
	"github.com/alaagym/gym-ledger/internal/http/handlers/health"
	"github.com/alaagym/gym-ledger/internal/http/handlers/member/create"
	"github.com/alaagym/gym-ledger/internal/http/handlers/member/export"
	"github.com/alaagym/gym-ledger/internal/http/handlers/member/list"
	"github.com/alaagym/gym-ledger/internal/http/handlers/member/read"
	"github.com/alaagym/gym-ledger/internal/http/handlers/member/remind"
	"github.com/alaagym/gym-ledger/internal/http/handlers/member/remove"
	"github.com/alaagym/gym-ledger/internal/http/handlers/member/update"
	planlist "github.com/alaagym/gym-ledger/internal/http/handlers/plan/list"
	"github.com/alaagym/gym-ledger/internal/http/middlewarectx"
	"github.com/alaagym/gym-ledger/internal/lib/jwt"
	"github.com/alaagym/gym-ledger/internal/models"
	insightservice "github.com/alaagym/gym-ledger/internal/services/insight"
	ledgerservice "github.com/alaagym/gym-ledger/internal/services/ledger"
	statsservice "github.com/alaagym/gym-ledger/internal/services/stats"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, admin config.Admin, maker jwt.Maker,
	plans *models.PlanCatalog, ledgerService *ledgerservice.LedgerService,
	statsService *statsservice.StatsService, insightService *insightservice.InsightService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/login", login.New(logger, admin, maker).ServeHTTP)
		r.Get("/health", health.New().ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(maker, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/members", create.New(logger, ledgerService).ServeHTTP)
			r.Get("/members/list", list.New(logger, ledgerService).ServeHTTP)
			r.Get("/members/export", export.New(logger, ledgerService, plans).ServeHTTP)
			r.Get("/members/{id}", read.New(logger, ledgerService).ServeHTTP)
			r.Put("/members/{id}", update.New(logger, ledgerService).ServeHTTP)
			r.Delete("/members/{id}", remove.New(logger, ledgerService).ServeHTTP)
			r.Get("/members/{id}/reminder-link", remind.New(logger, ledgerService, plans).ServeHTTP)
			r.Get("/plans", planlist.New(logger, ledgerService).ServeHTTP)
			r.Get("/dashboard/stats", statshandler.New(logger, statsService).ServeHTTP)
			r.Get("/dashboard/insight", insighthandler.New(logger, insightService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
}
