// Package gymledger собирает HTTP-приложение учёта членов клуба:
// снапшот-хранилище, кэш, сервисы и маршруты.
package gymledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/alaagym/gym-ledger/internal/cache"
	"github.com/alaagym/gym-ledger/internal/config"
	"github.com/alaagym/gym-ledger/internal/lib/gemini"
	"github.com/alaagym/gym-ledger/internal/lib/jwt"
	"github.com/alaagym/gym-ledger/internal/lib/sl"
	"github.com/alaagym/gym-ledger/internal/models"
	insightservice "github.com/alaagym/gym-ledger/internal/services/insight"
	ledgerservice "github.com/alaagym/gym-ledger/internal/services/ledger"
	statsservice "github.com/alaagym/gym-ledger/internal/services/stats"
	"github.com/alaagym/gym-ledger/internal/storage/snapshot"
)

// App представляет HTTP-приложение сервиса.
type App struct {
	server *http.Server
	logger *slog.Logger
	gemini *gemini.Client
}

// New создает новый экземпляр приложения: поднимает хранилище со
// снапшотом (с посевом при отсутствии файла), кэш и клиента
// генеративной модели, собирает сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	store, err := snapshot.New(cfg.Snapshot.Dir, cfg.Snapshot.Key, models.SeedMembers(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot storage: %w", err)
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, fmt.Errorf("cache not initialized: %w", err)
	}

	geminiClient, err := gemini.New(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to init gemini client: %w", err)
	}

	plans := models.NewPlanCatalog(models.SeedPlans())
	maker := jwt.NewJWTMaker(cfg.JWTToken.JWTSecretKey, cfg.JWTToken.TokenTTL)

	ledgerService := ledgerservice.NewLedgerService(store, plans, cacheRedis, logger)
	statsService := statsservice.NewStatsService(store, plans, cacheRedis, logger)
	insightService := insightservice.NewInsightService(geminiClient, statsService, plans, cacheRedis, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg.Admin, maker, plans,
		ledgerService, statsService, insightService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		gemini: geminiClient,
	}, nil
}

// Run запускает HTTP-сервер и завершает его мягко по отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if cerr := a.gemini.Close(); cerr != nil {
			a.logger.Error("failed to close gemini client", sl.Err(cerr))
		}
		return err
	}
}
