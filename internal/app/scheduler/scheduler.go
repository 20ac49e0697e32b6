// Package scheduler содержит приложение планировщика напоминаний:
// периодический обход коллекции и публикация заданий в брокер.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/alaagym/gym-ledger/internal/config"
	"github.com/alaagym/gym-ledger/internal/lib/rabbitmq"
	"github.com/alaagym/gym-ledger/internal/models"
	schedulerservice "github.com/alaagym/gym-ledger/internal/services/scheduler"
	"github.com/alaagym/gym-ledger/internal/storage/snapshot"
)

// App представляет приложение планировщика.
type App struct {
	schedulerService *schedulerservice.SchedulerService
	conn             *amqp.Connection
	ch               *amqp.Channel
	interval         config.Reminder
	logger           *slog.Logger
}

// New создает новый экземпляр приложения планировщика.
func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL, cfg.RabbitMQ.MaxRetries, cfg.RabbitMQ.RetryDelay)
	if err != nil {
		return nil, fmt.Errorf("failed to connect RabbitMQ: %w", err)
	}

	queues := rabbitmq.GetReminderQueues()
	ch, err := rabbitmq.SetupChannel(conn, queues)
	if err != nil {
		closeResources(nil, conn, logger)
		return nil, fmt.Errorf("failed to setup RabbitMQ channel: %w", err)
	}

	// Снапшотом владеет HTTP-приложение, поэтому планировщик открывает
	// его в режиме наблюдателя и видит мутации другого процесса.
	store, err := snapshot.NewReader(cfg.Snapshot.Dir, cfg.Snapshot.Key, models.SeedMembers(), logger)
	if err != nil {
		closeResources(ch, conn, logger)
		return nil, fmt.Errorf("failed to open snapshot storage: %w", err)
	}

	plans := models.NewPlanCatalog(models.SeedPlans())
	schedulerService := schedulerservice.NewSchedulerService(store, plans, logger)

	return &App{
		schedulerService: schedulerService,
		conn:             conn,
		ch:               ch,
		interval:         cfg.Reminder,
		logger:           logger,
	}, nil
}

func closeResources(ch *amqp.Channel, conn *amqp.Connection, logger *slog.Logger) {
	if ch != nil {
		if err := ch.Close(); err != nil {
			logger.Error("failed to close channel", "error", err)
		}
	}
	if conn != nil {
		if err := conn.Close(); err != nil {
			logger.Error("failed to close connection", "error", err)
		}
	}
}

// Run запускает планировщик до отмены контекста.
func (a *App) Run(ctx context.Context) error {
	go a.schedulerService.Run(ctx, a.ch, a.interval.Interval)

	<-ctx.Done()

	a.logger.Info("shutting down scheduler service")

	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", slog.Any("err", err))
	}

	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", slog.Any("err", err))
	}

	return nil
}
