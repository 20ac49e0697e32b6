// Package sender содержит приложение отправки напоминаний: потребление
// заданий из очередей брокера и рассылка писем оператору зала.
package sender

import (
	"context"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/alaagym/gym-ledger/internal/config"
	"github.com/alaagym/gym-ledger/internal/lib/rabbitmq"
	"github.com/alaagym/gym-ledger/internal/lib/smtp"
	senderservice "github.com/alaagym/gym-ledger/internal/services/sender"
)

// App представляет приложение отправки напоминаний.
type App struct {
	conn          *amqp.Connection
	ch            *amqp.Channel
	senderService *senderservice.SenderService
	logger        *slog.Logger
}

// New создает новый экземпляр приложения отправки.
func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL, cfg.RabbitMQ.MaxRetries, cfg.RabbitMQ.RetryDelay)
	if err != nil {
		return nil, err
	}

	queues := rabbitmq.GetReminderQueues()
	ch, err := rabbitmq.SetupChannel(conn, queues)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	newTransport := smtp.NewTransport(cfg.SMTPConnection, logger)
	senderService := senderservice.NewSenderService(newTransport, cfg.Reminder.OperatorEmail, logger)

	return &App{
		conn:          conn,
		ch:            ch,
		senderService: senderService,
		logger:        logger,
	}, nil
}

// Run подписывает обработчики на очереди напоминаний и работает
// до отмены контекста.
func (a *App) Run(ctx context.Context) error {
	err := rabbitmq.ConsumerMessage(ctx, a.ch, "reminder.expiring", a.senderService.SendExpiringReminder)
	if err != nil {
		a.logger.Error("failed to start reminder.expiring consumer", slog.Any("err", err))
		return err
	}

	err = rabbitmq.ConsumerMessage(ctx, a.ch, "reminder.debt", a.senderService.SendDebtReminder)
	if err != nil {
		a.logger.Error("failed to start reminder.debt consumer", slog.Any("err", err))
		return err
	}

	<-ctx.Done()
	a.logger.Info("sender service shutting down gracefully")

	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", slog.Any("err", err))
	}

	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", slog.Any("err", err))
	}

	return nil
}
