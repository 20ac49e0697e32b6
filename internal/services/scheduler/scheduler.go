// Package scheduler периодически сканирует коллекцию членов клуба
// и публикует задания на напоминания в RabbitMQ.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/streadway/amqp"

	"github.com/alaagym/gym-ledger/internal/lib/rabbitmq"
	"github.com/alaagym/gym-ledger/internal/lib/sl"
	"github.com/alaagym/gym-ledger/internal/lib/status"
	"github.com/alaagym/gym-ledger/internal/models"
)

// MemberRepository определяет доступ к коллекции для чтения.
type MemberRepository interface {
	List(ctx context.Context) ([]models.Member, error)
}

// SchedulerService выбирает членов клуба для напоминаний. Конвейер
// не трогает состояние коллекции: статус пересчитывается от end_date
// на момент сканирования, ошибки публикации только логируются.
type SchedulerService struct {
	repo  MemberRepository
	plans *models.PlanCatalog
	log   *slog.Logger
	now   func() time.Time
}

// NewSchedulerService создает новый экземпляр SchedulerService.
func NewSchedulerService(repo MemberRepository, plans *models.PlanCatalog, log *slog.Logger) *SchedulerService {
	return &SchedulerService{
		repo:  repo,
		plans: plans,
		log:   log,
		now:   time.Now,
	}
}

// Run запускает цикл сканирования с заданным интервалом.
// Первый проход выполняется сразу.
func (s *SchedulerService) Run(ctx context.Context, channel *amqp.Channel, interval time.Duration) {
	s.scan(ctx, channel)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.scan(ctx, channel)
		case <-ctx.Done():
			return
		}
	}
}

// scan публикует задание "expiring" для заканчивающихся и истёкших
// абонементов и задание "debt" для записей с остатком по оплате.
// Одна запись может попасть в обе очереди.
func (s *SchedulerService) scan(ctx context.Context, channel *amqp.Channel) {
	s.log.Info("starting reminder scan")
	members, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list members", sl.Err(err))
		return
	}

	now := s.now()
	var published int
	for _, m := range members {
		derived := status.Derive(m.EndDate.Time, now)

		if derived == models.StatusExpiringSoon || derived == models.StatusExpired {
			if err := s.publish(channel, "expiring", s.buildJob(m, models.ReminderExpiring, derived)); err == nil {
				published++
			}
		}
		if m.RemainingAmount > 0 {
			if err := s.publish(channel, "debt", s.buildJob(m, models.ReminderDebt, derived)); err == nil {
				published++
			}
		}
	}

	if published == 0 {
		s.log.Info("no reminders to publish")
		return
	}
	s.log.Info("published reminder jobs", slog.Int("count", published))
}

func (s *SchedulerService) publish(channel *amqp.Channel, routingKey string, job models.ReminderJob) error {
	if err := rabbitmq.PublishMessage(channel, rabbitmq.ExchangeName, routingKey, job); err != nil {
		s.log.Error("failed to publish reminder", slog.String("member_id", job.MemberID), sl.Err(err))
		return err
	}
	return nil
}

func (s *SchedulerService) buildJob(m models.Member, kind models.ReminderKind, derived models.Status) models.ReminderJob {
	planName := m.PlanID
	if plan, ok := s.plans.Find(m.PlanID); ok {
		planName = plan.Name
	}
	return models.ReminderJob{
		Kind:            kind,
		MemberID:        m.ID,
		Name:            m.Name,
		Phone:           m.Phone,
		PlanName:        planName,
		Status:          derived,
		RemainingAmount: m.RemainingAmount,
		EndDate:         m.EndDate,
	}
}
