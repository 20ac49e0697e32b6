// Package stats собирает агрегаты дашборда по коллекции членов клуба.
package stats

import (
	"context"
	"log/slog"
	"time"

	"github.com/alaagym/gym-ledger/internal/lib/sl"
	"github.com/alaagym/gym-ledger/internal/lib/status"
	"github.com/alaagym/gym-ledger/internal/models"
)

// MemberRepository определяет доступ к коллекции для чтения.
type MemberRepository interface {
	List(ctx context.Context) ([]models.Member, error)
}

// Cache описывает методы для кэширования агрегатов.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
}

const cacheKey = "dashboard:stats"
const cacheTTL = time.Minute

// StatsService считает счётчики и суммы для дашборда. Статусы всегда
// пересчитываются от end_date на момент запроса: сохранённый снимок
// статуса может устареть между сохранениями записи.
type StatsService struct {
	repo  MemberRepository
	plans *models.PlanCatalog
	cache Cache
	log   *slog.Logger
	now   func() time.Time
}

// NewStatsService создает новый экземпляр StatsService.
func NewStatsService(repo MemberRepository, plans *models.PlanCatalog, cache Cache, log *slog.Logger) *StatsService {
	return &StatsService{
		repo:  repo,
		plans: plans,
		cache: cache,
		log:   log,
		now:   time.Now,
	}
}

// Collect возвращает агрегаты, используя кэш с коротким TTL.
func (s *StatsService) Collect(ctx context.Context) (models.DashboardStats, error) {
	var cached models.DashboardStats
	found, err := s.cache.Get(cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read stats from cache", sl.Err(err))
	}
	if found {
		return cached, nil
	}

	members, err := s.repo.List(ctx)
	if err != nil {
		return models.DashboardStats{}, err
	}

	result := s.aggregate(members)
	if err := s.cache.Set(cacheKey, result, cacheTTL); err != nil {
		s.log.Warn("failed to cache stats", sl.Err(err))
	}
	return result, nil
}

func (s *StatsService) aggregate(members []models.Member) models.DashboardStats {
	now := s.now()
	result := models.DashboardStats{
		TotalMembers:  len(members),
		MembersByPlan: make(map[string]int),
	}

	for _, m := range members {
		switch status.Derive(m.EndDate.Time, now) {
		case models.StatusActive:
			result.ActiveCount++
		case models.StatusExpiringSoon:
			result.ExpiringCount++
		case models.StatusExpired:
			result.ExpiredCount++
		}
		if m.RemainingAmount > 0 {
			result.DebtorsCount++
			result.TotalOutstanding += m.RemainingAmount
		}
		result.TotalCollected += m.TotalPaid

		planName := m.PlanID
		if plan, ok := s.plans.Find(m.PlanID); ok {
			planName = plan.Name
		}
		result.MembersByPlan[planName]++
	}
	return result
}
