// Package ledger содержит бизнес-логику учёта членов клуба:
// вычисление биллингового снимка при сохранении и CRUD-операции
// над коллекцией с пересохранением снапшота на каждую мутацию.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alaagym/gym-ledger/internal/lib/billing"
	"github.com/alaagym/gym-ledger/internal/lib/sl"
	"github.com/alaagym/gym-ledger/internal/lib/status"
	"github.com/alaagym/gym-ledger/internal/models"
)

// ErrUnknownPlan возвращается при ссылке на несуществующий тариф.
// Это нарушение предусловия сохранения: запись не создаётся и не меняется.
var ErrUnknownPlan = errors.New("unknown plan")

// ErrInvalidStartDate возвращается при нечитаемой дате начала.
var ErrInvalidStartDate = errors.New("invalid start date")

// MemberRepository определяет методы для работы с коллекцией членов клуба.
type MemberRepository interface {
	// Create добавляет запись в конец коллекции.
	Create(ctx context.Context, member models.Member) error
	// Read возвращает запись по ID.
	Read(ctx context.Context, id string) (*models.Member, error)
	// Update заменяет запись с совпадающим ID.
	Update(ctx context.Context, member models.Member) error
	// Remove удаляет запись по ID и возвращает количество удалённых.
	Remove(ctx context.Context, id string) (int, error)
	// List возвращает коллекцию целиком в порядке хранения.
	List(ctx context.Context) ([]models.Member, error)
}

// Cache описывает методы для кэширования производных данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// Ключи кэша, сбрасываемые при каждой мутации коллекции.
const (
	StatsCacheKey   = "dashboard:stats"
	InsightCacheKey = "dashboard:insight"
)

// LedgerService реализует операции над коллекцией членов клуба.
type LedgerService struct {
	repo  MemberRepository
	plans *models.PlanCatalog
	cache Cache
	log   *slog.Logger
	now   func() time.Time
}

// NewLedgerService создает новый экземпляр LedgerService.
func NewLedgerService(repo MemberRepository, plans *models.PlanCatalog, cache Cache, log *slog.Logger) *LedgerService {
	return &LedgerService{
		repo:  repo,
		plans: plans,
		cache: cache,
		log:   log,
		now:   time.Now,
	}
}

// Plans возвращает каталог тарифов.
func (s *LedgerService) Plans() []models.Plan {
	return s.plans.All()
}

// Create собирает полную запись из данных запроса и добавляет её
// в коллекцию. Идентификатор выдаётся новый, все производные поля
// (end_date, status, remaining_amount) вычисляются здесь.
func (s *LedgerService) Create(ctx context.Context, req models.DummyMember) (*models.Member, error) {
	member, err := s.build(uuid.NewString(), req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, *member); err != nil {
		return nil, err
	}
	s.log.Info("created new member", slog.String("id", member.ID))
	s.invalidateDerived()

	return member, nil
}

// Update полностью заменяет поля существующей записи заново
// вычисленными; идентификатор сохраняется.
func (s *LedgerService) Update(ctx context.Context, id string, req models.DummyMember) (*models.Member, error) {
	if _, err := s.repo.Read(ctx, id); err != nil {
		return nil, err
	}

	member, err := s.build(id, req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, *member); err != nil {
		return nil, err
	}
	s.log.Info("updated member", slog.String("id", id))
	s.invalidateDerived()

	return member, nil
}

// Read возвращает запись по ID со статусом, пересчитанным на текущий момент.
func (s *LedgerService) Read(ctx context.Context, id string) (*models.Member, error) {
	member, err := s.repo.Read(ctx, id)
	if err != nil {
		return nil, err
	}
	member.Status = status.Derive(member.EndDate.Time, s.now())
	return member, nil
}

// Remove удаляет запись по ID, возвращает количество удалённых записей.
func (s *LedgerService) Remove(ctx context.Context, id string) (int, error) {
	count, err := s.repo.Remove(ctx, id)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.log.Info("removed member", slog.String("id", id))
		s.invalidateDerived()
	}
	return count, nil
}

// List возвращает проекцию коллекции по фильтру. Коллекция не
// мутируется; статус каждой записи пересчитывается от end_date
// на момент запроса, сохранённый снимок игнорируется.
func (s *LedgerService) List(ctx context.Context, filter models.MemberFilter) ([]models.Member, error) {
	members, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	result := make([]models.Member, 0, len(members))
	for _, m := range members {
		m.Status = status.Derive(m.EndDate.Time, now)
		if !matches(m, filter) {
			continue
		}
		result = append(result, m)
	}
	return result, nil
}

// build выполняет вычисление биллингового снимка (§ enrollment):
// тариф обязан разрешаться, иначе сохранение прерывается целиком.
func (s *LedgerService) build(id string, req models.DummyMember) (*models.Member, error) {
	plan, ok := s.plans.Find(req.PlanID)
	if !ok {
		return nil, fmt.Errorf("plan %q: %w", req.PlanID, ErrUnknownPlan)
	}

	startDate, err := models.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStartDate, req.StartDate)
	}

	totalPaid := billing.ParseAmount(string(req.TotalPaid))
	endDate := billing.EndDate(startDate, plan.DurationMonths)

	return &models.Member{
		ID:              id,
		Name:            req.Name,
		Phone:           req.Phone,
		Email:           req.Email,
		PlanID:          plan.ID,
		StartDate:       startDate,
		EndDate:         endDate,
		Status:          status.Derive(endDate.Time, s.now()),
		TotalPaid:       totalPaid,
		RemainingAmount: billing.Remaining(plan.Price, totalPaid),
		PaymentMethod:   models.ParsePaymentMethod(req.PaymentMethod),
		Notes:           req.Notes,
	}, nil
}

func (s *LedgerService) invalidateDerived() {
	for _, key := range []string{StatsCacheKey, InsightCacheKey} {
		if err := s.cache.Invalidate(key); err != nil {
			s.log.Warn("failed to invalidate cache", slog.String("key", key), sl.Err(err))
		}
	}
}

func matches(m models.Member, filter models.MemberFilter) bool {
	if filter.Query != "" {
		q := strings.ToLower(filter.Query)
		if !strings.Contains(strings.ToLower(m.Name), q) && !strings.Contains(strings.ToLower(m.Phone), q) {
			return false
		}
	}
	if filter.Status != "" && m.Status != filter.Status {
		return false
	}
	if filter.PlanID != "" && m.PlanID != filter.PlanID {
		return false
	}
	if filter.OnlyDebtors && m.RemainingAmount <= 0 {
		return false
	}
	return true
}
