// Package insight получает у генеративной модели короткие рекомендации
// по управлению залом на основе сводки данных. Запрос одиночный,
// без повторов; любая ошибка заменяется статичным арабским сообщением
// и никогда не доходит до пользователя как ошибка.
package insight

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/alaagym/gym-ledger/internal/lib/sl"
	"github.com/alaagym/gym-ledger/internal/models"
)

// FallbackMessage возвращается при любой неудаче обращения к модели.
const FallbackMessage = "عذراً، تعذر الاتصال بمساعد الذكاء الاصطناعي حالياً."

const cacheKey = "dashboard:insight"
const cacheTTL = time.Hour
const requestTimeout = 30 * time.Second

// Generator описывает клиента генеративной модели.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// StatsProvider отдаёт агрегаты для сводки данных.
type StatsProvider interface {
	Collect(ctx context.Context) (models.DashboardStats, error)
}

// Cache описывает методы кэширования текста рекомендаций.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
}

// InsightService собирает сводку, запрашивает модель и кэширует ответ.
type InsightService struct {
	gen   Generator
	stats StatsProvider
	plans *models.PlanCatalog
	cache Cache
	log   *slog.Logger
}

// NewInsightService создает новый экземпляр InsightService.
func NewInsightService(gen Generator, stats StatsProvider, plans *models.PlanCatalog, cache Cache, log *slog.Logger) *InsightService {
	return &InsightService{
		gen:   gen,
		stats: stats,
		plans: plans,
		cache: cache,
		log:   log,
	}
}

// Get возвращает текст рекомендаций: из кэша, от модели или запасной.
// Запасное сообщение не кэшируется, чтобы следующий запрос мог
// попробовать модель снова.
func (s *InsightService) Get(ctx context.Context) string {
	var cached string
	found, err := s.cache.Get(cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read insight from cache", sl.Err(err))
	}
	if found && cached != "" {
		return cached
	}

	stats, err := s.stats.Collect(ctx)
	if err != nil {
		s.log.Error("failed to collect stats for insight", sl.Err(err))
		return FallbackMessage
	}

	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	text, err := s.gen.Generate(reqCtx, s.buildPrompt(stats))
	if err != nil {
		s.log.Error("failed to generate insight", sl.Err(err))
		return FallbackMessage
	}
	if strings.TrimSpace(text) == "" {
		return "لا توجد رؤى متاحة حالياً."
	}

	if err := s.cache.Set(cacheKey, text, cacheTTL); err != nil {
		s.log.Warn("failed to cache insight", sl.Err(err))
	}
	return text
}

// buildPrompt формирует компактную текстовую сводку: список тарифов
// и счётчики членов клуба по статусам.
func (s *InsightService) buildPrompt(stats models.DashboardStats) string {
	var plans []string
	for _, p := range s.plans.All() {
		plans = append(plans, fmt.Sprintf("%s (%.0f ILS)", p.Name, p.Price))
	}

	dataSummary := fmt.Sprintf(
		"Plans: %s\nMembers count: %d\nActive members: %d\nExpiring soon: %d\nExpired: %d",
		strings.Join(plans, ", "),
		stats.TotalMembers, stats.ActiveCount, stats.ExpiringCount, stats.ExpiredCount)

	return fmt.Sprintf(
		"بصفتك مستشار إدارة نوادي رياضية محترف لجيم \"الجلاء الرياضي\" في غزة، قم بتحليل البيانات التالية وقدم 3 نصائح تسويقية أو إدارية مختصرة لزيادة الأرباح والاحتفاظ بالأعضاء باللغة العربية: %s",
		dataSummary)
}
