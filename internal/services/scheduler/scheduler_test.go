package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/alaagym/gym-ledger/internal/models"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]models.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Member), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func testPlans() *models.PlanCatalog {
	return models.NewPlanCatalog([]models.Plan{
		{ID: "2", Name: "اشتراك 3 شهور", Price: 300, DurationMonths: 3},
	})
}

func TestSchedulerService_Scan_NothingToPublish(t *testing.T) {
	now := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	endFar, _ := models.ParseDate("2024-09-01")

	repo := new(MockRepository)
	// Активный абонемент без долга не порождает заданий,
	// поэтому до публикации дело не доходит.
	repo.On("List", mock.Anything).Return([]models.Member{
		{ID: "1", PlanID: "2", EndDate: endFar, RemainingAmount: 0},
	}, nil).Once()

	service := NewSchedulerService(repo, testPlans(), newNoopLogger())
	service.now = func() time.Time { return now }

	service.scan(context.Background(), nil)
	repo.AssertExpectations(t)
}

func TestSchedulerService_Scan_RepoError(t *testing.T) {
	repo := new(MockRepository)
	repo.On("List", mock.Anything).Return(nil, errors.New("storage error")).Once()

	service := NewSchedulerService(repo, testPlans(), newNoopLogger())

	// Ошибка чтения только логируется, паники быть не должно
	service.scan(context.Background(), nil)
	repo.AssertExpectations(t)
}

func TestSchedulerService_BuildJob(t *testing.T) {
	end, _ := models.ParseDate("2024-05-15")
	member := models.Member{
		ID:              "abc-1",
		Name:            "أحمد",
		Phone:           "0599123456",
		PlanID:          "2",
		EndDate:         end,
		RemainingAmount: 100,
	}

	service := NewSchedulerService(new(MockRepository), testPlans(), newNoopLogger())

	job := service.buildJob(member, models.ReminderDebt, models.StatusExpiringSoon)
	assert.Equal(t, models.ReminderDebt, job.Kind)
	assert.Equal(t, "abc-1", job.MemberID)
	assert.Equal(t, "اشتراك 3 شهور", job.PlanName)
	assert.Equal(t, models.StatusExpiringSoon, job.Status)
	assert.Equal(t, 100.0, job.RemainingAmount)

	// Неизвестный тариф оставляет его идентификатор как имя
	member.PlanID = "ghost"
	job = service.buildJob(member, models.ReminderExpiring, models.StatusExpired)
	assert.Equal(t, "ghost", job.PlanName)
}
