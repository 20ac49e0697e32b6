package list

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/alaagym/gym-ledger/internal/models"
)

// MockService реализует интерфейс list.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, filter models.MemberFilter) ([]models.Member, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Member), args.Error(1)
}

func TestListHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		url            string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "выборка без фильтра",
			url:  "/api/v1/members",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, models.MemberFilter{}).
					Return([]models.Member{{ID: "1"}, {ID: "2"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":"2"`,
		},
		{
			name: "фильтры передаются из query-параметров",
			url:  "/api/v1/members/list?q=أحمد&status=expired&plan_id=3months&debt=true",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, models.MemberFilter{
					Query:       "أحمد",
					Status:      models.StatusExpired,
					PlanID:      "3months",
					OnlyDebtors: true,
				}).Return([]models.Member{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"OK"`,
		},
		{
			name: "ошибка сервиса",
			url:  "/api/v1/members",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, models.MemberFilter{}).
					Return(nil, errors.New("storage error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `could not list members`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockService)
			tt.setupMock(service)
			handler := New(logger, service)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			service.AssertExpectations(t)
		})
	}
}
