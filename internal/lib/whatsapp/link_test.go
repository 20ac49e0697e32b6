package whatsapp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alaagym/gym-ledger/internal/models"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{
			name:  "ведущий ноль заменяется кодом страны",
			phone: "0599123456",
			want:  "970599123456",
		},
		{
			name:  "пробелы и дефисы убираются",
			phone: "0599-123 456",
			want:  "970599123456",
		},
		{
			name:  "плюс убирается, код страны сохраняется",
			phone: "+970599123456",
			want:  "970599123456",
		},
		{
			name:  "номер без ведущего нуля не меняется",
			phone: "970599123456",
			want:  "970599123456",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.phone))
		})
	}
}

func TestLink(t *testing.T) {
	link := Link("0599123456", "مرحباً كابتن")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/970599123456?text="))
	assert.NotContains(t, link, " ")
}

func TestReminderMessage(t *testing.T) {
	endDate, _ := models.ParseDate("2024-05-15")

	tests := []struct {
		name     string
		job      models.ReminderJob
		contains []string
	}{
		{
			name: "напоминание о долге содержит сумму",
			job: models.ReminderJob{
				Kind:            models.ReminderDebt,
				Name:            "أحمد",
				PlanName:        "اشتراك 3 شهور",
				RemainingAmount: 100,
				EndDate:         endDate,
			},
			contains: []string{"أحمد", "100", "اشتراك 3 شهور", "2024-05-15", "مبلغ متبقي"},
		},
		{
			name: "активный абонемент — срок ещё не истёк",
			job: models.ReminderJob{
				Kind:     models.ReminderExpiring,
				Name:     "سعيد",
				PlanName: "اشتراك شهري",
				Status:   models.StatusExpiringSoon,
				EndDate:  endDate,
			},
			contains: []string{"سعيد", "سينتهي", "2024-05-15"},
		},
		{
			name: "истёкший абонемент — другой глагол",
			job: models.ReminderJob{
				Kind:     models.ReminderExpiring,
				Name:     "سعيد",
				PlanName: "اشتراك شهري",
				Status:   models.StatusExpired,
				EndDate:  endDate,
			},
			contains: []string{"قد انتهى"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := ReminderMessage(tt.job)
			for _, want := range tt.contains {
				assert.Contains(t, msg, want)
			}
		})
	}
}

func TestReminderLink(t *testing.T) {
	endDate, _ := models.ParseDate("2024-05-15")
	job := models.ReminderJob{
		Kind:     models.ReminderExpiring,
		Name:     "أحمد",
		Phone:    "0599123456",
		PlanName: "اشتراك شهري",
		Status:   models.StatusExpiringSoon,
		EndDate:  endDate,
	}

	link := ReminderLink(job)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/970599123456?text="))
}
