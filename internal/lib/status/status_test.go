package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alaagym/gym-ledger/internal/models"
)

func TestDerive(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		endDate time.Time
		want    models.Status
	}{
		{
			name:    "ровно 7 дней до окончания — скоро закончится",
			endDate: now.AddDate(0, 0, 7),
			want:    models.StatusExpiringSoon,
		},
		{
			name:    "8 дней до окончания — активен",
			endDate: now.AddDate(0, 0, 8),
			want:    models.StatusActive,
		},
		{
			name:    "окончание вчера — истёк",
			endDate: now.AddDate(0, 0, -1),
			want:    models.StatusExpired,
		},
		{
			name:    "окончание сегодня — скоро закончится",
			endDate: now,
			want:    models.StatusExpiringSoon,
		},
		{
			name:    "неполные сутки округляются вверх",
			endDate: now.Add(6*24*time.Hour + 12*time.Hour),
			want:    models.StatusExpiringSoon,
		},
		{
			name:    "истёк несколько часов назад",
			endDate: now.Add(-2 * time.Hour),
			want:    models.StatusExpiringSoon,
		},
		{
			name:    "далёкое окончание — активен",
			endDate: now.AddDate(0, 3, 0),
			want:    models.StatusActive,
		},
		{
			name:    "давно истёк",
			endDate: now.AddDate(-1, 0, 0),
			want:    models.StatusExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Derive(tt.endDate, now))
		})
	}
}
