package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alaagym/gym-ledger/internal/models"
)

func testPlans() *models.PlanCatalog {
	return models.NewPlanCatalog([]models.Plan{
		{ID: "3months", Name: "اشتراك 3 شهور", Price: 300, DurationMonths: 3},
	})
}

func TestWriteCSV_EmptyCollection(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, WriteCSV(&buf, nil, testPlans(), now))

	out := buf.Bytes()
	// Файл начинается с UTF-8 BOM
	assert.True(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}))

	lines := strings.Split(strings.TrimRight(string(out[3:]), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, strings.Join(Headers, ","), lines[0])
}

func TestWriteCSV_RowContent(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)

	start, _ := models.ParseDate("2024-02-15")
	end, _ := models.ParseDate("2024-05-15")
	members := []models.Member{
		{
			ID:              "1",
			Name:            "أحمد",
			Phone:           "0599123456",
			PlanID:          "3months",
			StartDate:       start,
			EndDate:         end,
			Status:          models.StatusActive, // устаревший снимок, в выгрузке пересчитывается
			TotalPaid:       200,
			RemainingAmount: 100,
			PaymentMethod:   models.PaymentCash,
			Notes:           "دفعة أولى, الباقي لاحقاً",
		},
		{
			ID:        "2",
			Name:      "سعيد",
			Phone:     "0599222222",
			PlanID:    "unknown-plan",
			StartDate: start,
			EndDate:   end,
		},
	}

	require.NoError(t, WriteCSV(&buf, members, testPlans(), now))

	lines := strings.Split(strings.TrimRight(buf.String()[3:], "\n"), "\n")
	require.Len(t, lines, 3)

	// Статус выведен арабской подписью и пересчитан: срок истёк
	assert.Contains(t, lines[1], "منتهي")
	assert.Contains(t, lines[1], "اشتراك 3 شهور")
	assert.Contains(t, lines[1], "2024-02-15")
	assert.Contains(t, lines[1], "2024-05-15")
	assert.Contains(t, lines[1], "300")
	assert.Contains(t, lines[1], "200")
	assert.Contains(t, lines[1], "100")

	// Запятые в заметках заменены пробелами, лишних колонок нет
	assert.Contains(t, lines[1], "دفعة أولى  الباقي لاحقاً")
	assert.Len(t, strings.Split(lines[1], ","), len(Headers))

	// Неизвестный тариф выводится заглушкой
	assert.Contains(t, lines[2], "غير محدد")
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, 5, 10, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "gym_alaa_members_2024-05-10.csv", Filename(now))
}
