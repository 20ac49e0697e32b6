// Package export формирует табличную выгрузку коллекции членов клуба
// в CSV с маркером UTF-8 BOM, чтобы арабские подписи корректно
// открывались в Excel. Набор и порядок колонок с арабскими заголовками —
// часть наблюдаемого контракта выгрузки.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alaagym/gym-ledger/internal/lib/status"
	"github.com/alaagym/gym-ledger/internal/models"
)

// utf8BOM пишется перед заголовками для совместимости с Excel.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Headers — фиксированный набор колонок выгрузки.
var Headers = []string{
	"الاسم",
	"الهاتف",
	"نوع الاشتراك",
	"تاريخ البدء",
	"تاريخ الانتهاء",
	"سعر الاشتراك",
	"المبلغ المدفوع",
	"المبلغ المتبقي",
	"طريقة الدفع",
	"الحالة",
	"ملاحظات",
}

// WriteCSV пишет выгрузку в w. Пустая коллекция даёт корректный файл
// с одними заголовками. Статус выводится арабской подписью и
// пересчитывается от end_date на момент выгрузки.
func WriteCSV(w io.Writer, members []models.Member, plans *models.PlanCatalog, now time.Time) error {
	const op = "export.WriteCSV"

	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Headers); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, m := range members {
		planName := "غير محدد"
		var planPrice float64
		if plan, ok := plans.Find(m.PlanID); ok {
			planName = plan.Name
			planPrice = plan.Price
		}

		row := []string{
			m.Name,
			m.Phone,
			planName,
			m.StartDate.String(),
			m.EndDate.String(),
			formatAmount(planPrice),
			formatAmount(m.TotalPaid),
			formatAmount(m.RemainingAmount),
			m.PaymentMethod.Label(),
			status.Derive(m.EndDate.Time, now).Label(),
			// Запятые в заметках заменяются пробелами —
			// так делала исходная выгрузка, формат сохраняется.
			strings.ReplaceAll(m.Notes, ",", " "),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Filename возвращает имя файла выгрузки с датой формирования.
func Filename(now time.Time) string {
	return fmt.Sprintf("gym_alaa_members_%s.csv", now.Format("2006-01-02"))
}

func formatAmount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
