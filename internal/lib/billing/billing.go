// Package billing содержит чистые вычисления биллингового снимка:
// дату окончания абонемента и остаток по оплате.
package billing

import (
	"math"
	"strconv"
	"strings"

	"github.com/alaagym/gym-ledger/internal/models"
)

// EndDate прибавляет длительность тарифа в целых месяцах к дате начала.
// Перекат даты при отсутствии дня в целевом месяце (31 января + 1 месяц)
// отдаётся на откуп стандартной календарной арифметике и не корректируется.
func EndDate(start models.Date, durationMonths int) models.Date {
	return start.AddMonths(durationMonths)
}

// Remaining возвращает остаток по оплате: max(0, цена - внесено).
// Остаток никогда не бывает отрицательным, переплата даёт ноль.
func Remaining(price, paid float64) float64 {
	if remaining := price - paid; remaining > 0 {
		return remaining
	}
	return 0
}

// ParseAmount приводит строковую сумму платежа к неотрицательному числу.
// Пустая строка, нечисловой ввод и отрицательные значения по контракту
// дают ноль, а не ошибку.
func ParseAmount(s string) float64 {
	amount, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return 0
	}
	return amount
}
