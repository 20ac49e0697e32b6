// Package status выводит состояние абонемента из даты его окончания.
package status

import (
	"math"
	"time"

	"github.com/alaagym/gym-ledger/internal/models"
)

// Window — число дней до окончания, в пределах которого абонемент
// считается заканчивающимся.
const Window = 7

// Derive отображает дату окончания абонемента и текущую дату в статус.
// diffDays = ceil((endDate - now) / сутки): отрицательное значение — срок
// истёк, от 0 до Window включительно — скоро закончится, иначе — активен.
// Функция чистая и тотальная: ошибок не бывает, PENDING не выдаётся.
func Derive(endDate, now time.Time) models.Status {
	diffDays := int(math.Ceil(endDate.Sub(now).Hours() / 24))
	switch {
	case diffDays < 0:
		return models.StatusExpired
	case diffDays <= Window:
		return models.StatusExpiringSoon
	default:
		return models.StatusActive
	}
}
