// Package whatsapp формирует глубокие ссылки wa.me с заранее
// подставленным текстом напоминания для члена клуба.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/alaagym/gym-ledger/internal/models"
)

// CountryPrefix — международный код, которым заменяется ведущий ноль
// локального номера при построении ссылки.
const CountryPrefix = "970"

// NormalizePhone приводит локальный номер к международному виду wa.me:
// убирает пробелы, дефисы и плюс, заменяет ведущий ноль на код страны.
func NormalizePhone(phone string) string {
	cleaned := strings.NewReplacer(" ", "", "-", "", "+", "").Replace(phone)
	if strings.HasPrefix(cleaned, "0") {
		return CountryPrefix + cleaned[1:]
	}
	return cleaned
}

// Link возвращает ссылку вида https://wa.me/<номер>?text=<сообщение>.
func Link(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", NormalizePhone(phone), url.QueryEscape(message))
}

// ReminderMessage строит арабский текст напоминания по типу задания:
// для долга — сумма остатка и дата окончания, для истечения — дата
// окончания с учётом того, истёк срок уже или только заканчивается.
func ReminderMessage(job models.ReminderJob) string {
	if job.Kind == models.ReminderDebt {
		return fmt.Sprintf(
			"مرحباً كابتن %s، نود تذكيرك بأن لديك مبلغ متبقي (%s شيكل) من اشتراك %s الذي ينتهي بتاريخ %s. ننتظرك في جيم الجلاء!",
			job.Name, formatAmount(job.RemainingAmount), job.PlanName, job.EndDate)
	}
	verb := "سينتهي"
	if job.Status == models.StatusExpired {
		verb = "قد انتهى"
	}
	return fmt.Sprintf(
		"مرحباً كابتن %s، نود تذكيرك بأن اشتراكك في جيم الجلاء (%s) %s بتاريخ %s. يسعدنا تجديد اشتراكك في أي وقت!",
		job.Name, job.PlanName, verb, job.EndDate)
}

// ReminderLink объединяет шаблон и ссылку для одного задания.
func ReminderLink(job models.ReminderJob) string {
	return Link(job.Phone, ReminderMessage(job))
}

func formatAmount(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
