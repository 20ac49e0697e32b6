package models

// ReminderKind — тип напоминания, определяет очередь и шаблон сообщения.
type ReminderKind string

const (
	// ReminderExpiring — абонемент скоро закончится или уже истёк.
	ReminderExpiring ReminderKind = "expiring"
	// ReminderDebt — за членом клуба числится остаток по оплате.
	ReminderDebt ReminderKind = "debt"
)

// ReminderJob — сообщение о необходимости напомнить члену клуба
// о продлении или долге. Публикуется планировщиком в RabbitMQ
// и потребляется отправителем.
type ReminderJob struct {
	Kind            ReminderKind `json:"kind"`
	MemberID        string       `json:"member_id"`
	Name            string       `json:"name"`
	Phone           string       `json:"phone"`
	PlanName        string       `json:"plan_name"`
	Status          Status       `json:"status"`
	RemainingAmount float64      `json:"remaining_amount"`
	EndDate         Date         `json:"end_date"`
}
