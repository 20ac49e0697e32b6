package models

import "strings"

// Status — производное тристабильное состояние абонемента.
type Status string

const (
	// StatusActive — до окончания абонемента больше недели.
	StatusActive Status = "active"
	// StatusExpiringSoon — абонемент заканчивается в течение 7 дней.
	StatusExpiringSoon Status = "expiring_soon"
	// StatusExpired — срок абонемента истёк.
	StatusExpired Status = "expired"
	// StatusPending зарезервирован в таксономии, деривация его не выдаёт.
	StatusPending Status = "pending"
)

// Label возвращает арабскую подпись статуса, используемую в экспорте,
// дашборде и тексте напоминаний.
func (s Status) Label() string {
	switch s {
	case StatusActive:
		return "نشط"
	case StatusExpiringSoon:
		return "قريب الانتهاء"
	case StatusExpired:
		return "منتهي"
	case StatusPending:
		return "معلق"
	default:
		return string(s)
	}
}

// PaymentMethod — способ оплаты абонемента.
type PaymentMethod string

const (
	// PaymentCash — оплата наличными.
	PaymentCash PaymentMethod = "cash"
	// PaymentBank — банковский перевод.
	PaymentBank PaymentMethod = "bank"
	// PaymentUnspecified — способ не указан.
	PaymentUnspecified PaymentMethod = "unspecified"
)

// ParsePaymentMethod приводит входное значение к известному способу оплаты.
// Неизвестные значения не являются ошибкой и приводятся к PaymentUnspecified.
func ParsePaymentMethod(s string) PaymentMethod {
	switch PaymentMethod(s) {
	case PaymentCash, PaymentBank:
		return PaymentMethod(s)
	default:
		return PaymentUnspecified
	}
}

// Label возвращает арабскую подпись способа оплаты.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentCash:
		return "نقدي"
	case PaymentBank:
		return "بنكي"
	default:
		return "غير محدد"
	}
}

// Member представляет запись члена клуба со снимком биллингового состояния.
// Поля EndDate, Status и RemainingAmount — производные: они вычисляются
// при каждом сохранении записи. Статус при чтении дополнительно
// пересчитывается от EndDate, поэтому сохранённое значение — лишь снимок
// на момент последней записи.
type Member struct {
	ID              string        `json:"id"`               // Стабильный идентификатор записи
	Name            string        `json:"name"`             // Имя члена клуба
	Phone           string        `json:"phone"`            // Телефон (локальный формат)
	Email           string        `json:"email,omitempty"`  // Почта, опционально
	PlanID          string        `json:"plan_id"`          // Ссылка на тариф
	StartDate       Date          `json:"start_date"`       // Дата начала абонемента
	EndDate         Date          `json:"end_date"`         // Производное: start_date + длительность тарифа
	Status          Status        `json:"status"`           // Производное: статус на момент сохранения
	TotalPaid       float64       `json:"total_paid"`       // Сумма внесённых платежей
	RemainingAmount float64       `json:"remaining_amount"` // Производное: max(0, цена тарифа - total_paid)
	PaymentMethod   PaymentMethod `json:"payment_method"`   // Способ оплаты
	Notes           string        `json:"notes,omitempty"`  // Свободные заметки
}

// Amount — сумма платежа из JSON-запроса. Клиенты шлют её и строкой,
// и числом, поэтому декодирование принимает оба представления.
// Дальше значение приводится через биллинг: некорректный ввод
// по контракту даёт ноль, а не отклоняется.
type Amount string

// UnmarshalJSON принимает строковое и числовое представление суммы.
func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" {
		s = ""
	}
	*a = Amount(s)
	return nil
}

// DummyMember используется для приёма данных члена клуба из JSON-запроса,
// прежде чем конвертировать их в Member. Дата и сумма приходят в сыром
// виде, чтобы их можно было валидировать и приводить вручную.
type DummyMember struct {
	Name          string `json:"name" validate:"required"`                       // Имя
	Phone         string `json:"phone" validate:"required"`                      // Телефон
	Email         string `json:"email,omitempty" validate:"omitempty,email"`     // Почта (опционально)
	PlanID        string `json:"plan_id" validate:"required"`                    // Идентификатор тарифа
	StartDate     string `json:"start_date" validate:"required"`                 // Дата начала в формате 2006-01-02
	TotalPaid     Amount `json:"total_paid,omitempty"`                           // Сумма платежа
	PaymentMethod string `json:"payment_method,omitempty"`                       // Способ оплаты
	Notes         string `json:"notes,omitempty"`                                // Заметки
}
