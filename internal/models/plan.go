// Package models содержит доменные структуры учёта абонементов зала:
// тарифы, записи членов клуба, производные биллинговые поля,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

// Plan описывает тариф абонемента. Каталог тарифов статичен:
// тарифы задаются как начальная конфигурация и не удаляются,
// пока на них ссылается хотя бы один член клуба.
type Plan struct {
	ID             string  `json:"id"`              // Идентификатор тарифа
	Name           string  `json:"name"`            // Отображаемое название (на арабском)
	Price          float64 `json:"price"`           // Стоимость абонемента, шекели
	DurationMonths int     `json:"duration_months"` // Длительность в целых месяцах
	Description    string  `json:"description"`     // Описание тарифа
}

// PlanCatalog — упорядоченный набор тарифов с поиском по идентификатору.
type PlanCatalog struct {
	plans []Plan
	byID  map[string]Plan
}

// NewPlanCatalog создает каталог из списка тарифов, сохраняя порядок.
func NewPlanCatalog(plans []Plan) *PlanCatalog {
	byID := make(map[string]Plan, len(plans))
	for _, p := range plans {
		byID[p.ID] = p
	}
	return &PlanCatalog{plans: plans, byID: byID}
}

// Find возвращает тариф по идентификатору.
func (c *PlanCatalog) Find(id string) (Plan, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// All возвращает копию списка тарифов в исходном порядке.
func (c *PlanCatalog) All() []Plan {
	out := make([]Plan, len(c.plans))
	copy(out, c.plans)
	return out
}
