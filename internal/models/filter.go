package models

// MemberFilter описывает параметры проекции списка членов клуба.
// Фильтрация — чистая операция чтения: коллекция не мутируется,
// статус для сравнения пересчитывается от end_date на момент запроса.
type MemberFilter struct {
	Query       string // Подстрока для поиска по имени и телефону, без учёта регистра
	Status      Status // Фильтр по производному статусу (пустой — без фильтра)
	PlanID      string // Фильтр по тарифу (пустой — без фильтра)
	OnlyDebtors bool   // Только записи с ненулевым остатком
}

// DashboardStats — агрегаты для дашборда. Счётчики по статусам всегда
// пересчитываются от end_date на момент запроса, а не берутся из
// сохранённых снимков.
type DashboardStats struct {
	TotalMembers     int            `json:"total_members"`
	ActiveCount      int            `json:"active_count"`
	ExpiringCount    int            `json:"expiring_count"`
	ExpiredCount     int            `json:"expired_count"`
	DebtorsCount     int            `json:"debtors_count"`
	TotalCollected   float64        `json:"total_collected"`
	TotalOutstanding float64        `json:"total_outstanding"`
	MembersByPlan    map[string]int `json:"members_by_plan"`
}
