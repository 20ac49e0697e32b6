package models

// Начальные данные зала. Тарифы — статичная конфигурация приложения,
// члены клуба — резервный набор, которым заполняется хранилище,
// если снапшот отсутствует или не читается.

// SeedPlans возвращает каталожный набор тарифов зала.
func SeedPlans() []Plan {
	return []Plan{
		{ID: "1", Name: "اشتراك شهري", Price: 120, DurationMonths: 1, Description: "دخول كامل للصالة الرياضية"},
		{ID: "2", Name: "اشتراك 3 شهور", Price: 300, DurationMonths: 3, Description: "وفر 60 شيكل + حصة تدريبية مجانية"},
		{ID: "3", Name: "اشتراك سنوي", Price: 1000, DurationMonths: 12, Description: "أفضل قيمة: دخول كامل طوال العام"},
	}
}

// SeedMembers возвращает резервный набор записей членов клуба.
func SeedMembers() []Member {
	return []Member{
		{
			ID:              "101",
			Name:            "أحمد محمد",
			Phone:           "0501234567",
			Email:           "ahmed@example.com",
			PlanID:          "1",
			StartDate:       mustDate("2024-05-01"),
			EndDate:         mustDate("2024-06-01"),
			Status:          StatusActive,
			Notes:           "يفضل التدريب صباحاً",
			TotalPaid:       120,
			RemainingAmount: 0,
			PaymentMethod:   PaymentCash,
		},
		{
			ID:              "102",
			Name:            "سارة خالد",
			Phone:           "0559876543",
			Email:           "sara@example.com",
			PlanID:          "2",
			StartDate:       mustDate("2024-02-15"),
			EndDate:         mustDate("2024-05-15"),
			Status:          StatusExpiringSoon,
			Notes:           "تحتاج تجديد الأسبوع القادم",
			TotalPaid:       200,
			RemainingAmount: 100,
			PaymentMethod:   PaymentBank,
		},
	}
}

func mustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}
