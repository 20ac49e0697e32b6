package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout — формат календарной даты на проводе и в снапшоте.
const DateLayout = "2006-01-02"

// Date представляет календарную дату без компонента времени.
// В JSON сериализуется строкой формата 2006-01-02.
type Date struct {
	time.Time
}

// NewDate обрезает время до начала суток в UTC.
func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDate разбирает строку формата 2006-01-02.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

// AddMonths прибавляет целое число месяцев по правилам календарной
// арифметики time.AddDate: если в целевом месяце нет такого дня,
// дата перекатывается на следующий месяц.
func (d Date) AddMonths(months int) Date {
	return Date{d.AddDate(0, months, 0)}
}

// String возвращает дату в формате 2006-01-02.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// MarshalJSON сериализует дату строкой.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// UnmarshalJSON разбирает дату из строки.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
