package domain

import (
	"strings"
	"time"
)

// WeekdaySet набор дней недели в виде битовой маски.
// Заменяет сравнение дней недели по числовым кодам: принадлежность
// проверяется явным битовым тестом.
type WeekdaySet uint8

// NewWeekdaySet создает набор из перечисленных дней
func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s = s.Add(d)
	}
	return s
}

// Add возвращает набор с добавленным днём
func (s WeekdaySet) Add(d time.Weekday) WeekdaySet {
	return s | (1 << uint(d))
}

// Contains проверяет принадлежность дня набору
func (s WeekdaySet) Contains(d time.Weekday) bool {
	return s&(1<<uint(d)) != 0
}

// IsEmpty возвращает true для пустого набора
func (s WeekdaySet) IsEmpty() bool {
	return s == 0
}

func (s WeekdaySet) String() string {
	if s.IsEmpty() {
		return "none"
	}
	names := make([]string, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Contains(d) {
			names = append(names, d.String()[:3])
		}
	}
	return strings.Join(names, ",")
}
