package types

import (
	"fmt"
	"time"
)

// TimeString локальное время суток в формате HH:MM ("07:30").
// Используется для времени начала резерваций, окон закрытия и cutoff-времени
// доков: это время на стене площадки, не UTC.
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString парсит и валидирует строку HH:MM
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := time.Parse("15:04", s); err != nil {
		return "", fmt.Errorf("invalid time string %q: %w", s, err)
	}
	return TimeString(s), nil
}

// IsZero возвращает true для пустой строки (время не задано)
func (t TimeString) IsZero() bool {
	return t == ""
}

func (t TimeString) String() string {
	return string(t)
}

func (t TimeString) parse() (time.Time, error) {
	return time.Parse("15:04", string(t))
}

// Minutes возвращает число минут от полуночи
func (t TimeString) Minutes() (int, error) {
	parsed, err := t.parse()
	if err != nil {
		return 0, err
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// Hour возвращает час (0-23)
func (t TimeString) Hour() (int, error) {
	parsed, err := t.parse()
	if err != nil {
		return 0, err
	}
	return parsed.Hour(), nil
}

// Duration возвращает время суток как смещение от полуночи
func (t TimeString) Duration() (time.Duration, error) {
	minutes, err := t.Minutes()
	if err != nil {
		return 0, err
	}
	return time.Duration(minutes) * time.Minute, nil
}

// AddMinutes добавляет минуты, переходя через полночь по модулю суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := t.parse()
	if err != nil {
		return "", err
	}
	return NewTimeString(parsed.Add(time.Duration(minutes) * time.Minute)), nil
}

// IsBefore строгое сравнение по времени суток
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.parse()
	b, errB := other.parse()
	if errA != nil || errB != nil {
		return false
	}
	return a.Before(b)
}

// IsAfter строгое сравнение по времени суток
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.parse()
	b, errB := other.parse()
	if errA != nil || errB != nil {
		return false
	}
	return a.After(b)
}
