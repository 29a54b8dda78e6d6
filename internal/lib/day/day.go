// Package day содержит вспомогательные функции для работы с календарными
// датами. Ядро оперирует датами без времени суток, поэтому все даты
// приводятся к полуночи UTC перед сравнением и хранением.
package day

import "time"

// Normalize приводит момент времени к календарной дате: полночь UTC
// того же года, месяца и дня.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Equal сообщает, приходятся ли два момента времени на одну календарную дату.
func Equal(a, b time.Time) bool {
	return Normalize(a).Equal(Normalize(b))
}

// Before сообщает, что дата a строго раньше даты b.
func Before(a, b time.Time) bool {
	return Normalize(a).Before(Normalize(b))
}

// After сообщает, что дата a строго позже даты b.
func After(a, b time.Time) bool {
	return Normalize(a).After(Normalize(b))
}

// Contains сообщает, есть ли дата t среди дат списка.
func Contains(dates []time.Time, t time.Time) bool {
	for _, d := range dates {
		if Equal(d, t) {
			return true
		}
	}
	return false
}

// Between возвращает количество полных дней от даты a до даты b.
// Результат отрицателен, если b раньше a.
func Between(a, b time.Time) int {
	return int(Normalize(b).Sub(Normalize(a)) / (24 * time.Hour))
}
