// Package week строит календарное окно недели для главного экрана:
// семь дат с понедельника по воскресенье вокруг выбранной даты.
package week

import (
	"time"

	"github.com/magabrotheeeer/flowerbud/internal/lib/day"
)

// Date описывает один день календарного окна.
type Date struct {
	Date       time.Time // Календарная дата, полночь UTC
	IsSelected bool      // Совпадает ли с выбранной пользователем датой
	IsToday    bool      // Совпадает ли с текущей датой
	Day        string    // Короткое имя дня недели, например "Mon"
}

// Window описывает видимое окно календаря: выбранную дату и семь дней
// недели, в которую она попадает.
type Window struct {
	SelectedDate Date
	VisibleDates []Date
}

// Get строит окно недели, содержащей выбранную дату. Окно всегда состоит
// из семи последовательных дат начиная с понедельника на выбранной неделе.
func Get(selected, today time.Time) Window {
	monday := startOfWeek(selected)
	visible := make([]Date, 0, 7)
	for i := 0; i < 7; i++ {
		visible = append(visible, newDate(monday.AddDate(0, 0, i), selected, today))
	}
	return Window{
		SelectedDate: newDate(day.Normalize(selected), selected, today),
		VisibleDates: visible,
	}
}

// Previous возвращает дату на неделю раньше выбранной.
func Previous(selected time.Time) time.Time {
	return day.Normalize(selected).AddDate(0, 0, -7)
}

// Next возвращает дату на неделю позже выбранной.
func Next(selected time.Time) time.Time {
	return day.Normalize(selected).AddDate(0, 0, 7)
}

// startOfWeek возвращает понедельник недели, в которую попадает дата.
// time.Weekday нумерует воскресенье нулем, поэтому смещение считается
// по модулю от понедельника.
func startOfWeek(t time.Time) time.Time {
	d := day.Normalize(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

func newDate(d time.Time, selected, today time.Time) Date {
	return Date{
		Date:       day.Normalize(d),
		IsSelected: day.Equal(d, selected),
		IsToday:    day.Equal(d, today),
		Day:        d.Format("Mon"),
	}
}
