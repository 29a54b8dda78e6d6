// Package services реализует логику графика полива: какие растения нужно
// полить на выбранную дату, какие просрочены, и переход при выполненном
// поливе. Текущая дата всегда передается параметром и никогда не читается
// из системных часов, чтобы логика оставалась детерминированной.
package services

import (
	"fmt"
	"time"

	"github.com/magabrotheeeer/flowerbud/internal/lib/day"
	"github.com/magabrotheeeer/flowerbud/internal/models"
)

// TaskStatus описывает производное состояние задачи полива на выбранную
// дату. Состояние не хранится: оно вычисляется на каждом запросе.
type TaskStatus string

const (
	// StatusOverdue — дата следующего полива прошла, растение сегодня не полито.
	StatusOverdue TaskStatus = "overdue"
	// StatusDueToday — полив назначен на сегодня и еще не выполнен.
	StatusDueToday TaskStatus = "due_today"
	// StatusDueOnDay — полив назначен на выбранную будущую дату.
	StatusDueOnDay TaskStatus = "due_on_day"
	// StatusCompleted — на выбранную дату полив уже выполнен.
	StatusCompleted TaskStatus = "completed"
	// StatusUpcoming — полив назначен на более позднюю дату, задачи нет.
	StatusUpcoming TaskStatus = "upcoming"
)

// DueOn возвращает растения, которые нужно показать в списке полива на
// выбранную дату. Правила зависят от положения даты относительно сегодня:
//   - выбран сегодняшний день: растения с датой полива сегодня или раньше,
//     плюс уже политые сегодня (они показываются как выполненные);
//   - выбран будущий день: только растения с поливом ровно в этот день;
//   - выбран прошедший день: только растения, политые в тот день.
func DueOn(plants []models.UserPlant, selected, today time.Time) []models.UserPlant {
	var due []models.UserPlant
	switch {
	case day.Equal(selected, today):
		for _, p := range plants {
			if day.Before(p.NextWaterDay, selected) || day.Equal(p.NextWaterDay, selected) ||
				day.Contains(p.LastWateredDates, selected) {
				due = append(due, p.Clone())
			}
		}
	case day.After(selected, today):
		for _, p := range plants {
			if day.Equal(p.NextWaterDay, selected) {
				due = append(due, p.Clone())
			}
		}
	default:
		for _, p := range plants {
			if day.Contains(p.LastWateredDates, selected) {
				due = append(due, p.Clone())
			}
		}
	}
	return due
}

// IsOverdue сообщает, просрочен ли полив растения на выбранную дату.
// Просрочка имеет смысл только "сейчас": для прошедших и будущих дат
// результат всегда false.
func IsOverdue(plant models.UserPlant, selected, today time.Time) bool {
	if !day.Equal(selected, today) {
		return false
	}
	return day.Before(plant.NextWaterDay, today) && !day.Contains(plant.LastWateredDates, today)
}

// DaysOverdue возвращает, на сколько дней просрочен полив относительно
// сегодняшнего дня. Для непросроченного растения возвращается 0.
func DaysOverdue(plant models.UserPlant, today time.Time) int {
	if !day.Before(plant.NextWaterDay, today) {
		return 0
	}
	return day.Between(plant.NextWaterDay, today)
}

// Status возвращает производный статус задачи полива для карточки на
// выбранную дату.
func Status(plant models.UserPlant, selected, today time.Time) TaskStatus {
	if day.Contains(plant.LastWateredDates, selected) {
		return StatusCompleted
	}
	if IsOverdue(plant, selected, today) {
		return StatusOverdue
	}
	if day.Equal(plant.NextWaterDay, selected) {
		if day.Equal(selected, today) {
			return StatusDueToday
		}
		return StatusDueOnDay
	}
	return StatusUpcoming
}

// Water выполняет переход графика при поливе: добавляет сегодняшнюю дату
// в список поливов и переносит следующий полив на интервал растения вперед.
// Операция идемпотентна в пределах дня: повторный полив в тот же день
// возвращает models.ErrAlreadyWatered и не меняет растение.
func Water(plant models.UserPlant, today time.Time) (models.UserPlant, error) {
	const op = "schedule.Water"

	if plant.WaterWeeks < 1 {
		return models.UserPlant{}, fmt.Errorf("%s: water interval %d: %w", op, plant.WaterWeeks, models.ErrInvalidArgument)
	}
	if day.Contains(plant.LastWateredDates, today) {
		return models.UserPlant{}, fmt.Errorf("%s: %s: %w", op, plant.PlantID, models.ErrAlreadyWatered)
	}

	watered := plant.Clone()
	watered.LastWateredDates = append(watered.LastWateredDates, day.Normalize(today))
	watered.NextWaterDay = day.Normalize(today).AddDate(0, 0, 7*plant.WaterWeeks)
	return watered, nil
}
