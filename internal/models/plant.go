// Package models содержит доменные структуры приложения: растения каталога,
// растения пользователя с графиком полива, предпочтения из квиза
// и агрегированное состояние сессии пользователя.
package models

import "time"

// Plant представляет запись каталога растений.
// Записи каталога неизменяемы: создаются один раз при старте процесса
// и никогда не модифицируются во время работы.
type Plant struct {
	ID             string // Уникальный идентификатор растения в каталоге
	Name           string // Отображаемое название
	Price          int    // Цена в фунтах
	WaterWeeks     int    // Интервал полива в неделях (>=1)
	Space          int    // Требование к пространству по шкале 1-5
	Light          int    // Требование к освещению по шкале 1-3
	Toxic          bool   // Токсично ли растение для домашних животных
	Outdoor        bool   // Подходит ли растение для улицы
	Image          string // Ключ изображения растения
	LightIcon      string // Ключ иконки уровня освещения
	PriceIcon      string // Ключ иконки ценовой категории
	WaterIcon      string // Ключ иконки частоты полива
	PriceBand      string // Отформатированный ценовой диапазон, например "1 - 10"
	SunLevel       string // Отформатированный уровень освещения: Low/Medium/High
	Height         string // Диапазон высоты растения, например "30–60 cm"
	Description    string // Описание растения
	CommonIssues   string // Типичные проблемы ухода
	IssueSolutions string // Рекомендации по устранению проблем
}

// UserPlant представляет растение, добавленное пользователем в свою коллекцию.
// Интервал полива и отображаемые поля копируются из каталога в момент
// добавления. NextWaterDay и LastWateredDates изменяются только операцией
// полива.
type UserPlant struct {
	PlantID          string      // Идентификатор растения в каталоге
	WaterWeeks       int         // Интервал полива в неделях (копия из каталога)
	LastWateredDates []time.Time // Даты выполненных поливов в хронологическом порядке
	NextWaterDay     time.Time   // Дата следующего полива
	PlantName        string      // Название растения (копия из каталога)
	PlantImage       string      // Ключ изображения (копия из каталога)
}

// Clone возвращает глубокую копию UserPlant, включая список дат полива.
func (p UserPlant) Clone() UserPlant {
	cp := p
	cp.LastWateredDates = make([]time.Time, len(p.LastWateredDates))
	copy(cp.LastWateredDates, p.LastWateredDates)
	return cp
}
