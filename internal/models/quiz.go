package models

// QuizChoices хранит шесть независимых ограничений, которые пользователь
// задает в квизе: четыре числовых диапазона и два необязательных флага.
// Nil-флаг означает, что на вопрос еще не отвечали: такой предикат
// никогда не приносит балл при подсчете совпадений.
type QuizChoices struct {
	PriceStart int `validate:"gte=0,ltefield=PriceEnd"`       // Нижняя граница цены
	PriceEnd   int `validate:"gte=0"`                         // Верхняя граница цены
	WaterStart int `validate:"gte=1,ltefield=WaterEnd"`       // Нижняя граница интервала полива, недели
	WaterEnd   int `validate:"gte=1"`                         // Верхняя граница интервала полива, недели
	SpaceStart int `validate:"gte=1,lte=5,ltefield=SpaceEnd"` // Нижняя граница пространства, шкала 1-5
	SpaceEnd   int `validate:"gte=1,lte=5"`                   // Верхняя граница пространства, шкала 1-5
	LightStart int `validate:"gte=1,lte=3,ltefield=LightEnd"` // Нижняя граница освещения, шкала 1-3
	LightEnd   int `validate:"gte=1,lte=3"`                   // Верхняя граница освещения, шкала 1-3
	ToxicYn    *bool
	Outdoor    *bool
}

// DefaultQuizChoices возвращает стартовое состояние квиза: самые широкие
// диапазоны и неотвеченные флаги.
func DefaultQuizChoices() QuizChoices {
	return QuizChoices{
		PriceStart: 0,
		PriceEnd:   50,
		WaterStart: 1,
		WaterEnd:   4,
		SpaceStart: 1,
		SpaceEnd:   5,
		LightStart: 1,
		LightEnd:   3,
	}
}

// Clone возвращает копию QuizChoices с собственными экземплярами флагов.
func (c QuizChoices) Clone() QuizChoices {
	cp := c
	if c.ToxicYn != nil {
		v := *c.ToxicYn
		cp.ToxicYn = &v
	}
	if c.Outdoor != nil {
		v := *c.Outdoor
		cp.Outdoor = &v
	}
	return cp
}
