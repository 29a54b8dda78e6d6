// Package services реализует движок рекомендаций: подсчет совпадений
// растений каталога с предпочтениями из квиза и выбор пятерки лучших.
package services

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/flowerbud/internal/models"
)

// MaxResults — максимальное количество растений в выдаче рекомендаций.
const MaxResults = 5

// CatalogProvider определяет доступ движка к каталогу растений.
type CatalogProvider interface {
	// All возвращает растения каталога в исходном порядке.
	All() []models.Plant
}

// RecommendService подбирает растения по предпочтениям пользователя.
type RecommendService struct {
	catalog  CatalogProvider
	validate *validator.Validate
	log      *slog.Logger
}

// NewRecommendService создает новый экземпляр RecommendService.
func NewRecommendService(catalog CatalogProvider, log *slog.Logger) *RecommendService {
	return &RecommendService{
		catalog:  catalog,
		validate: validator.New(),
		log:      log,
	}
}

// Rank считает балл каждого растения каталога по шести предикатам и
// возвращает не более пяти лучших. Сортировка по баллу устойчивая:
// при равенстве выигрывает растение, идущее в каталоге раньше.
// Диапазоны с lo > hi отклоняются с models.ErrInvalidRange до подсчета.
// Пустой каталог дает пустую выдачу без ошибки.
func (s *RecommendService) Rank(choices models.QuizChoices) ([]models.Plant, error) {
	const op = "recommend.Rank"

	if err := s.validate.Struct(choices); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", op, err, models.ErrInvalidRange)
	}

	plants := s.catalog.All()
	if len(plants) == 0 {
		return nil, nil
	}

	scores := make([]int, len(plants))
	for i, plant := range plants {
		scores[i] = Score(plant, choices)
	}

	idx := make([]int, len(plants))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})

	n := MaxResults
	if len(idx) < n {
		n = len(idx)
	}
	top := make([]models.Plant, 0, n)
	for _, i := range idx[:n] {
		top = append(top, plants[i])
	}

	s.log.Info("ranked catalog for quiz choices",
		slog.Int("catalog_size", len(plants)),
		slog.Int("results", len(top)),
		slog.Int("best_score", scores[idx[0]]))

	return top, nil
}

// Score возвращает балл совпадения растения с предпочтениями: количество
// выполненных предикатов от 0 до 6. Каждый предикат дает ровно один балл,
// без весов и частичных совпадений. Неотвеченный флаг (nil) не дает балл
// никогда: сравнивать растение не с чем.
func Score(plant models.Plant, choices models.QuizChoices) int {
	score := 0
	if plant.Price >= choices.PriceStart && plant.Price <= choices.PriceEnd {
		score++
	}
	if plant.WaterWeeks >= choices.WaterStart && plant.WaterWeeks <= choices.WaterEnd {
		score++
	}
	if plant.Space >= choices.SpaceStart && plant.Space <= choices.SpaceEnd {
		score++
	}
	if plant.Light >= choices.LightStart && plant.Light <= choices.LightEnd {
		score++
	}
	if choices.ToxicYn != nil && plant.Toxic == *choices.ToxicYn {
		score++
	}
	if choices.Outdoor != nil && plant.Outdoor == *choices.Outdoor {
		score++
	}
	return score
}
