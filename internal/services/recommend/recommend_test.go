package services

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/flowerbud/internal/catalog"
	"github.com/magabrotheeeer/flowerbud/internal/models"
)

type CatalogMock struct{ mock.Mock }

func (m *CatalogMock) All() []models.Plant {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.Plant)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func boolPtr(v bool) *bool { return &v }

func TestScore_TableTests(t *testing.T) {
	plant := models.Plant{
		ID: "1", Name: "Aloe Vera",
		Price: 10, WaterWeeks: 4, Space: 2, Light: 3, Toxic: true, Outdoor: false,
	}

	tests := []struct {
		name    string
		choices models.QuizChoices
		want    int
	}{
		{
			name: "all six predicates match",
			choices: models.QuizChoices{
				PriceStart: 0, PriceEnd: 10,
				WaterStart: 1, WaterEnd: 4,
				SpaceStart: 1, SpaceEnd: 3,
				LightStart: 1, LightEnd: 3,
				ToxicYn: boolPtr(true),
				Outdoor: boolPtr(false),
			},
			want: 6,
		},
		{
			name:    "default choices score only numeric ranges",
			choices: models.DefaultQuizChoices(),
			want:    4,
		},
		{
			name: "unanswered flags never score",
			choices: models.QuizChoices{
				PriceStart: 40, PriceEnd: 50,
				WaterStart: 1, WaterEnd: 1,
				SpaceStart: 5, SpaceEnd: 5,
				LightStart: 1, LightEnd: 1,
			},
			want: 0,
		},
		{
			name: "wrong flag answers score nothing extra",
			choices: models.QuizChoices{
				PriceStart: 0, PriceEnd: 10,
				WaterStart: 1, WaterEnd: 4,
				SpaceStart: 1, SpaceEnd: 3,
				LightStart: 1, LightEnd: 3,
				ToxicYn: boolPtr(false),
				Outdoor: boolPtr(true),
			},
			want: 4,
		},
		{
			name: "inclusive range bounds",
			choices: models.QuizChoices{
				PriceStart: 10, PriceEnd: 10,
				WaterStart: 4, WaterEnd: 4,
				SpaceStart: 2, SpaceEnd: 2,
				LightStart: 3, LightEnd: 3,
			},
			want: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(plant, tt.choices); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRank_AloeVeraScenario(t *testing.T) {
	// Сценарий из справочных данных: Aloe Vera набирает 6 из 6
	// и должна стоять первой.
	svc := NewRecommendService(catalog.Provider{}, newNoopLogger())

	choices := models.QuizChoices{
		PriceStart: 0, PriceEnd: 10,
		WaterStart: 1, WaterEnd: 4,
		SpaceStart: 1, SpaceEnd: 3,
		LightStart: 1, LightEnd: 3,
		ToxicYn: boolPtr(true),
		Outdoor: boolPtr(false),
	}

	top, err := svc.Rank(choices)
	assert.NoError(t, err)
	assert.Len(t, top, 5)
	assert.Equal(t, "Aloe Vera", top[0].Name)
	assert.Equal(t, 6, Score(top[0], choices))
}

func TestRank_SortedAndComplete(t *testing.T) {
	svc := NewRecommendService(catalog.Provider{}, newNoopLogger())
	choices := models.DefaultQuizChoices()

	top, err := svc.Rank(choices)
	assert.NoError(t, err)
	assert.LessOrEqual(t, len(top), MaxResults)

	// Баллы не возрастают.
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, Score(top[i-1], choices), Score(top[i], choices))
	}

	// Ни одно невыбранное растение не набирает больше худшего из выбранных.
	worst := Score(top[len(top)-1], choices)
	returned := make(map[string]bool, len(top))
	for _, p := range top {
		returned[p.ID] = true
	}
	for _, p := range catalog.All() {
		if !returned[p.ID] {
			assert.LessOrEqual(t, Score(p, choices), worst,
				"plant %s excluded with a higher score", p.ID)
		}
	}
}

func TestRank_StableTieBreakByCatalogOrder(t *testing.T) {
	plants := []models.Plant{
		{ID: "a", Price: 100, WaterWeeks: 9, Space: 5, Light: 3},
		{ID: "b", Price: 100, WaterWeeks: 9, Space: 5, Light: 3},
		{ID: "c", Price: 5, WaterWeeks: 9, Space: 5, Light: 3},
		{ID: "d", Price: 100, WaterWeeks: 9, Space: 5, Light: 3},
	}
	catalogMock := &CatalogMock{}
	catalogMock.On("All").Return(plants).Once()

	svc := NewRecommendService(catalogMock, newNoopLogger())
	top, err := svc.Rank(models.QuizChoices{
		PriceStart: 0, PriceEnd: 10,
		WaterStart: 1, WaterEnd: 4,
		SpaceStart: 1, SpaceEnd: 5,
		LightStart: 1, LightEnd: 3,
	})

	assert.NoError(t, err)
	// "c" выигрывает по цене, остальные с равным баллом идут в порядке каталога.
	wantOrder := []string{"c", "a", "b", "d"}
	assert.Len(t, top, 4)
	for i, p := range top {
		assert.Equal(t, wantOrder[i], p.ID)
	}
	catalogMock.AssertExpectations(t)
}

func TestRank_EmptyCatalog(t *testing.T) {
	catalogMock := &CatalogMock{}
	catalogMock.On("All").Return([]models.Plant{}).Once()

	svc := NewRecommendService(catalogMock, newNoopLogger())
	top, err := svc.Rank(models.DefaultQuizChoices())

	assert.NoError(t, err)
	assert.Empty(t, top)
	catalogMock.AssertExpectations(t)
}

func TestRank_InvalidRange(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.QuizChoices)
	}{
		{name: "price lo above hi", mutate: func(c *models.QuizChoices) { c.PriceStart = 20; c.PriceEnd = 10 }},
		{name: "water lo above hi", mutate: func(c *models.QuizChoices) { c.WaterStart = 4; c.WaterEnd = 1 }},
		{name: "space above scale", mutate: func(c *models.QuizChoices) { c.SpaceEnd = 9 }},
		{name: "light below scale", mutate: func(c *models.QuizChoices) { c.LightStart = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewRecommendService(catalog.Provider{}, newNoopLogger())
			choices := models.DefaultQuizChoices()
			tt.mutate(&choices)

			_, err := svc.Rank(choices)
			assert.True(t, errors.Is(err, models.ErrInvalidRange), "got error: %v", err)
		})
	}
}
