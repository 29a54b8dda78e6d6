package services

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/flowerbud/internal/catalog"
	"github.com/magabrotheeeer/flowerbud/internal/models"
	"github.com/magabrotheeeer/flowerbud/internal/storage/memory"
)

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func newTestService(t *testing.T, start time.Time) *SessionService {
	t.Helper()
	state, err := SeedState(catalog.Provider{}, "4", start)
	require.NoError(t, err)
	return NewSessionService(memory.New(state), catalog.Provider{}, newNoopLogger())
}

func TestSeedState(t *testing.T) {
	start := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	state, err := SeedState(catalog.Provider{}, "4", start)
	require.NoError(t, err)

	require.Len(t, state.MyPlants, 1)
	seeded := state.MyPlants[0]
	assert.Equal(t, "4", seeded.PlantID)
	assert.Equal(t, "Spider Plant", seeded.PlantName)
	assert.Equal(t, 1, seeded.WaterWeeks)
	assert.True(t, seeded.NextWaterDay.Equal(start))
	assert.Empty(t, seeded.LastWateredDates)
	assert.Equal(t, models.DefaultQuizChoices(), state.QuizChoices)
}

func TestSeedState_UnknownPlant(t *testing.T) {
	_, err := SeedState(catalog.Provider{}, "999", time.Now())
	assert.ErrorIs(t, err, models.ErrPlantNotFound)
}

func TestSeedState_NoSeedPlant(t *testing.T) {
	state, err := SeedState(catalog.Provider{}, "", time.Now())
	require.NoError(t, err)
	assert.Empty(t, state.MyPlants)
}

func TestFavourites(t *testing.T) {
	today := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	svc := newTestService(t, today)

	require.NoError(t, svc.AddToFavourites("1"))
	require.NoError(t, svc.AddToFavourites("7"))
	// Повторное добавление идемпотентно.
	require.NoError(t, svc.AddToFavourites("1"))
	assert.Equal(t, []string{"1", "7"}, svc.Snapshot().Favourites)

	require.NoError(t, svc.RemoveFromFavourites("1"))
	// Удаление отсутствующего — no-op.
	require.NoError(t, svc.RemoveFromFavourites("42"))
	assert.Equal(t, []string{"7"}, svc.Snapshot().Favourites)

	assert.ErrorIs(t, svc.AddToFavourites("999"), models.ErrPlantNotFound)
}

func TestAddToMyPlants_SeededFromCatalog(t *testing.T) {
	today := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	svc := newTestService(t, today)

	require.NoError(t, svc.AddToMyPlants("1", today))

	snap := svc.Snapshot()
	require.Len(t, snap.MyPlants, 2)
	added := snap.MyPlants[1]
	assert.Equal(t, "1", added.PlantID)
	assert.Equal(t, "Aloe Vera", added.PlantName)
	assert.Equal(t, 4, added.WaterWeeks)
	assert.True(t, added.NextWaterDay.Equal(today))

	// Только что добавленное растение сразу попадает в задачи на сегодня.
	due := svc.PlantsToWater(today, today)
	ids := make([]string, 0, len(due))
	for _, p := range due {
		ids = append(ids, p.PlantID)
	}
	assert.Contains(t, ids, "1")

	// Повторное добавление — no-op.
	require.NoError(t, svc.AddToMyPlants("1", today))
	assert.Len(t, svc.Snapshot().MyPlants, 2)

	assert.ErrorIs(t, svc.AddToMyPlants("999", today), models.ErrPlantNotFound)
}

func TestRemoveFromMyPlants(t *testing.T) {
	today := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	svc := newTestService(t, today)

	require.NoError(t, svc.RemoveFromMyPlants("4"))
	assert.Empty(t, svc.Snapshot().MyPlants)

	// Отсутствующий идентификатор — no-op.
	require.NoError(t, svc.RemoveFromMyPlants("4"))
}

func TestWaterPlant_ScenarioChain(t *testing.T) {
	// Растение с интервалом 1 неделя, полив назначен на 2024-01-01,
	// сегодня 2024-01-03: растение просрочено и попадает в задачи.
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	today := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	svc := newTestService(t, start)

	due := svc.PlantsToWater(today, today)
	require.Len(t, due, 1)
	assert.Equal(t, "4", due[0].PlantID)

	// Полив 2024-01-03 переносит следующий полив на 2024-01-10
	// и записывает дату в историю.
	require.NoError(t, svc.WaterPlant("4", today))
	watered := svc.Snapshot().MyPlants[0]
	assert.True(t, watered.NextWaterDay.Equal(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)))
	require.Len(t, watered.LastWateredDates, 1)
	assert.True(t, watered.LastWateredDates[0].Equal(today))

	// Из более позднего "сегодня" дата 2024-01-03 видна как история полива.
	later := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	history := svc.PlantsToWater(today, later)
	require.Len(t, history, 1)
	assert.Equal(t, "4", history[0].PlantID)
}

func TestWaterPlant_Errors(t *testing.T) {
	today := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	svc := newTestService(t, today)

	assert.ErrorIs(t, svc.WaterPlant("999", today), models.ErrPlantNotFound)

	require.NoError(t, svc.WaterPlant("4", today))
	err := svc.WaterPlant("4", today)
	assert.ErrorIs(t, err, models.ErrAlreadyWatered)

	// Состояние после отклоненного повторного полива не изменилось.
	watered := svc.Snapshot().MyPlants[0]
	assert.Len(t, watered.LastWateredDates, 1)
	assert.True(t, watered.NextWaterDay.Equal(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)))
}

func TestQuizChoiceSetters(t *testing.T) {
	today := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	svc := newTestService(t, today)

	require.NoError(t, svc.SetPriceRange(0, 10))
	require.NoError(t, svc.SetWaterRange(1, 4))
	require.NoError(t, svc.SetSpaceRange(1, 3))
	require.NoError(t, svc.SetLightRange(1, 3))
	require.NoError(t, svc.SetToxicYn(true))
	require.NoError(t, svc.SetOutdoor(false))

	choices := svc.Snapshot().QuizChoices
	assert.Equal(t, 0, choices.PriceStart)
	assert.Equal(t, 10, choices.PriceEnd)
	assert.Equal(t, 3, choices.SpaceEnd)
	require.NotNil(t, choices.ToxicYn)
	assert.True(t, *choices.ToxicYn)
	require.NotNil(t, choices.Outdoor)
	assert.False(t, *choices.Outdoor)
}

func TestQuizChoiceSetters_InvalidRangeRejected(t *testing.T) {
	today := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	svc := newTestService(t, today)

	assert.ErrorIs(t, svc.SetPriceRange(20, 10), models.ErrInvalidRange)
	assert.ErrorIs(t, svc.SetWaterRange(4, 1), models.ErrInvalidRange)
	assert.ErrorIs(t, svc.SetSpaceRange(1, 9), models.ErrInvalidRange)
	assert.ErrorIs(t, svc.SetLightRange(0, 3), models.ErrInvalidRange)

	// Отклоненные изменения не попали в состояние.
	assert.Equal(t, models.DefaultQuizChoices(), svc.Snapshot().QuizChoices)
}

func TestSetUsername(t *testing.T) {
	today := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	svc := newTestService(t, today)

	require.NoError(t, svc.SetUsername("daisy"))
	assert.Equal(t, "daisy", svc.Snapshot().Username)

	assert.ErrorIs(t, svc.SetUsername(""), models.ErrInvalidArgument)
	assert.ErrorIs(t, svc.SetUsername("   "), models.ErrInvalidArgument)
}

func TestAddJournalEntry(t *testing.T) {
	today := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	svc := newTestService(t, today)

	entry, err := svc.AddJournalEntry(today, []byte{0x01, 0x02}, "first leaf")
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.True(t, entry.Date.Equal(today))

	second, err := svc.AddJournalEntry(today.AddDate(0, 0, 1), nil, "")
	require.NoError(t, err)
	assert.NotEqual(t, entry.ID, second.ID)

	journal := svc.Snapshot().Journal
	require.Len(t, journal, 2)
	assert.Equal(t, "first leaf", journal[0].Comment)
	assert.Equal(t, []byte{0x01, 0x02}, journal[0].Image)

	_, err = svc.AddJournalEntry(time.Time{}, nil, "")
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}

func TestCalendar(t *testing.T) {
	today := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	svc := newTestService(t, today)

	w := svc.Calendar(today, today)
	require.Len(t, w.VisibleDates, 7)
	assert.Equal(t, time.Monday, w.VisibleDates[0].Date.Weekday())
	assert.True(t, w.SelectedDate.IsToday)
}
