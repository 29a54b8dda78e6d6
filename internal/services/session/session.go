// Package services содержит бизнес-логику сессии пользователя: избранное,
// коллекцию растений с графиком полива, выбор в квизе, имя пользователя
// и фотодневник. Все операции синхронны и проходят через единственную
// точку записи хранилища, поэтому сервис безопасен для конкурентного
// использования слоем UI и фоновыми воркерами.
package services

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/flowerbud/internal/lib/day"
	"github.com/magabrotheeeer/flowerbud/internal/lib/sl"
	"github.com/magabrotheeeer/flowerbud/internal/lib/week"
	"github.com/magabrotheeeer/flowerbud/internal/models"
	schedulesvc "github.com/magabrotheeeer/flowerbud/internal/services/schedule"
)

// StateRepository определяет методы доступа к состоянию сессии в хранилище.
type StateRepository interface {
	// Snapshot возвращает глубокую копию текущего состояния.
	Snapshot() models.UserState
	// Update применяет мутацию через сериализованную точку записи.
	Update(fn func(*models.UserState) error) error
}

// Catalog определяет доступ сервиса к каталогу растений.
type Catalog interface {
	// FindByID возвращает растение каталога по идентификатору.
	FindByID(id string) (models.Plant, error)
}

// SessionService реализует операции над состоянием сессии пользователя.
type SessionService struct {
	repo     StateRepository
	catalog  Catalog
	validate *validator.Validate
	log      *slog.Logger
}

// NewSessionService создает новый экземпляр SessionService.
func NewSessionService(repo StateRepository, catalog Catalog, log *slog.Logger) *SessionService {
	return &SessionService{
		repo:     repo,
		catalog:  catalog,
		validate: validator.New(),
		log:      log,
	}
}

// SeedState строит начальное состояние сессии: выбор квиза по умолчанию
// и одно растение из каталога, полив которого назначен на дату старта.
func SeedState(catalog Catalog, seedPlantID string, start time.Time) (models.UserState, error) {
	const op = "session.SeedState"

	state := models.UserState{QuizChoices: models.DefaultQuizChoices()}
	if seedPlantID == "" {
		return state, nil
	}
	plant, err := catalog.FindByID(seedPlantID)
	if err != nil {
		return models.UserState{}, fmt.Errorf("%s: %w", op, err)
	}
	state.MyPlants = []models.UserPlant{newUserPlant(plant, start)}
	return state, nil
}

// Snapshot возвращает снимок состояния сессии для слоя UI.
func (s *SessionService) Snapshot() models.UserState {
	return s.repo.Snapshot()
}

// AddToFavourites добавляет растение в избранное. Операция идемпотентна:
// повторное добавление ничего не меняет. Неизвестный идентификатор
// отклоняется, чтобы избранное ссылалось только на каталог.
func (s *SessionService) AddToFavourites(plantID string) error {
	const op = "session.AddToFavourites"

	if _, err := s.catalog.FindByID(plantID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	err := s.repo.Update(func(state *models.UserState) error {
		for _, id := range state.Favourites {
			if id == plantID {
				return nil
			}
		}
		state.Favourites = append(state.Favourites, plantID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("added plant to favourites", slog.String("plant_id", plantID))
	return nil
}

// RemoveFromFavourites удаляет растение из избранного. Отсутствующий
// идентификатор не считается ошибкой.
func (s *SessionService) RemoveFromFavourites(plantID string) error {
	const op = "session.RemoveFromFavourites"

	err := s.repo.Update(func(state *models.UserState) error {
		next := state.Favourites[:0]
		for _, id := range state.Favourites {
			if id != plantID {
				next = append(next, id)
			}
		}
		state.Favourites = next
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("removed plant from favourites", slog.String("plant_id", plantID))
	return nil
}

// AddToMyPlants добавляет растение каталога в коллекцию пользователя.
// Интервал полива и отображаемые поля копируются из каталога, первый
// полив назначается на сегодняшний день. Уже добавленное растение
// повторно не добавляется.
func (s *SessionService) AddToMyPlants(plantID string, today time.Time) error {
	const op = "session.AddToMyPlants"

	plant, err := s.catalog.FindByID(plantID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	err = s.repo.Update(func(state *models.UserState) error {
		for _, owned := range state.MyPlants {
			if owned.PlantID == plantID {
				return nil
			}
		}
		state.MyPlants = append(state.MyPlants, newUserPlant(plant, today))
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("added plant to collection",
		slog.String("plant_id", plantID), sl.Date("next_water_day", day.Normalize(today)))
	return nil
}

// RemoveFromMyPlants удаляет растение из коллекции вместе с его графиком
// полива. Отсутствующий идентификатор не считается ошибкой.
func (s *SessionService) RemoveFromMyPlants(plantID string) error {
	const op = "session.RemoveFromMyPlants"

	err := s.repo.Update(func(state *models.UserState) error {
		next := state.MyPlants[:0]
		for _, owned := range state.MyPlants {
			if owned.PlantID != plantID {
				next = append(next, owned)
			}
		}
		state.MyPlants = next
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("removed plant from collection", slog.String("plant_id", plantID))
	return nil
}

// WaterPlant отмечает полив растения коллекции на сегодняшнюю дату.
// Неизвестный идентификатор дает models.ErrPlantNotFound, повторный полив
// в тот же день — models.ErrAlreadyWatered.
func (s *SessionService) WaterPlant(plantID string, today time.Time) error {
	const op = "session.WaterPlant"

	err := s.repo.Update(func(state *models.UserState) error {
		for i, owned := range state.MyPlants {
			if owned.PlantID != plantID {
				continue
			}
			watered, err := schedulesvc.Water(owned, today)
			if err != nil {
				return err
			}
			state.MyPlants[i] = watered
			return nil
		}
		return fmt.Errorf("%q: %w", plantID, models.ErrPlantNotFound)
	})
	if err != nil {
		s.log.Warn("failed to water plant", slog.String("plant_id", plantID), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("watered plant", slog.String("plant_id", plantID), sl.Date("date", day.Normalize(today)))
	return nil
}

// PlantsToWater возвращает задачи полива на выбранную дату. Статусы
// вычисляются на каждом запросе относительно переданного "сегодня".
func (s *SessionService) PlantsToWater(selected, today time.Time) []models.UserPlant {
	return schedulesvc.DueOn(s.repo.Snapshot().MyPlants, selected, today)
}

// Calendar возвращает окно недели вокруг выбранной даты для календаря
// на главном экране.
func (s *SessionService) Calendar(selected, today time.Time) week.Window {
	return week.Get(selected, today)
}

// SetPriceRange задает диапазон цены в выборе квиза.
func (s *SessionService) SetPriceRange(lo, hi int) error {
	return s.updateChoices("session.SetPriceRange", func(c *models.QuizChoices) {
		c.PriceStart, c.PriceEnd = lo, hi
	})
}

// SetWaterRange задает диапазон интервала полива в неделях.
func (s *SessionService) SetWaterRange(lo, hi int) error {
	return s.updateChoices("session.SetWaterRange", func(c *models.QuizChoices) {
		c.WaterStart, c.WaterEnd = lo, hi
	})
}

// SetSpaceRange задает диапазон требуемого пространства по шкале 1-5.
func (s *SessionService) SetSpaceRange(lo, hi int) error {
	return s.updateChoices("session.SetSpaceRange", func(c *models.QuizChoices) {
		c.SpaceStart, c.SpaceEnd = lo, hi
	})
}

// SetLightRange задает диапазон требуемого освещения по шкале 1-3.
func (s *SessionService) SetLightRange(lo, hi int) error {
	return s.updateChoices("session.SetLightRange", func(c *models.QuizChoices) {
		c.LightStart, c.LightEnd = lo, hi
	})
}

// SetToxicYn задает ответ на вопрос о переносимости токсичных растений.
func (s *SessionService) SetToxicYn(v bool) error {
	return s.updateChoices("session.SetToxicYn", func(c *models.QuizChoices) {
		c.ToxicYn = &v
	})
}

// SetOutdoor задает ответ на вопрос о размещении растения на улице.
func (s *SessionService) SetOutdoor(v bool) error {
	return s.updateChoices("session.SetOutdoor", func(c *models.QuizChoices) {
		c.Outdoor = &v
	})
}

// SetUsername сохраняет имя пользователя сессии. Пустое имя отклоняется:
// форма входа обязана прислать заполненное поле.
func (s *SessionService) SetUsername(name string) error {
	const op = "session.SetUsername"

	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%s: empty username: %w", op, models.ErrInvalidArgument)
	}
	err := s.repo.Update(func(state *models.UserState) error {
		state.Username = name
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("username set", slog.String("username", name))
	return nil
}

// AddJournalEntry добавляет запись фотодневника и возвращает ее с
// присвоенным идентификатором. Нулевая дата отклоняется.
func (s *SessionService) AddJournalEntry(date time.Time, image []byte, comment string) (models.JournalEntry, error) {
	const op = "session.AddJournalEntry"

	if date.IsZero() {
		return models.JournalEntry{}, fmt.Errorf("%s: zero date: %w", op, models.ErrInvalidArgument)
	}
	entry := models.JournalEntry{
		ID:      uuid.New().String(),
		Date:    day.Normalize(date),
		Image:   image,
		Comment: comment,
	}
	err := s.repo.Update(func(state *models.UserState) error {
		state.Journal = append(state.Journal, entry.Clone())
		return nil
	})
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("added journal entry",
		slog.String("entry_id", entry.ID), sl.Date("date", entry.Date))
	return entry, nil
}

// updateChoices сливает одно изменение в выбор квиза и проверяет
// получившиеся диапазоны до записи.
func (s *SessionService) updateChoices(op string, apply func(*models.QuizChoices)) error {
	err := s.repo.Update(func(state *models.UserState) error {
		next := state.QuizChoices.Clone()
		apply(&next)
		if err := s.validate.Struct(next); err != nil {
			return fmt.Errorf("%v: %w", err, models.ErrInvalidRange)
		}
		state.QuizChoices = next
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Debug("quiz choices updated", slog.String("op", op))
	return nil
}

func newUserPlant(plant models.Plant, start time.Time) models.UserPlant {
	return models.UserPlant{
		PlantID:      plant.ID,
		WaterWeeks:   plant.WaterWeeks,
		NextWaterDay: day.Normalize(start),
		PlantName:    plant.Name,
		PlantImage:   plant.Image,
	}
}
