// Package memory реализует хранилище состояния сессии пользователя
// в оперативной памяти. Данные живут только в течение процесса:
// персистентности у приложения нет по условию задачи.
//
// Хранилище безопасно для конкурентных читателей и сериализует все
// записи через единственную точку входа Update.
package memory

import (
	"sync"

	"github.com/magabrotheeeer/flowerbud/internal/models"
)

// Storage инкапсулирует состояние сессии и мьютекс, охраняющий доступ.
type Storage struct {
	mu    sync.RWMutex
	state models.UserState
}

// New создает хранилище с начальным состоянием сессии.
func New(initial models.UserState) *Storage {
	return &Storage{state: initial.Clone()}
}

// Snapshot возвращает глубокую копию текущего состояния. Читатели никогда
// не видят внутренние срезы хранилища, поэтому снимок можно безопасно
// использовать после последующих записей.
func (s *Storage) Snapshot() models.UserState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Update применяет мутацию к копии состояния под блокировкой записи.
// Если fn возвращает ошибку, состояние остается прежним: операция
// атомарна относительно читателей и относительно ошибок.
func (s *Storage) Update(fn func(*models.UserState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	s.state = next
	return nil
}
