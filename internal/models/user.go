package models

import "time"

// JournalEntry представляет запись фотодневника: дата, снимок и комментарий.
// Снимок хранится как непрозрачный набор байт, его получение и кодирование —
// задача внешнего слоя камеры.
type JournalEntry struct {
	ID      string    // Уникальный идентификатор записи
	Date    time.Time // Дата, выбранная пользователем для записи
	Image   []byte    // Снимок
	Comment string    // Комментарий пользователя
}

// Clone возвращает глубокую копию записи дневника.
func (e JournalEntry) Clone() JournalEntry {
	cp := e
	cp.Image = make([]byte, len(e.Image))
	copy(cp.Image, e.Image)
	return cp
}

// UserState агрегирует все изменяемое состояние сессии пользователя:
// избранное, коллекцию растений, выбор в квизе, имя пользователя и дневник.
// Инвариант: Favourites и MyPlants ссылаются только на идентификаторы,
// существующие в каталоге. Состояние живет в памяти и теряется при
// завершении процесса.
type UserState struct {
	Favourites  []string       // Идентификаторы избранных растений, без дубликатов
	MyPlants    []UserPlant    // Коллекция растений пользователя
	QuizChoices QuizChoices    // Текущий выбор в квизе
	Username    string         // Имя пользователя, пустая строка до входа
	Journal     []JournalEntry // Записи дневника в порядке добавления
}

// Clone возвращает глубокую копию состояния. Используется хранилищем,
// чтобы читатели никогда не держали ссылки на внутренние срезы.
func (s UserState) Clone() UserState {
	cp := s
	cp.Favourites = make([]string, len(s.Favourites))
	copy(cp.Favourites, s.Favourites)
	cp.MyPlants = make([]UserPlant, len(s.MyPlants))
	for i, p := range s.MyPlants {
		cp.MyPlants[i] = p.Clone()
	}
	cp.QuizChoices = s.QuizChoices.Clone()
	cp.Journal = make([]JournalEntry, len(s.Journal))
	for i, e := range s.Journal {
		cp.Journal[i] = e.Clone()
	}
	return cp
}
