// Package services реализует фоновый воркер смены дня. Производные
// статусы полива нигде не кешируются, поэтому на границе суток воркеру
// достаточно пересчитать сводку задач для нового "сегодня" и записать
// ее в лог. Текущая дата берется в момент тика, а не при старте.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/flowerbud/internal/lib/day"
	"github.com/magabrotheeeer/flowerbud/internal/lib/sl"
	"github.com/magabrotheeeer/flowerbud/internal/models"
	schedulesvc "github.com/magabrotheeeer/flowerbud/internal/services/schedule"
)

// StateReader определяет доступ воркера к состоянию сессии.
type StateReader interface {
	// Snapshot возвращает глубокую копию текущего состояния.
	Snapshot() models.UserState
}

// RolloverService пересчитывает сводку задач полива на границе суток.
type RolloverService struct {
	store    StateReader
	interval time.Duration
	log      *slog.Logger
}

// NewRolloverService создает новый экземпляр RolloverService.
func NewRolloverService(store StateReader, interval time.Duration, log *slog.Logger) *RolloverService {
	return &RolloverService{
		store:    store,
		interval: interval,
		log:      log,
	}
}

// Run пересчитывает сводку при старте и затем на каждом тике, пока
// контекст не отменен. Смена календарной даты обнаруживается сравнением
// с датой предыдущего пересчета.
func (s *RolloverService) Run(ctx context.Context) {
	today := day.Normalize(time.Now())
	s.recompute(today)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("day rollover worker stopped")
			return
		case now := <-ticker.C:
			current := day.Normalize(now)
			if current.Equal(today) {
				continue
			}
			today = current
			s.recompute(today)
		}
	}
}

// Counts возвращает количество задач полива на переданную дату и сколько
// из них просрочено.
func (s *RolloverService) Counts(now time.Time) (due, overdue int) {
	today := day.Normalize(now)
	plants := s.store.Snapshot().MyPlants
	due = len(schedulesvc.DueOn(plants, today, today))
	for _, p := range plants {
		if schedulesvc.IsOverdue(p, today, today) {
			overdue++
		}
	}
	return due, overdue
}

func (s *RolloverService) recompute(today time.Time) {
	due, overdue := s.Counts(today)
	s.log.Info("recomputed watering summary for new day",
		sl.Date("today", today),
		slog.Int("due", due),
		slog.Int("overdue", overdue))
}
