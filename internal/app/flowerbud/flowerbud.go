// Package flowerbud собирает приложение: хранилище состояния сессии,
// сервисы ядра и фоновый воркер смены дня. Слой UI (вне репозитория)
// работает с приложением через SessionService и RecommendService.
package flowerbud

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/flowerbud/internal/catalog"
	"github.com/magabrotheeeer/flowerbud/internal/config"
	recommendservice "github.com/magabrotheeeer/flowerbud/internal/services/recommend"
	rolloverservice "github.com/magabrotheeeer/flowerbud/internal/services/rollover"
	sessionservice "github.com/magabrotheeeer/flowerbud/internal/services/session"
	"github.com/magabrotheeeer/flowerbud/internal/storage/memory"
)

// App агрегирует компоненты приложения на время жизни сессии.
type App struct {
	Session   *sessionservice.SessionService
	Recommend *recommendservice.RecommendService
	logger    *slog.Logger
	rollover  *rolloverservice.RolloverService
}

// New создает приложение: засевает состояние сессии начальным растением
// из конфига и связывает сервисы с хранилищем и каталогом.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	state, err := sessionservice.SeedState(catalog.Provider{}, cfg.SeedPlantID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("seed session state: %w", err)
	}
	store := memory.New(state)

	return &App{
		Session:   sessionservice.NewSessionService(store, catalog.Provider{}, logger),
		Recommend: recommendservice.NewRecommendService(catalog.Provider{}, logger),
		logger:    logger,
		rollover:  rolloverservice.NewRolloverService(store, cfg.RolloverCheckInterval, logger),
	}, nil
}

// Run запускает фоновый воркер смены дня и блокируется до отмены
// контекста. Состояние живет только в памяти, поэтому при остановке
// ничего сбрасывать не нужно.
func (a *App) Run(ctx context.Context) error {
	go a.rollover.Run(ctx)

	a.logger.Info("flowerbud core started", slog.Int("catalog_size", catalog.Len()))
	<-ctx.Done()
	a.logger.Info("shutting down flowerbud core")
	return nil
}
