package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jortega/gastobot/internal/config"
	"github.com/jortega/gastobot/internal/delivery/telegram"
	"github.com/jortega/gastobot/internal/infra/charts"
	"github.com/jortega/gastobot/internal/infra/db"
	"github.com/jortega/gastobot/internal/infra/log"
	"github.com/jortega/gastobot/internal/usecase"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type App struct {
	bot       *telegram.Bot
	scheduler *cron.Cron
	logger    *zap.Logger
	cleanupFn func() error
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	logger, err := log.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}

	dbConn, err := db.Open(cfg, logger)
	if err != nil {
		return nil, err
	}

	userRepo := db.NewUserRepository(dbConn)
	expenseRepo := db.NewExpenseRepository(dbConn)

	registry := usecase.NewRegistry(userRepo, cfg.AdminChatID)
	ledger := usecase.NewLedger(expenseRepo, loc)

	// The admin self-bootstraps so the daily digest reaches them too.
	if err := registry.Authorize(ctx, cfg.AdminChatID); err != nil {
		return nil, err
	}

	api, err := telegram.NewAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, err
	}

	notifier := telegram.NewNotifier(api, logger)
	digestJob := usecase.NewDigestJob(registry, ledger, notifier, logger)
	handlers := telegram.NewHandlers(registry, ledger, charts.NewRenderer(), logger)
	bot := telegram.NewBot(api, handlers, cfg.TelegramPollTimeout)

	scheduler := cron.New(cron.WithLocation(loc))
	cronSpec, err := digestCronSpec(cfg.DigestTime)
	if err != nil {
		return nil, err
	}
	if _, err := scheduler.AddFunc(cronSpec, func() {
		digestJob.Run(context.Background())
	}); err != nil {
		return nil, err
	}

	cleanup := func() error {
		sqlDB, err := dbConn.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return &App{bot: bot, scheduler: scheduler, logger: logger, cleanupFn: cleanup}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.logger.Info("gastobot service starting")
	a.scheduler.Start()
	a.logger.Info("gastobot service started")
	return a.bot.Start(ctx)
}

func (a *App) Shutdown() {
	a.logger.Info("gastobot service shutting down")
	a.scheduler.Stop()
	if a.cleanupFn != nil {
		if err := a.cleanupFn(); err != nil {
			a.logger.Warn("failed to close database", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}

// digestCronSpec turns a wall-clock HH:MM into the once-a-day cron entry.
func digestCronSpec(digestTime string) (string, error) {
	t, err := time.Parse("15:04", digestTime)
	if err != nil {
		return "", fmt.Errorf("invalid DIGEST_TIME %q: %w", digestTime, err)
	}
	return fmt.Sprintf("%d %d * * *", t.Minute(), t.Hour()), nil
}
