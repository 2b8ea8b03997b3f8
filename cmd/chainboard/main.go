package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chainboard/internal/bot"
	"chainboard/internal/config"
	"chainboard/internal/logger"
	"chainboard/internal/observability"
	"chainboard/internal/repository"
	"chainboard/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	appLog, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer appLog.Sync()

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		appLog.Fatal("open database", "error", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	taskRepo := repository.NewTaskRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	progressRepo := repository.NewProgressRepository(db)

	routineSvc := service.NewRoutineService(taskRepo, appLog)
	progressSvc := service.NewProgressService(progressRepo, appLog)
	workspace := service.NewWorkspace(taskRepo, noteRepo, progressRepo, routineSvc, progressSvc, appLog)

	if err := workspace.Reload(ctx); err != nil {
		appLog.Fatal("initial load", "error", err)
	}

	telegramBot, err := bot.New(cfg.TelegramToken, workspace, &cfg, appLog)
	if err != nil {
		appLog.Fatal("create bot", "error", err)
	}

	scheduler := service.NewSchedulerService(time.Local)
	if _, err := scheduler.ScheduleDaily(cfg.RoutineTime, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := workspace.Reload(jobCtx); err != nil && !errors.Is(err, context.Canceled) {
			appLog.Error("routine rollover", "error", err)
		}
	}); err != nil {
		appLog.Fatal("schedule routine", "error", err)
	}
	if _, err := scheduler.ScheduleDaily(cfg.DigestTime, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := telegramBot.SendDailyDigest(jobCtx); err != nil && !errors.Is(err, context.Canceled) {
			appLog.Error("daily digest", "error", err)
		}
	}); err != nil {
		appLog.Fatal("schedule digest", "error", err)
	}
	if cfg.ReloadInterval > 0 {
		if _, err := scheduler.ScheduleInterval(cfg.ReloadInterval, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := workspace.Reload(jobCtx); err != nil && !errors.Is(err, context.Canceled) {
				appLog.Error("periodic reload", "error", err)
			}
		}); err != nil {
			appLog.Fatal("schedule reload", "error", err)
		}
	}
	scheduler.Start()
	defer scheduler.Stop()

	if cfg.MetricsAddr != "" {
		metricsSrv := observability.NewMetricsServer(cfg.MetricsAddr)
		go func() {
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				appLog.Error("metrics server", "error", err)
			}
		}()
		defer metricsSrv.Close()
	}

	appLog.Info("chainboard started")
	if err := telegramBot.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		appLog.Fatal("bot stopped", "error", err)
	}
	appLog.Info("shutdown complete")
}
