package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/skulk0156/EMS-backend/config"
	"github.com/skulk0156/EMS-backend/internal/schedule"
	"github.com/skulk0156/EMS-backend/pkg/logger"
	"github.com/skulk0156/EMS-backend/pkg/snowflake"
	"github.com/skulk0156/EMS-backend/storage"
)

// scheduler 每天发布前一天的考勤日报事件
func main() {
	config.Load()

	logger.Init()
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Logger.Info("Received shutdown signal",
			zap.String("signal", sig.String()),
		)
		cancel()
	}()

	if err := storage.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer storage.Close()

	if err := snowflake.Init(config.Cfg.SnowflakeMachineID, config.Cfg.SnowflakeDataCenter); err != nil {
		logger.Logger.Fatal("Failed to initialize snowflake", zap.Error(err))
	}

	logger.Logger.Info("Digest scheduler starting",
		zap.String("service", config.Cfg.ServiceName),
		zap.String("environment", config.Cfg.Environment),
	)

	runDailyDigestLoop(ctx)

	logger.Logger.Info("Digest scheduler shutting down gracefully")
}

// runDailyDigestLoop 阻塞直到 ctx 取消。开发环境下每分钟跑一次方便调试，
// 生产环境每天 00:05 跑一次，日期锁保证多实例只发布一份日报。
func runDailyDigestLoop(ctx context.Context) {
	scheduler := schedule.GetDigestScheduler()

	if config.Cfg.IsDevelopment() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runOnce(ctx, scheduler)
			}
		}
	}

	for {
		next := nextRunAt(time.Now())
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			runOnce(ctx, scheduler)
		}
	}
}

// nextRunAt 返回下一个 00:05
func nextRunAt(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 5, 0, 0, now.Location())
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}
	return next
}

func runOnce(ctx context.Context, scheduler *schedule.DigestScheduler) {
	runCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	if err := scheduler.RunDailyDigest(runCtx); err != nil {
		logger.Logger.Error("Daily digest run failed", zap.Error(err))
	}
}
