package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/skulk0156/EMS-backend/config"
	"github.com/skulk0156/EMS-backend/internal/queue"
	"github.com/skulk0156/EMS-backend/internal/service"
	"github.com/skulk0156/EMS-backend/pkg/logger"
	"github.com/skulk0156/EMS-backend/pkg/snowflake"
	"github.com/skulk0156/EMS-backend/storage"
)

// worker 消费 activity.events 队列，把活动事件落库供看板展示
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

	// worker 是消费方，拓扑声明失败直接退出
	if err := queue.DeclareTopology(); err != nil {
		logger.Logger.Fatal("Failed to declare queue topology", zap.Error(err))
	}

	queue.SetActivityRecorder(service.Activity())

	logger.Logger.Info("Activity worker starting",
		zap.String("service", config.Cfg.ServiceName),
		zap.String("environment", config.Cfg.Environment),
	)

	queue.StartAllConsumers(ctx)

	logger.Logger.Info("Activity worker shutting down gracefully")
}
