package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	hertzconfig "github.com/cloudwego/hertz/pkg/common/config"
	otelapi "go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/skulk0156/EMS-backend/config"
	"github.com/skulk0156/EMS-backend/internal/middleware"
	"github.com/skulk0156/EMS-backend/internal/queue"
	"github.com/skulk0156/EMS-backend/internal/router"
	"github.com/skulk0156/EMS-backend/pkg/logger"
	"github.com/skulk0156/EMS-backend/pkg/otel"
	"github.com/skulk0156/EMS-backend/pkg/snowflake"
	"github.com/skulk0156/EMS-backend/pkg/token"
	"github.com/skulk0156/EMS-backend/storage"
)

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

	// 初始化存储层，记得关闭外部连接
	if err := storage.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer storage.Close()

	if err := snowflake.Init(config.Cfg.SnowflakeMachineID, config.Cfg.SnowflakeDataCenter); err != nil {
		logger.Logger.Fatal("Failed to initialize snowflake", zap.Error(err))
	}

	// token 在中间件前初始化，middleware 依赖 token
	if err := token.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize token package", zap.Error(err))
	}

	if err := middleware.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize middlewares", zap.Error(err))
	}

	// 活动事件拓扑，worker 也会声明，幂等
	if err := queue.DeclareTopology(); err != nil {
		logger.Logger.Warn("Failed to declare queue topology, activity events may not be routed", zap.Error(err))
	}

	// 可选链路追踪
	tracingEnabled := config.Cfg.TracingEnabled
	if tracingEnabled {
		shutdown, err := otel.InitOpenTelemetry(ctx, otel.Config{
			ServiceName:  config.Cfg.ServiceName,
			Environment:  config.Cfg.Environment,
			OTLPEndpoint: config.Cfg.TracingEndpoint,
			SampleRatio:  config.Cfg.TracingSampler,
		})
		if err != nil {
			logger.Logger.Warn("Failed to initialize OpenTelemetry, tracing disabled", zap.Error(err))
			tracingEnabled = false
		} else {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := shutdown(shutdownCtx); err != nil {
					logger.Logger.Error("Failed to shutdown OpenTelemetry", zap.Error(err))
				}
			}()

			if err := middleware.InitMetrics(otelapi.Meter(config.Cfg.ServiceName)); err != nil {
				logger.Logger.Warn("Failed to initialize HTTP metrics", zap.Error(err))
				tracingEnabled = false
			}
		}
	}

	logger.Logger.Info("Server starting",
		zap.String("service", config.Cfg.ServiceName),
		zap.String("port", config.Cfg.ServerPort),
		zap.String("environment", config.Cfg.Environment),
	)

	addr := net.JoinHostPort(config.Cfg.ServerHost, config.Cfg.ServerPort)

	serverOpts := []hertzconfig.Option{server.WithHostPorts(addr)}
	var tracerMiddleware app.HandlerFunc
	if tracingEnabled {
		tracerOpt, mw := middleware.NewServerTracerConfig()
		serverOpts = append(serverOpts, tracerOpt)
		tracerMiddleware = mw
	}

	h := server.Default(serverOpts...)

	if tracingEnabled {
		h.Use(tracerMiddleware)
		h.Use(middleware.OpenTelemetryMiddleware())
	}

	router.Register(h)

	// 静态托管上传的头像
	if config.Cfg.UploadDir != "" {
		h.StaticFS("/uploads", &app.FS{Root: config.Cfg.UploadDir, PathRewrite: app.NewPathSlashesStripper(1)})
	}

	// 优雅关闭：在单独的 goroutine 中监听关闭信号并调用 Shutdown
	go func() {
		<-ctx.Done()
		logger.Logger.Info("Initiating graceful shutdown...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := h.Shutdown(shutdownCtx); err != nil {
			logger.Logger.Error("Failed to shutdown HTTP server", zap.Error(err))
		}
	}()

	logger.Logger.Info("HTTP server listening", zap.String("addr", addr))

	h.Spin()

	logger.Logger.Info("Server shutting down gracefully")
}
