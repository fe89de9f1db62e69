package queue

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/skulk0156/EMS-backend/pkg/logger"
)

// StartAllConsumers 启动全部消费者并阻塞到 ctx 取消。
// 消费循环因通道关闭等原因退出后等待片刻重启。
func StartAllConsumers(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if err := StartActivityConsumer(ctx); err != nil {
			logger.Logger.Error("Activity consumer exited", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(5 * time.Second):
			logger.Logger.Info("Restarting activity consumer")
		}
	}
}
