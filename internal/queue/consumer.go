package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/skulk0156/EMS-backend/internal/cache"
	"github.com/skulk0156/EMS-backend/internal/model"
	"github.com/skulk0156/EMS-backend/pkg/errors"
	"github.com/skulk0156/EMS-backend/pkg/logger"
	"github.com/skulk0156/EMS-backend/storage/mq"
)

// ActivityRecorder 消费侧落库接口，worker 启动时注入
type ActivityRecorder interface {
	Record(ctx context.Context, event model.ActivityEventMessage) error
}

var recorder ActivityRecorder

// SetActivityRecorder 设置活动落库实现（在 worker 启动时调用）
func SetActivityRecorder(r ActivityRecorder) {
	recorder = r
}

// StartActivityConsumer 启动活动事件消费者，阻塞直到通道关闭。
func StartActivityConsumer(ctx context.Context) error {
	if recorder == nil {
		return fmt.Errorf("activity recorder is not set")
	}

	handler := func(body []byte) error {
		var msg model.ActivityEventMessage
		if err := json.Unmarshal(body, &msg); err != nil {
			return fmt.Errorf("failed to unmarshal activity event: %w", err)
		}

		msgID := strconv.FormatInt(msg.MessageID, 10)

		acquired, err := cache.TryMarkMessageProcessing(ctx, msgID, 24*time.Hour)
		if err != nil {
			logger.Logger.Warn("Failed to check message processed status",
				zap.Int64("message_id", msg.MessageID),
				zap.Error(err),
			)
			// 检查失败时继续处理，activities 表的唯一索引兜底去重
		} else if !acquired {
			return &errors.SkipMessageError{
				Reason: fmt.Sprintf("message %d already processed", msg.MessageID),
			}
		}

		if err := recorder.Record(ctx, msg); err != nil {
			// 处理失败，释放标记允许重试
			if unmarkErr := cache.UnmarkMessageProcessing(ctx, msgID); unmarkErr != nil {
				logger.Logger.Warn("Failed to unmark message processing",
					zap.Int64("message_id", msg.MessageID),
					zap.Error(unmarkErr),
				)
			}
			return fmt.Errorf("failed to record activity: %w", err)
		}

		if err := cache.MarkMessageProcessed(ctx, msgID, 7*24*time.Hour); err != nil {
			logger.Logger.Warn("Failed to mark message processed",
				zap.Int64("message_id", msg.MessageID),
				zap.Error(err),
			)
		}

		// 新活动改变了最近动态，失效对应员工的看板缓存
		if err := cache.InvalidateDashboard(ctx, msg.EmployeeID); err != nil {
			logger.Logger.Warn("Failed to invalidate dashboard cache",
				zap.String("employee_id", msg.EmployeeID),
				zap.Error(err),
			)
		}

		return nil
	}

	return mq.Consume(mq.ConsumeOptions{
		Queue:         ActivityQueue,
		ConsumerTag:   "activity-worker",
		PrefetchCount: 32,
		Handler:       handler,
	})
}
