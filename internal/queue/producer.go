package queue

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/skulk0156/EMS-backend/internal/model"
	"github.com/skulk0156/EMS-backend/pkg/logger"
	"github.com/skulk0156/EMS-backend/pkg/snowflake"
	"github.com/skulk0156/EMS-backend/storage/mq"
)

// PublishActivityEvent 发布一条活动事件。
// MessageID 为空时自动生成；OccurredAt 为空时取当前时间。
func PublishActivityEvent(routingKey string, msg model.ActivityEventMessage) error {
	if msg.MessageID == 0 {
		id, err := snowflake.NextID()
		if err != nil {
			logger.Logger.Error("Failed to generate message ID",
				zap.String("action", msg.Action),
				zap.Error(err),
			)
			return fmt.Errorf("failed to generate message ID: %w", err)
		}
		msg.MessageID = id
	}

	if msg.OccurredAt == "" {
		msg.OccurredAt = time.Now().UTC().Format(time.RFC3339)
	}

	if err := mq.PublishMessage(ActivityExchange, routingKey, msg); err != nil {
		logger.Logger.Error("Failed to publish activity event",
			zap.Int64("message_id", msg.MessageID),
			zap.String("action", msg.Action),
			zap.Error(err),
		)
		return err
	}

	logger.Logger.Info("Published activity event",
		zap.Int64("message_id", msg.MessageID),
		zap.String("routing_key", routingKey),
		zap.String("action", msg.Action),
		zap.String("employee_id", msg.EmployeeID),
	)

	return nil
}
