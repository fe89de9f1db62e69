package schedule

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/skulk0156/EMS-backend/internal/service"
	"github.com/skulk0156/EMS-backend/pkg/logger"
	"github.com/skulk0156/EMS-backend/storage/redis"
	"github.com/skulk0156/EMS-backend/utils"
)

// DigestScheduler 每日考勤汇总调度器
type DigestScheduler struct{}

var (
	digestScheduler *DigestScheduler
	digestOnce      sync.Once
)

func GetDigestScheduler() *DigestScheduler {
	digestOnce.Do(func() {
		digestScheduler = &DigestScheduler{}
	})

	return digestScheduler
}

// RunDailyDigest 统计前一天的出勤并发布汇总事件。
// 用 Redis SETNX 按日期抢锁，多实例部署时同一天只跑一次。
func (s *DigestScheduler) RunDailyDigest(ctx context.Context) error {
	date := utils.FormatDate(time.Now().UTC().AddDate(0, 0, -1))

	lockKey := redis.Key("digest", "lock", date)
	acquired, err := redis.Client().SetNX(ctx, lockKey, time.Now().Unix(), 48*time.Hour).Result()
	if err != nil {
		return err
	}
	if !acquired {
		logger.Logger.Info("Daily digest already published by another instance",
			zap.String("date", date),
		)
		return nil
	}

	if err := service.Attendance().PublishDailyDigest(ctx, date); err != nil {
		// 发布失败释放锁，下次循环重试
		if delErr := redis.Client().Del(ctx, lockKey).Err(); delErr != nil {
			logger.Logger.Warn("Failed to release digest lock",
				zap.String("date", date),
				zap.Error(delErr),
			)
		}
		return err
	}

	logger.Logger.Info("Daily attendance digest published", zap.String("date", date))
	return nil
}
