package cache

import (
	"context"
	"encoding/json"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/skulk0156/EMS-backend/internal/model"
	"github.com/skulk0156/EMS-backend/storage/redis"
)

// GetDashboardStats 读取看板统计缓存，未命中返回 (nil, false, nil)。
func GetDashboardStats(ctx context.Context, employeeID string) (*model.DashboardStats, bool, error) {
	key := redis.Key("dashboard", employeeID)

	raw, err := redis.Client().Get(ctx, key).Bytes()
	if err == goredis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var stats model.DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		// 缓存内容损坏时当作未命中，由调用方回源重建
		_ = redis.Client().Del(ctx, key).Err()
		return nil, false, nil
	}

	return &stats, true, nil
}

// SetDashboardStats 写入看板统计缓存。
func SetDashboardStats(ctx context.Context, employeeID string, stats *model.DashboardStats, ttl time.Duration) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	key := redis.Key("dashboard", employeeID)
	return redis.Client().Set(ctx, key, raw, ttl).Err()
}

// InvalidateDashboard 主动失效某员工的看板缓存。
func InvalidateDashboard(ctx context.Context, employeeID string) error {
	return redis.Client().Del(ctx, redis.Key("dashboard", employeeID)).Err()
}
