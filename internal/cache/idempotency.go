package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/skulk0156/EMS-backend/storage/redis"
)

// TryMarkMessageProcessing 用 SETNX 抢占消息处理标记。
// 返回 true 表示当前消费者获得处理权，false 表示消息已被处理过或正在处理。
func TryMarkMessageProcessing(ctx context.Context, messageID string, ttl time.Duration) (bool, error) {
	key := redis.Key("msg", "processing", messageID)
	return redis.Client().SetNX(ctx, key, time.Now().Unix(), ttl).Result()
}

// UnmarkMessageProcessing 处理失败时释放标记，允许消息重试。
func UnmarkMessageProcessing(ctx context.Context, messageID string) error {
	key := redis.Key("msg", "processing", messageID)
	return redis.Client().Del(ctx, key).Err()
}

// MarkMessageProcessed 处理成功后延长标记 TTL，防止重复投递再次处理。
func MarkMessageProcessed(ctx context.Context, messageID string, ttl time.Duration) error {
	key := redis.Key("msg", "processing", messageID)
	return redis.Client().Set(ctx, key, fmt.Sprintf("done:%d", time.Now().Unix()), ttl).Err()
}
