package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/skulk0156/EMS-backend/internal/model"
	"github.com/skulk0156/EMS-backend/internal/repository"
	"github.com/skulk0156/EMS-backend/storage/database"
)

// ActivityStore 活动流水存储接口
type ActivityStore interface {
	Insert(ctx context.Context, activity *model.Activity) error
	RecentByEmployee(ctx context.Context, employeeID string, limit int) ([]model.Activity, error)
}

type ActivityService struct {
	store ActivityStore
}

var (
	activityService *ActivityService
	activityOnce    sync.Once
)

func Activity() *ActivityService {
	activityOnce.Do(func() {
		activityService = NewActivityService(repository.NewActivityRepo(database.DB()))
	})

	return activityService
}

func NewActivityService(store ActivityStore) *ActivityService {
	return &ActivityService{store: store}
}

// Record 把队列事件落成 activities 行。message_id 唯一索引冲突视为
// 重复投递，按成功处理（幂等）。
func (s *ActivityService) Record(ctx context.Context, event model.ActivityEventMessage) error {
	occurredAt, err := time.Parse(time.RFC3339, event.OccurredAt)
	if err != nil {
		occurredAt = time.Now().UTC()
	}

	activity := &model.Activity{
		MessageID:  event.MessageID,
		EmployeeID: event.EmployeeID,
		Action:     event.Action,
		Entity:     event.Entity,
		EntityID:   event.EntityID,
		Detail:     event.Detail,
		OccurredAt: occurredAt,
	}

	if err := s.store.Insert(ctx, activity); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}

	return nil
}

// Recent 返回某员工最近的活动流水。
func (s *ActivityService) Recent(ctx context.Context, employeeID string, limit int) ([]model.Activity, error) {
	return s.store.RecentByEmployee(ctx, employeeID, limit)
}
