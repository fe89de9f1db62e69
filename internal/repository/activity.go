package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/skulk0156/EMS-backend/internal/model"
)

// ActivityRepo 活动流水的 gorm 实现
type ActivityRepo struct {
	db *gorm.DB
}

func NewActivityRepo(db *gorm.DB) *ActivityRepo {
	return &ActivityRepo{db: db}
}

// Insert 落库活动记录。message_id 唯一索引冲突返回 gorm.ErrDuplicatedKey，
// 作为 Redis 幂等标记之外的第二道去重。
func (r *ActivityRepo) Insert(ctx context.Context, activity *model.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

// RecentByEmployee 返回某员工最近的活动，按发生时间倒序。
func (r *ActivityRepo) RecentByEmployee(ctx context.Context, employeeID string, limit int) ([]model.Activity, error) {
	if limit <= 0 {
		limit = 10
	}

	var activities []model.Activity
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}
