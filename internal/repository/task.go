package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/skulk0156/EMS-backend/internal/model"
)

// TaskRepo 任务的 gorm 实现
type TaskRepo struct {
	db *gorm.DB
}

func NewTaskRepo(db *gorm.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

func (r *TaskRepo) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepo) GetByID(ctx context.Context, id int64) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepo) List(ctx context.Context, q model.ListTasksQuery) ([]model.Task, error) {
	tx := r.db.WithContext(ctx).Model(&model.Task{})

	if q.AssigneeID > 0 {
		tx = tx.Where("assignee_id = ?", q.AssigneeID)
	}
	if q.ProjectID > 0 {
		tx = tx.Where("project_id = ?", q.ProjectID)
	}
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}

	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
		if q.Page > 1 {
			tx = tx.Offset((q.Page - 1) * q.Limit)
		}
	}

	var tasks []model.Task
	err := tx.Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepo) Update(ctx context.Context, id int64, updates map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Task{}).Where("id = ?", id).Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *TaskRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Task{}, id)
	return res.RowsAffected, res.Error
}

// CountByAssignee 返回某员工的任务总数与已完成数。
func (r *TaskRepo) CountByAssignee(ctx context.Context, assigneeID int64) (total, completed int64, err error) {
	tx := r.db.WithContext(ctx).Model(&model.Task{}).Where("assignee_id = ?", assigneeID)

	if err = tx.Count(&total).Error; err != nil {
		return 0, 0, err
	}

	err = r.db.WithContext(ctx).
		Model(&model.Task{}).
		Where("assignee_id = ? AND status = ?", assigneeID, model.TaskStatusDone).
		Count(&completed).Error
	return total, completed, err
}
