package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/skulk0156/EMS-backend/internal/model"
)

// ProjectRepo 项目的 gorm 实现
type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db: db}
}

func (r *ProjectRepo) Create(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *ProjectRepo) GetByID(ctx context.Context, id int64) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// List 按过滤条件分页返回项目及总数。
func (r *ProjectRepo) List(ctx context.Context, q model.ListProjectsQuery) ([]model.Project, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.Project{})

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		tx = tx.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.TeamID > 0 {
		tx = tx.Where("team_id = ?", q.TeamID)
	}
	if q.From != "" {
		tx = tx.Where("start_date >= ?", q.From)
	}
	if q.To != "" {
		tx = tx.Where("start_date <= ?", q.To)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
		if q.Page > 1 {
			tx = tx.Offset((q.Page - 1) * q.Limit)
		}
	}

	var projects []model.Project
	err := tx.Order("created_at DESC").Find(&projects).Error
	return projects, total, err
}

// StatusSummary 按状态统计项目数。
func (r *ProjectRepo) StatusSummary(ctx context.Context) (*model.ProjectStatusSummary, error) {
	type row struct {
		Status string
		Count  int64
	}

	var rows []row
	err := r.db.WithContext(ctx).
		Model(&model.Project{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summary := &model.ProjectStatusSummary{}
	for _, rw := range rows {
		switch model.ProjectStatus(rw.Status) {
		case model.ProjectStatusPlanned:
			summary.Planned = rw.Count
		case model.ProjectStatusActive:
			summary.Active = rw.Count
		case model.ProjectStatusOnHold:
			summary.OnHold = rw.Count
		case model.ProjectStatusCompleted:
			summary.Completed = rw.Count
		}
	}
	return summary, nil
}

func (r *ProjectRepo) Update(ctx context.Context, id int64, updates map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Project{}).Where("id = ?", id).Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *ProjectRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Project{}, id)
	return res.RowsAffected, res.Error
}
