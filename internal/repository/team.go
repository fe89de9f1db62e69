package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/skulk0156/EMS-backend/internal/model"
)

// TeamRepo 团队的 gorm 实现
type TeamRepo struct {
	db *gorm.DB
}

func NewTeamRepo(db *gorm.DB) *TeamRepo {
	return &TeamRepo{db: db}
}

func (r *TeamRepo) Create(ctx context.Context, team *model.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

func (r *TeamRepo) GetByID(ctx context.Context, id int64) (*model.Team, error) {
	var team model.Team
	if err := r.db.WithContext(ctx).First(&team, id).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *TeamRepo) List(ctx context.Context) ([]model.Team, error) {
	var teams []model.Team
	err := r.db.WithContext(ctx).Order("name").Find(&teams).Error
	return teams, err
}

// ListVisible 返回某用户可见的团队：其领导的 + 其所属的。
func (r *TeamRepo) ListVisible(ctx context.Context, userID int64) ([]model.Team, error) {
	var teams []model.Team
	err := r.db.WithContext(ctx).
		Where("lead_id = ?", userID).
		Or("id IN (?)", r.db.Model(&model.User{}).Select("team_id").Where("id = ? AND team_id IS NOT NULL", userID)).
		Order("name").
		Find(&teams).Error
	return teams, err
}

func (r *TeamRepo) Update(ctx context.Context, id int64, updates map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Team{}).Where("id = ?", id).Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *TeamRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Team{}, id)
	return res.RowsAffected, res.Error
}
