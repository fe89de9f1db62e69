package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/skulk0156/EMS-backend/internal/model"
	"github.com/skulk0156/EMS-backend/internal/repository"
	bizerrors "github.com/skulk0156/EMS-backend/pkg/errors"
	"github.com/skulk0156/EMS-backend/storage/database"
	"github.com/skulk0156/EMS-backend/utils"
)

// ProjectStore 项目存储接口
type ProjectStore interface {
	Create(ctx context.Context, project *model.Project) error
	GetByID(ctx context.Context, id int64) (*model.Project, error)
	List(ctx context.Context, q model.ListProjectsQuery) ([]model.Project, int64, error)
	StatusSummary(ctx context.Context) (*model.ProjectStatusSummary, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type ProjectService struct {
	store ProjectStore
}

var (
	projectService *ProjectService
	projectOnce    sync.Once
)

func Project() *ProjectService {
	projectOnce.Do(func() {
		projectService = NewProjectService(repository.NewProjectRepo(database.DB()))
	})

	return projectService
}

func NewProjectService(store ProjectStore) *ProjectService {
	return &ProjectService{store: store}
}

func (s *ProjectService) Create(ctx context.Context, req model.CreateProjectRequest) (*model.Project, error) {
	project := &model.Project{
		Name:        req.Name,
		Description: req.Description,
		Status:      model.ProjectStatusPlanned,
		Priority:    "medium",
		TeamID:      req.TeamID,
	}

	if req.Status != "" {
		project.Status = model.ProjectStatus(req.Status)
	}
	if req.Priority != "" {
		project.Priority = req.Priority
	}
	if d := parseDatePtr(req.StartDate); d != nil {
		project.StartDate = d
	}
	if d := parseDatePtr(req.EndDate); d != nil {
		project.EndDate = d
	}

	if err := s.store.Create(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *ProjectService) Get(ctx context.Context, id int64) (*model.Project, error) {
	project, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bizerrors.ProjectNotFound
		}
		return nil, err
	}
	return project, nil
}

// List 分页返回项目，limit 缺省 20，上限 100。
func (s *ProjectService) List(ctx context.Context, q model.ListProjectsQuery) (*model.ProjectPage, error) {
	if q.Limit <= 0 {
		q.Limit = 20
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
	if q.Page <= 0 {
		q.Page = 1
	}

	projects, total, err := s.store.List(ctx, q)
	if err != nil {
		return nil, err
	}

	return &model.ProjectPage{
		Projects: projects,
		Total:    total,
		Page:     q.Page,
		Limit:    q.Limit,
	}, nil
}

func (s *ProjectService) Summary(ctx context.Context) (*model.ProjectStatusSummary, error) {
	return s.store.StatusSummary(ctx)
}

func (s *ProjectService) Update(ctx context.Context, id int64, req model.UpdateProjectRequest) (*model.Project, error) {
	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if req.Priority != "" {
		updates["priority"] = req.Priority
	}
	if req.TeamID != nil {
		updates["team_id"] = req.TeamID
	}
	if d := parseDatePtr(req.StartDate); d != nil {
		updates["start_date"] = d
	}
	if d := parseDatePtr(req.EndDate); d != nil {
		updates["end_date"] = d
	}

	if len(updates) > 0 {
		rows, err := s.store.Update(ctx, id, updates)
		if err != nil {
			return nil, err
		}
		if rows == 0 {
			return nil, bizerrors.ProjectNotFound
		}
	}

	return s.Get(ctx, id)
}

func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	rows, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return bizerrors.ProjectNotFound
	}
	return nil
}

func parseDatePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := utils.ParseDate(s)
	if err != nil {
		return nil
	}
	return &t
}
