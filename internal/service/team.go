package service

import (
	"context"
	"errors"
	"sync"

	"gorm.io/gorm"

	"github.com/skulk0156/EMS-backend/internal/model"
	"github.com/skulk0156/EMS-backend/internal/repository"
	bizerrors "github.com/skulk0156/EMS-backend/pkg/errors"
	"github.com/skulk0156/EMS-backend/storage/database"
)

// TeamStore 团队存储接口
type TeamStore interface {
	Create(ctx context.Context, team *model.Team) error
	GetByID(ctx context.Context, id int64) (*model.Team, error)
	List(ctx context.Context) ([]model.Team, error)
	ListVisible(ctx context.Context, userID int64) ([]model.Team, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// TeamMemberStore 团队成员维护接口
type TeamMemberStore interface {
	ListByTeam(ctx context.Context, teamID int64) ([]model.User, error)
	AssignTeam(ctx context.Context, userIDs []int64, teamID *int64) error
}

type TeamService struct {
	store   TeamStore
	members TeamMemberStore
}

var (
	teamService *TeamService
	teamOnce    sync.Once
)

func Team() *TeamService {
	teamOnce.Do(func() {
		db := database.DB()
		teamService = NewTeamService(repository.NewTeamRepo(db), repository.NewUserRepo(db))
	})

	return teamService
}

func NewTeamService(store TeamStore, members TeamMemberStore) *TeamService {
	return &TeamService{store: store, members: members}
}

func (s *TeamService) Create(ctx context.Context, req model.CreateTeamRequest) (*model.Team, error) {
	team := &model.Team{
		Name:        req.Name,
		Description: req.Description,
		LeadID:      req.LeadID,
	}

	if err := s.store.Create(ctx, team); err != nil {
		return nil, err
	}

	if len(req.MemberIDs) > 0 {
		if err := s.members.AssignTeam(ctx, req.MemberIDs, &team.ID); err != nil {
			return nil, err
		}
	}

	return team, nil
}

// Get 返回团队及其成员。
func (s *TeamService) Get(ctx context.Context, id int64) (*model.TeamWithMembers, error) {
	team, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bizerrors.TeamNotFound
		}
		return nil, err
	}

	users, err := s.members.ListByTeam(ctx, id)
	if err != nil {
		return nil, err
	}

	members := make([]model.UserSnapshot, 0, len(users))
	for i := range users {
		members = append(members, users[i].Snapshot())
	}

	return &model.TeamWithMembers{Team: *team, Members: members}, nil
}

// List 按请求者角色返回团队：admin/hr 看全部，其他人只看自己领导或所属的团队。
func (s *TeamService) List(ctx context.Context, requesterID int64, requesterRole model.Role) ([]model.Team, error) {
	if requesterRole == model.RoleAdmin || requesterRole == model.RoleHR {
		return s.store.List(ctx)
	}
	return s.store.ListVisible(ctx, requesterID)
}

func (s *TeamService) Update(ctx context.Context, id int64, req model.UpdateTeamRequest) (*model.TeamWithMembers, error) {
	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.LeadID != nil {
		updates["lead_id"] = req.LeadID
	}

	if len(updates) > 0 {
		rows, err := s.store.Update(ctx, id, updates)
		if err != nil {
			return nil, err
		}
		if rows == 0 {
			return nil, bizerrors.TeamNotFound
		}
	}

	if req.MemberIDs != nil {
		if err := s.members.AssignTeam(ctx, req.MemberIDs, &id); err != nil {
			return nil, err
		}
	}

	return s.Get(ctx, id)
}

func (s *TeamService) Delete(ctx context.Context, id int64) error {
	users, err := s.members.ListByTeam(ctx, id)
	if err != nil {
		return err
	}

	if len(users) > 0 {
		ids := make([]int64, 0, len(users))
		for i := range users {
			ids = append(ids, users[i].ID)
		}
		if err := s.members.AssignTeam(ctx, ids, nil); err != nil {
			return err
		}
	}

	rows, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return bizerrors.TeamNotFound
	}
	return nil
}
