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
	"github.com/skulk0156/EMS-backend/utils"
)

// UserStore 用户存储接口
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	ListByRole(ctx context.Context, role model.Role) ([]model.User, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type UserService struct {
	store UserStore
}

var (
	userService *UserService
	userOnce    sync.Once
)

func User() *UserService {
	userOnce.Do(func() {
		userService = NewUserService(repository.NewUserRepo(database.DB()))
	})

	return userService
}

func NewUserService(store UserStore) *UserService {
	return &UserService{store: store}
}

// Register 创建账号。邮箱与员工编号先行查重给出明确错误，
// 并发注册由唯一索引兜底，冲突统一按邮箱已存在处理。
func (s *UserService) Register(ctx context.Context, req model.RegisterUserRequest, profileImage string) (*model.User, error) {
	if _, err := s.store.GetByEmail(ctx, req.Email); err == nil {
		return nil, bizerrors.EmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if _, err := s.store.GetByEmployeeID(ctx, req.EmployeeID); err == nil {
		return nil, bizerrors.EmployeeIDAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Password:     hashed,
		EmployeeID:   req.EmployeeID,
		Role:         model.Role(req.Role),
		Designation:  req.Designation,
		Department:   req.Department,
		ProfileImage: profileImage,
	}

	if req.JoinDate != "" {
		joinDate, err := utils.ParseDate(req.JoinDate)
		if err == nil {
			user.JoinDate = &joinDate
		}
	}

	if err := s.store.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, bizerrors.EmailAlreadyExists
		}
		return nil, err
	}

	return user, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bizerrors.UserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.store.List(ctx)
}

// ListManagers 返回所有 manager 角色用户。
func (s *UserService) ListManagers(ctx context.Context) ([]model.User, error) {
	return s.store.ListByRole(ctx, model.RoleManager)
}

// Update 只更新请求中出现的非零值字段。
func (s *UserService) Update(ctx context.Context, id int64, req model.UpdateUserRequest) (*model.User, error) {
	updates := map[string]interface{}{}
	if req.FirstName != "" {
		updates["first_name"] = req.FirstName
	}
	if req.LastName != "" {
		updates["last_name"] = req.LastName
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Role != "" {
		updates["role"] = req.Role
	}
	if req.Designation != "" {
		updates["designation"] = req.Designation
	}
	if req.Department != "" {
		updates["department"] = req.Department
	}
	if req.TeamID != nil {
		updates["team_id"] = req.TeamID
	}

	if len(updates) > 0 {
		rows, err := s.store.Update(ctx, id, updates)
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, bizerrors.EmailAlreadyExists
			}
			return nil, err
		}
		if rows == 0 {
			return nil, bizerrors.UserNotFound
		}
	}

	return s.Get(ctx, id)
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	rows, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return bizerrors.UserNotFound
	}
	return nil
}
