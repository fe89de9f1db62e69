package service

import (
	"context"
	"errors"
	"sync"

	"gorm.io/gorm"

	"github.com/skulk0156/EMS-backend/internal/model"
	"github.com/skulk0156/EMS-backend/internal/repository"
	bizerrors "github.com/skulk0156/EMS-backend/pkg/errors"
	"github.com/skulk0156/EMS-backend/pkg/token"
	"github.com/skulk0156/EMS-backend/storage/database"
	"github.com/skulk0156/EMS-backend/utils"
)

// AuthUserStore 认证所需的用户查询接口
type AuthUserStore interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// TokenIssuer 令牌签发函数，测试时可替换
type TokenIssuer func(userID int64, role string) (accessToken, refreshToken string, expiresIn int, err error)

type AuthService struct {
	store AuthUserStore
	issue TokenIssuer
}

var (
	authService *AuthService
	authOnce    sync.Once
)

func Auth() *AuthService {
	authOnce.Do(func() {
		authService = NewAuthService(
			repository.NewUserRepo(database.DB()),
			token.GenerateTokenPair,
		)
	})

	return authService
}

func NewAuthService(store AuthUserStore, issue TokenIssuer) *AuthService {
	return &AuthService{store: store, issue: issue}
}

// Login 按员工编号 + 角色定位账号，bcrypt 核对密码后签发令牌对。
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponseData, error) {
	user, err := s.store.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bizerrors.InvalidEmployee
		}
		return nil, err
	}

	if string(user.Role) != req.Role {
		return nil, bizerrors.InvalidEmployee
	}

	if !utils.CheckPassword(user.Password, req.Password) {
		return nil, bizerrors.InvalidCredentials
	}

	accessToken, refreshToken, expiresIn, err := s.issue(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &model.LoginResponseData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
		User:         user.Snapshot(),
	}, nil
}

// Refresh 校验 refresh token 并签发新的令牌对。
func (s *AuthService) Refresh(ctx context.Context, req model.RefreshTokenRequest) (*model.LoginResponseData, error) {
	userID, _, err := token.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, bizerrors.Unauthorized
	}

	user, err := s.store.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bizerrors.Unauthorized
		}
		return nil, err
	}

	accessToken, refreshToken, expiresIn, err := s.issue(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &model.LoginResponseData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
		User:         user.Snapshot(),
	}, nil
}
