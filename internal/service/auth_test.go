package service

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/skulk0156/EMS-backend/internal/model"
	bizerrors "github.com/skulk0156/EMS-backend/pkg/errors"
	"github.com/skulk0156/EMS-backend/utils"
)

type fakeUserLookup struct {
	byEmployeeID map[string]*model.User
	byID         map[int64]*model.User
}

func (f *fakeUserLookup) GetByEmployeeID(_ context.Context, employeeID string) (*model.User, error) {
	if u, ok := f.byEmployeeID[employeeID]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserLookup) GetByID(_ context.Context, id int64) (*model.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func staticIssuer(userID int64, role string) (string, string, int, error) {
	return "access-token", "refresh-token", 3600, nil
}

func newAuthFixture(t *testing.T) (*AuthService, *model.User) {
	t.Helper()

	hashed, err := utils.HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	user := &model.User{
		FirstName:  "Alice",
		LastName:   "Zhang",
		Email:      "alice@example.com",
		Password:   hashed,
		EmployeeID: "EMP001",
		Role:       model.RoleEmployee,
	}
	user.ID = 42

	store := &fakeUserLookup{
		byEmployeeID: map[string]*model.User{"EMP001": user},
		byID:         map[int64]*model.User{42: user},
	}
	return NewAuthService(store, staticIssuer), user
}

func TestLoginSuccess(t *testing.T) {
	svc, _ := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), model.LoginRequest{
		EmployeeID: "EMP001",
		Password:   "s3cret-password",
		Role:       "employee",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if resp.AccessToken != "access-token" || resp.RefreshToken != "refresh-token" {
		t.Errorf("unexpected tokens: %+v", resp)
	}
	if resp.ExpiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", resp.ExpiresIn)
	}
	if resp.User.EmployeeID != "EMP001" {
		t.Errorf("user snapshot employeeId = %q", resp.User.EmployeeID)
	}
}

func TestLoginUnknownEmployee(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), model.LoginRequest{
		EmployeeID: "EMP999",
		Password:   "s3cret-password",
		Role:       "employee",
	})
	if !errors.Is(err, bizerrors.InvalidEmployee) {
		t.Fatalf("error = %v, want InvalidEmployee", err)
	}
}

func TestLoginRoleMismatch(t *testing.T) {
	svc, _ := newAuthFixture(t)

	// 存在的员工但申报了错误角色，不能泄露账号存在性之外的信息
	_, err := svc.Login(context.Background(), model.LoginRequest{
		EmployeeID: "EMP001",
		Password:   "s3cret-password",
		Role:       "admin",
	})
	if !errors.Is(err, bizerrors.InvalidEmployee) {
		t.Fatalf("error = %v, want InvalidEmployee", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), model.LoginRequest{
		EmployeeID: "EMP001",
		Password:   "wrong-password",
		Role:       "employee",
	})
	if !errors.Is(err, bizerrors.InvalidCredentials) {
		t.Fatalf("error = %v, want InvalidCredentials", err)
	}
}

func TestRefreshWithGarbageToken(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Refresh(context.Background(), model.RefreshTokenRequest{RefreshToken: "not-a-jwt"})
	if !errors.Is(err, bizerrors.Unauthorized) {
		t.Fatalf("error = %v, want Unauthorized", err)
	}
}
