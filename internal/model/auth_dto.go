package model

// ========== 认证相关 DTO ==========

// LoginRequest 登录请求体
type LoginRequest struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	Password   string `json:"password" validate:"required"`
	Role       string `json:"role" validate:"required,oneof=employee hr manager admin"`
}

// RefreshTokenRequest 刷新令牌请求体
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UserSnapshot 认证后返回的用户概览
type UserSnapshot struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	EmployeeID   string `json:"employee_id"`
	Role         string `json:"role"`
	Designation  string `json:"designation"`
	Department   string `json:"department"`
	ProfileImage string `json:"profile_image"`
}

// LoginResponseData 登录响应数据
type LoginResponseData struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"`
	User         UserSnapshot `json:"user"`
}

// Snapshot 从用户模型构造概览
func (u *User) Snapshot() UserSnapshot {
	return UserSnapshot{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		EmployeeID:   u.EmployeeID,
		Role:         string(u.Role),
		Designation:  u.Designation,
		Department:   u.Department,
		ProfileImage: u.ProfileImage,
	}
}
