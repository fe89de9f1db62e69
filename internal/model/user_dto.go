package model

// ========== 用户相关 DTO ==========

// RegisterUserRequest 注册请求（multipart 表单，头像文件单独处理）
type RegisterUserRequest struct {
	FirstName   string `form:"firstName" validate:"required,max=64"`
	LastName    string `form:"lastName" validate:"required,max=64"`
	Email       string `form:"email" validate:"required,email"`
	Password    string `form:"password" validate:"required,min=6,max=72"`
	EmployeeID  string `form:"employeeId" validate:"required,max=32"`
	Role        string `form:"role" validate:"required,oneof=employee hr manager admin"`
	Designation string `form:"designation" validate:"max=128"`
	Department  string `form:"department" validate:"max=128"`
	JoinDate    string `form:"joinDate" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateUserRequest 更新用户请求，零值字段不更新
type UpdateUserRequest struct {
	FirstName   string `json:"firstName" validate:"omitempty,max=64"`
	LastName    string `json:"lastName" validate:"omitempty,max=64"`
	Email       string `json:"email" validate:"omitempty,email"`
	Role        string `json:"role" validate:"omitempty,oneof=employee hr manager admin"`
	Designation string `json:"designation" validate:"omitempty,max=128"`
	Department  string `json:"department" validate:"omitempty,max=128"`
	TeamID      *int64 `json:"teamId"`
}
