package model

import "time"

// Role 用户角色枚举
type Role string

const (
	RoleEmployee Role = "employee"
	RoleHR       Role = "hr"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

// ValidRole 判断角色是否合法
func ValidRole(r string) bool {
	switch Role(r) {
	case RoleEmployee, RoleHR, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// User 员工账号模型
type User struct {
	BaseModel
	FirstName    string     `gorm:"type:varchar(64);not null" json:"first_name"`
	LastName     string     `gorm:"type:varchar(64);not null" json:"last_name"`
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Password     string     `gorm:"type:varchar(128);not null" json:"-"`
	EmployeeID   string     `gorm:"type:varchar(32);not null;uniqueIndex" json:"employee_id"`
	Role         Role       `gorm:"type:varchar(16);not null;default:'employee'" json:"role"`
	Designation  string     `gorm:"type:varchar(128)" json:"designation"`
	Department   string     `gorm:"type:varchar(128)" json:"department"`
	ProfileImage string     `gorm:"type:varchar(255)" json:"profile_image"`
	TeamID       *int64     `gorm:"index" json:"team_id,omitempty"`
	JoinDate     *time.Time `gorm:"type:date" json:"join_date,omitempty"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

// FullName 拼接展示用姓名
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
