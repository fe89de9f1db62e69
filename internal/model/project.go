package model

import "time"

// ProjectStatus 项目状态枚举
type ProjectStatus string

const (
	ProjectStatusPlanned   ProjectStatus = "planned"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on-hold"
	ProjectStatusCompleted ProjectStatus = "completed"
)

// Project 项目模型
type Project struct {
	BaseModel
	Name        string        `gorm:"type:varchar(128);not null" json:"name"`
	Description string        `gorm:"type:text" json:"description"`
	Status      ProjectStatus `gorm:"type:varchar(16);not null;default:'planned';index" json:"status"`
	Priority    string        `gorm:"type:varchar(16);not null;default:'medium'" json:"priority"`
	TeamID      *int64        `gorm:"index" json:"team_id,omitempty"`
	StartDate   *time.Time    `gorm:"type:date" json:"start_date,omitempty"`
	EndDate     *time.Time    `gorm:"type:date" json:"end_date,omitempty"`
}

// TableName 指定表名
func (Project) TableName() string {
	return "projects"
}
