package model

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel 员工、团队、项目等业务表共有的字段。
// 删除一律走软删除，考勤历史等数据要能追溯。
type BaseModel struct {
	ID        int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}
