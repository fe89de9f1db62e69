package model

import "time"

// Activity 活动流水模型，由 worker 从消息队列落库
type Activity struct {
	BaseModel
	MessageID  int64     `gorm:"not null;uniqueIndex" json:"message_id"`
	EmployeeID string    `gorm:"type:varchar(32);not null;index" json:"employee_id"`
	Action     string    `gorm:"type:varchar(64);not null" json:"action"`
	Entity     string    `gorm:"type:varchar(32);not null" json:"entity"`
	EntityID   int64     `json:"entity_id"`
	Detail     string    `gorm:"type:text" json:"detail"`
	OccurredAt time.Time `gorm:"type:timestamptz;not null;index" json:"occurred_at"`
}

// TableName 指定表名
func (Activity) TableName() string {
	return "activities"
}
