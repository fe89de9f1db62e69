package model

import "time"

// TaskStatus 任务状态枚举
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusDone       TaskStatus = "done"
)

// Task 任务模型
type Task struct {
	BaseModel
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Status      TaskStatus `gorm:"type:varchar(16);not null;default:'todo';index:idx_tasks_assignee_status,priority:2" json:"status"`
	Priority    string     `gorm:"type:varchar(16);not null;default:'medium'" json:"priority"`
	ProjectID   *int64     `gorm:"index" json:"project_id,omitempty"`
	AssigneeID  *int64     `gorm:"index:idx_tasks_assignee_status,priority:1" json:"assignee_id,omitempty"`
	DueDate     *time.Time `gorm:"type:date" json:"due_date,omitempty"`
}

// TableName 指定表名
func (Task) TableName() string {
	return "tasks"
}
