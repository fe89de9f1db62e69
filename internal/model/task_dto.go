package model

// ========== 任务相关 DTO ==========

// CreateTaskRequest 创建任务请求体
type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
	ProjectID   *int64 `json:"projectId"`
	AssigneeID  *int64 `json:"assigneeId"`
	DueDate     string `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateTaskRequest 更新任务请求体
type UpdateTaskRequest struct {
	Title       string `json:"title" validate:"omitempty,max=255"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"omitempty,oneof=todo in-progress done"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
	AssigneeID  *int64 `json:"assigneeId"`
	DueDate     string `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
}

// ListTasksQuery 任务列表过滤参数
type ListTasksQuery struct {
	AssigneeID int64  `query:"assigneeId"`
	ProjectID  int64  `query:"projectId"`
	Status     string `query:"status"`
	Page       int    `query:"page"`
	Limit      int    `query:"limit"`
}
