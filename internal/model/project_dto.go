package model

// ========== 项目相关 DTO ==========

// CreateProjectRequest 创建项目请求体
type CreateProjectRequest struct {
	Name        string `json:"name" validate:"required,max=128"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"omitempty,oneof=planned active on-hold completed"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
	TeamID      *int64 `json:"teamId"`
	StartDate   string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateProjectRequest 更新项目请求体
type UpdateProjectRequest struct {
	Name        string `json:"name" validate:"omitempty,max=128"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"omitempty,oneof=planned active on-hold completed"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
	TeamID      *int64 `json:"teamId"`
	StartDate   string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
}

// ListProjectsQuery 项目列表过滤参数
type ListProjectsQuery struct {
	Search string `query:"search"`
	Status string `query:"status"`
	TeamID int64  `query:"teamId"`
	From   string `query:"from"`
	To     string `query:"to"`
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
}

// ProjectStatusSummary 项目状态汇总
type ProjectStatusSummary struct {
	Planned   int64 `json:"planned"`
	Active    int64 `json:"active"`
	OnHold    int64 `json:"on_hold"`
	Completed int64 `json:"completed"`
}

// ProjectPage 分页结果
type ProjectPage struct {
	Projects []Project `json:"projects"`
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
}
