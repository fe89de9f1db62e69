package model

// ========== 看板相关 DTO ==========

// DashboardStats 员工看板统计
type DashboardStats struct {
	EmployeeID     string     `json:"employee_id"`
	TotalTasks     int64      `json:"total_tasks"`
	CompletedTasks int64      `json:"completed_tasks"`
	PendingTasks   int64      `json:"pending_tasks"`
	Performance    float64    `json:"performance"` // 完成率百分比
	TotalUsers     *int64     `json:"total_users,omitempty"` // 仅管理员可见
	Recent         []Activity `json:"recent_activities"`
}
