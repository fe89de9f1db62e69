package model

// ========== 团队相关 DTO ==========

// CreateTeamRequest 创建团队请求体
type CreateTeamRequest struct {
	Name        string  `json:"name" validate:"required,max=128"`
	Description string  `json:"description"`
	LeadID      *int64  `json:"leadId"`
	MemberIDs   []int64 `json:"memberIds"`
}

// UpdateTeamRequest 更新团队请求体
type UpdateTeamRequest struct {
	Name        string  `json:"name" validate:"omitempty,max=128"`
	Description string  `json:"description"`
	LeadID      *int64  `json:"leadId"`
	MemberIDs   []int64 `json:"memberIds"`
}

// TeamWithMembers 团队详情，含成员
type TeamWithMembers struct {
	Team
	Members []UserSnapshot `json:"members"`
}
