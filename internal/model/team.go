package model

// Team 团队模型
type Team struct {
	BaseModel
	Name        string `gorm:"type:varchar(128);not null;uniqueIndex" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	LeadID      *int64 `gorm:"index" json:"lead_id,omitempty"`
}

// TableName 指定表名
func (Team) TableName() string {
	return "teams"
}
