package model

// ActivityEventMessage 活动事件消息，由 API/调度器发布，worker 消费落库
type ActivityEventMessage struct {
	MessageID  int64  `json:"message_id"` // 消息唯一ID（snowflake），用于幂等性检查
	EmployeeID string `json:"employee_id"`
	Action     string `json:"action"`
	Entity     string `json:"entity"`
	EntityID   int64  `json:"entity_id"`
	Detail     string `json:"detail"`
	OccurredAt string `json:"occurred_at"` // RFC3339
}
