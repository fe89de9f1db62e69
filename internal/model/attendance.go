package model

// AttendanceStatus 考勤状态枚举
type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "Present"
	AttendanceStatusAbsent  AttendanceStatus = "Absent"
	AttendanceStatusLeave   AttendanceStatus = "Leave"
)

// Attendance 考勤记录模型
// (employee_id, date) 上的复合唯一索引保证同一员工同一天只有一条记录，
// 并发打卡由数据库约束兜底，业务层不做先查后写。
type Attendance struct {
	BaseModel
	EmployeeID   string           `gorm:"type:varchar(32);not null;uniqueIndex:idx_attendances_employee_date" json:"employee_id"`
	Name         string           `gorm:"type:varchar(128)" json:"name"`
	Date         string           `gorm:"type:varchar(10);not null;uniqueIndex:idx_attendances_employee_date" json:"date"`
	PunchIn      string           `gorm:"type:varchar(16);not null" json:"punch_in"`
	PunchOut     *string          `gorm:"type:varchar(16)" json:"punch_out,omitempty"`
	WorkingHours *string          `gorm:"type:varchar(16)" json:"working_hours,omitempty"`
	Status       AttendanceStatus `gorm:"type:varchar(8);not null;default:'Present'" json:"status"`
}

// TableName 指定表名
func (Attendance) TableName() string {
	return "attendances"
}
