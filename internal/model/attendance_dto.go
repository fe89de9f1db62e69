package model

// ========== 考勤相关 DTO ==========

// PunchInRequest 上班打卡请求体。date 与 punch_in 由调用方提供，
// 时刻字符串原样保存，不做格式校验。
type PunchInRequest struct {
	EmployeeID string `json:"employeeId" validate:"required,max=32"`
	Name       string `json:"name" validate:"max=128"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	PunchIn    string `json:"punch_in" validate:"required,max=32"`
}

// PunchOutRequest 下班打卡请求体。punch_out 与 workingHours 均为
// 调用方提供的字符串，服务端不计算工时。
type PunchOutRequest struct {
	EmployeeID   string `json:"employeeId" validate:"required,max=32"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	PunchOut     string `json:"punch_out" validate:"required,max=32"`
	WorkingHours string `json:"workingHours" validate:"max=32"`
}

// ListAttendanceQuery 考勤列表查询参数
type ListAttendanceQuery struct {
	EmployeeID string `query:"employeeId"`
	StartDate  string `query:"startDate"`
	EndDate    string `query:"endDate"`
	Page       int    `query:"page"`
	Limit      int    `query:"limit"`
}
