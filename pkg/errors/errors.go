package errors

import "errors"

func (d Definition) Error() string {
	return d.Message
}

// Definition 表示业务错误码及默认信息。
type Definition struct {
	Code    string
	Message string
}

// 认证相关错误。
var (
	InvalidCredentials = Definition{Code: "INVALID_CREDENTIALS", Message: "Invalid password"}
	InvalidEmployee    = Definition{Code: "INVALID_EMPLOYEE_OR_ROLE", Message: "Invalid employee ID or role"}
	Unauthorized       = Definition{Code: "UNAUTHORIZED", Message: "Unauthorized"}
	Forbidden          = Definition{Code: "FORBIDDEN", Message: "You are not authorized to access this resource"}
	TooManyRequests    = Definition{Code: "TOO_MANY_REQUESTS", Message: "Too many requests"}
)

// 用户模块错误。
var (
	UserNotFound            = Definition{Code: "USER_NOT_FOUND", Message: "User not found"}
	EmailAlreadyExists      = Definition{Code: "EMAIL_ALREADY_EXISTS", Message: "Email already exists"}
	EmployeeIDAlreadyExists = Definition{Code: "EMPLOYEE_ID_ALREADY_EXISTS", Message: "Employee ID already exists"}
	MissingRequiredFields   = Definition{Code: "MISSING_REQUIRED_FIELDS", Message: "Missing required fields"}
)

// 考勤模块错误。
var (
	AttendanceAlreadyMarked = Definition{Code: "ATTENDANCE_ALREADY_MARKED", Message: "Attendance already marked"}
	AttendanceNotFound      = Definition{Code: "ATTENDANCE_NOT_FOUND", Message: "No attendance found"}
)

// 团队与项目模块错误。
var (
	TeamNotFound    = Definition{Code: "TEAM_NOT_FOUND", Message: "Team not found"}
	ProjectNotFound = Definition{Code: "PROJECT_NOT_FOUND", Message: "Project not found"}
	TaskNotFound    = Definition{Code: "TASK_NOT_FOUND", Message: "Task not found"}
)

// Lookup 提供错误码查询能力。
var Lookup = map[string]Definition{
	InvalidCredentials.Code:      InvalidCredentials,
	InvalidEmployee.Code:         InvalidEmployee,
	Unauthorized.Code:            Unauthorized,
	Forbidden.Code:               Forbidden,
	TooManyRequests.Code:         TooManyRequests,
	UserNotFound.Code:            UserNotFound,
	EmailAlreadyExists.Code:      EmailAlreadyExists,
	EmployeeIDAlreadyExists.Code: EmployeeIDAlreadyExists,
	MissingRequiredFields.Code:   MissingRequiredFields,
	AttendanceAlreadyMarked.Code: AttendanceAlreadyMarked,
	AttendanceNotFound.Code:      AttendanceNotFound,
	TeamNotFound.Code:            TeamNotFound,
	ProjectNotFound.Code:         ProjectNotFound,
	TaskNotFound.Code:            TaskNotFound,
}

// Get 根据错误码返回 Definition，若不存在则返回空 Definition。
func Get(code string) Definition {
	if def, ok := Lookup[code]; ok {
		return def
	}
	return Definition{Code: code, Message: "Unexpected error"}
}

// token 包使用的哨兵错误。
var (
	ErrTokenGeneratorNotInitialized = errors.New("token generator not initialized")
	ErrUnexpectedSigningMethod      = errors.New("unexpected signing method")
	ErrInvalidToken                 = errors.New("invalid token")
	ErrInvalidTokenClaims           = errors.New("invalid token claims")
	ErrInvalidTokenType             = errors.New("invalid token type")
	ErrIdentityNotFound             = errors.New("identity not found in token claims")
)

// SkipMessageError 表示消费者应当直接 Ack 并跳过的消息（如重复投递）。
type SkipMessageError struct {
	Reason string
}

func (e *SkipMessageError) Error() string {
	return e.Reason
}
