package response

import (
	"context"
	"errors"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"

	bizerrors "github.com/skulk0156/EMS-backend/pkg/errors"
)

// SuccessResponse 统一成功响应结构。
type SuccessResponse struct {
	Data interface{} `json:"data"`
}

// ErrorResponse 统一错误响应结构。
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Success 返回 200 及数据。
func Success(ctx context.Context, c *app.RequestContext, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{Data: data})
}

// Created 返回 201，用于资源创建成功。
func Created(ctx context.Context, c *app.RequestContext, data interface{}) {
	c.JSON(http.StatusCreated, SuccessResponse{Data: data})
}

// Error 将业务错误映射为对应的 HTTP 状态码并返回统一结构。
func Error(ctx context.Context, c *app.RequestContext, err error) {
	var def bizerrors.Definition
	if !errors.As(err, &def) {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: "Internal server error",
		}})
		return
	}

	c.JSON(errorToHTTPStatus(def.Code), ErrorResponse{Error: ErrorDetail{
		Code:    def.Code,
		Message: def.Message,
	}})
}

// ErrorWithDetails 在统一错误结构中附带字段级明细，多用于参数校验。
func ErrorWithDetails(ctx context.Context, c *app.RequestContext, def bizerrors.Definition, details interface{}) {
	c.JSON(errorToHTTPStatus(def.Code), ErrorResponse{Error: ErrorDetail{
		Code:    def.Code,
		Message: def.Message,
		Details: details,
	}})
}

// BadRequest 返回 400 及给定错误信息，用于请求体解析失败等场景。
func BadRequest(ctx context.Context, c *app.RequestContext, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: ErrorDetail{
		Code:    "INVALID_REQUEST",
		Message: message,
	}})
}

func errorToHTTPStatus(code string) int {
	switch code {
	case bizerrors.AttendanceAlreadyMarked.Code,
		bizerrors.EmailAlreadyExists.Code,
		bizerrors.EmployeeIDAlreadyExists.Code,
		bizerrors.MissingRequiredFields.Code:
		return http.StatusBadRequest
	case bizerrors.InvalidCredentials.Code,
		bizerrors.Unauthorized.Code:
		return http.StatusUnauthorized
	case bizerrors.Forbidden.Code:
		return http.StatusForbidden
	case bizerrors.InvalidEmployee.Code,
		bizerrors.UserNotFound.Code,
		bizerrors.AttendanceNotFound.Code,
		bizerrors.TeamNotFound.Code,
		bizerrors.ProjectNotFound.Code,
		bizerrors.TaskNotFound.Code:
		return http.StatusNotFound
	case bizerrors.TooManyRequests.Code:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
