package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/skulk0156/EMS-backend/internal/model"
	"github.com/skulk0156/EMS-backend/internal/service"
	bizerrors "github.com/skulk0156/EMS-backend/pkg/errors"
	"github.com/skulk0156/EMS-backend/pkg/response"
	"github.com/skulk0156/EMS-backend/utils"
)

// PunchIn 上班打卡
// POST /api/attendance
func PunchIn(ctx context.Context, c *app.RequestContext) {
	var req model.PunchInRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(ctx, c, "invalid request body")
		return
	}

	if details := utils.ValidateStruct(req); details != nil {
		response.ErrorWithDetails(ctx, c, bizerrors.MissingRequiredFields, details)
		return
	}

	att, err := service.Attendance().PunchIn(ctx, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Created(ctx, c, att)
}

// PunchOut 下班打卡
// PUT /api/attendance/logout
func PunchOut(ctx context.Context, c *app.RequestContext) {
	var req model.PunchOutRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(ctx, c, "invalid request body")
		return
	}

	if details := utils.ValidateStruct(req); details != nil {
		response.ErrorWithDetails(ctx, c, bizerrors.MissingRequiredFields, details)
		return
	}

	att, err := service.Attendance().PunchOut(ctx, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, att)
}

// ListAttendance 查询考勤记录
// GET /api/attendance
func ListAttendance(ctx context.Context, c *app.RequestContext) {
	var q model.ListAttendanceQuery
	if err := c.BindQuery(&q); err != nil {
		response.BadRequest(ctx, c, "invalid query parameters")
		return
	}

	records, err := service.Attendance().ListAll(ctx, q)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, records)
}
