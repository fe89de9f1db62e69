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

// Login 员工登录
// POST /api/users/login
func Login(ctx context.Context, c *app.RequestContext) {
	var req model.LoginRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(ctx, c, "invalid request body")
		return
	}

	if details := utils.ValidateStruct(req); details != nil {
		response.ErrorWithDetails(ctx, c, bizerrors.MissingRequiredFields, details)
		return
	}

	data, err := service.Auth().Login(ctx, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, data)
}

// RefreshToken 刷新访问令牌
// POST /api/users/refresh
func RefreshToken(ctx context.Context, c *app.RequestContext) {
	var req model.RefreshTokenRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(ctx, c, "invalid request body")
		return
	}

	if details := utils.ValidateStruct(req); details != nil {
		response.ErrorWithDetails(ctx, c, bizerrors.MissingRequiredFields, details)
		return
	}

	data, err := service.Auth().Refresh(ctx, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, data)
}
