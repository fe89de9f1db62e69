package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/skulk0156/EMS-backend/internal/middleware"
	"github.com/skulk0156/EMS-backend/internal/model"
	"github.com/skulk0156/EMS-backend/internal/service"
	bizerrors "github.com/skulk0156/EMS-backend/pkg/errors"
	"github.com/skulk0156/EMS-backend/pkg/response"
	"github.com/skulk0156/EMS-backend/utils"
)

// CreateTeam 创建团队
// POST /api/teams
func CreateTeam(ctx context.Context, c *app.RequestContext) {
	var req model.CreateTeamRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(ctx, c, "invalid request body")
		return
	}

	if details := utils.ValidateStruct(req); details != nil {
		response.ErrorWithDetails(ctx, c, bizerrors.MissingRequiredFields, details)
		return
	}

	team, err := service.Team().Create(ctx, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Created(ctx, c, team)
}

// ListTeams 列出请求者可见的团队
// GET /api/teams
func ListTeams(ctx context.Context, c *app.RequestContext) {
	userID, _ := middleware.GetUserID(ctx, c)
	role, _ := middleware.GetUserRole(ctx, c)

	teams, err := service.Team().List(ctx, userID, model.Role(role))
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, teams)
}

// GetTeam 查询团队详情（含成员）
// GET /api/teams/:id
func GetTeam(ctx context.Context, c *app.RequestContext) {
	id, ok := paramID(ctx, c)
	if !ok {
		return
	}

	team, err := service.Team().Get(ctx, id)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, team)
}

// UpdateTeam 更新团队
// PUT /api/teams/:id
func UpdateTeam(ctx context.Context, c *app.RequestContext) {
	id, ok := paramID(ctx, c)
	if !ok {
		return
	}

	var req model.UpdateTeamRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(ctx, c, "invalid request body")
		return
	}

	team, err := service.Team().Update(ctx, id, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, team)
}

// DeleteTeam 删除团队并释放成员
// DELETE /api/teams/:id
func DeleteTeam(ctx context.Context, c *app.RequestContext) {
	id, ok := paramID(ctx, c)
	if !ok {
		return
	}

	if err := service.Team().Delete(ctx, id); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, map[string]interface{}{"deleted": true})
}
