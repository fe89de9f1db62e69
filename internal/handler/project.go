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

// CreateProject 创建项目
// POST /api/projects
func CreateProject(ctx context.Context, c *app.RequestContext) {
	var req model.CreateProjectRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(ctx, c, "invalid request body")
		return
	}

	if details := utils.ValidateStruct(req); details != nil {
		response.ErrorWithDetails(ctx, c, bizerrors.MissingRequiredFields, details)
		return
	}

	project, err := service.Project().Create(ctx, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Created(ctx, c, project)
}

// ListProjects 分页列出项目，支持搜索与过滤
// GET /api/projects
func ListProjects(ctx context.Context, c *app.RequestContext) {
	var q model.ListProjectsQuery
	if err := c.BindQuery(&q); err != nil {
		response.BadRequest(ctx, c, "invalid query parameters")
		return
	}

	page, err := service.Project().List(ctx, q)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, page)
}

// ProjectSummary 项目状态汇总
// GET /api/projects/summary
func ProjectSummary(ctx context.Context, c *app.RequestContext) {
	summary, err := service.Project().Summary(ctx)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, summary)
}

// GetProject 查询项目
// GET /api/projects/:id
func GetProject(ctx context.Context, c *app.RequestContext) {
	id, ok := paramID(ctx, c)
	if !ok {
		return
	}

	project, err := service.Project().Get(ctx, id)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, project)
}

// UpdateProject 更新项目
// PUT /api/projects/:id
func UpdateProject(ctx context.Context, c *app.RequestContext) {
	id, ok := paramID(ctx, c)
	if !ok {
		return
	}

	var req model.UpdateProjectRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(ctx, c, "invalid request body")
		return
	}

	if details := utils.ValidateStruct(req); details != nil {
		response.ErrorWithDetails(ctx, c, bizerrors.MissingRequiredFields, details)
		return
	}

	project, err := service.Project().Update(ctx, id, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, project)
}

// DeleteProject 删除项目
// DELETE /api/projects/:id
func DeleteProject(ctx context.Context, c *app.RequestContext) {
	id, ok := paramID(ctx, c)
	if !ok {
		return
	}

	if err := service.Project().Delete(ctx, id); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, map[string]interface{}{"deleted": true})
}
