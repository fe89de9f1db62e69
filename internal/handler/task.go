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

// CreateTask 创建任务
// POST /api/tasks
func CreateTask(ctx context.Context, c *app.RequestContext) {
	var req model.CreateTaskRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(ctx, c, "invalid request body")
		return
	}

	if details := utils.ValidateStruct(req); details != nil {
		response.ErrorWithDetails(ctx, c, bizerrors.MissingRequiredFields, details)
		return
	}

	task, err := service.Task().Create(ctx, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Created(ctx, c, task)
}

// ListTasks 列出任务，支持按指派人/项目/状态过滤
// GET /api/tasks
func ListTasks(ctx context.Context, c *app.RequestContext) {
	var q model.ListTasksQuery
	if err := c.BindQuery(&q); err != nil {
		response.BadRequest(ctx, c, "invalid query parameters")
		return
	}

	tasks, err := service.Task().List(ctx, q)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, tasks)
}

// GetTask 查询任务
// GET /api/tasks/:id
func GetTask(ctx context.Context, c *app.RequestContext) {
	id, ok := paramID(ctx, c)
	if !ok {
		return
	}

	task, err := service.Task().Get(ctx, id)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, task)
}

// UpdateTask 更新任务（含进度流转）
// PUT /api/tasks/:id
func UpdateTask(ctx context.Context, c *app.RequestContext) {
	id, ok := paramID(ctx, c)
	if !ok {
		return
	}

	var req model.UpdateTaskRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(ctx, c, "invalid request body")
		return
	}

	if details := utils.ValidateStruct(req); details != nil {
		response.ErrorWithDetails(ctx, c, bizerrors.MissingRequiredFields, details)
		return
	}

	task, err := service.Task().Update(ctx, id, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, task)
}

// DeleteTask 删除任务
// DELETE /api/tasks/:id
func DeleteTask(ctx context.Context, c *app.RequestContext) {
	id, ok := paramID(ctx, c)
	if !ok {
		return
	}

	if err := service.Task().Delete(ctx, id); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, map[string]interface{}{"deleted": true})
}
