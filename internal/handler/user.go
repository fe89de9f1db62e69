package handler

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"go.uber.org/zap"

	"github.com/skulk0156/EMS-backend/internal/model"
	"github.com/skulk0156/EMS-backend/internal/service"
	bizerrors "github.com/skulk0156/EMS-backend/pkg/errors"
	"github.com/skulk0156/EMS-backend/pkg/logger"
	"github.com/skulk0156/EMS-backend/pkg/response"
	"github.com/skulk0156/EMS-backend/utils"
)

// RegisterUser 注册新员工（multipart 表单，可携带头像）
// POST /api/users/register
func RegisterUser(ctx context.Context, c *app.RequestContext) {
	var req model.RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		response.BadRequest(ctx, c, "invalid form data")
		return
	}

	if details := utils.ValidateStruct(req); details != nil {
		response.ErrorWithDetails(ctx, c, bizerrors.MissingRequiredFields, details)
		return
	}

	var profileImage string
	if file, err := c.FormFile("profileImage"); err == nil && file != nil {
		path, err := utils.SaveProfileImage(c, file)
		if err != nil {
			logger.Logger.Warn("Failed to save profile image",
				zap.String("filename", file.Filename),
				zap.Error(err),
			)
			response.BadRequest(ctx, c, "failed to save profile image")
			return
		}
		profileImage = path
	}

	user, err := service.User().Register(ctx, req, profileImage)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Created(ctx, c, user.Snapshot())
}

// ListUsers 列出所有员工
// GET /api/users
func ListUsers(ctx context.Context, c *app.RequestContext) {
	users, err := service.User().List(ctx)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	snapshots := make([]model.UserSnapshot, 0, len(users))
	for i := range users {
		snapshots = append(snapshots, users[i].Snapshot())
	}

	response.Success(ctx, c, snapshots)
}

// ListManagers 列出所有 manager
// GET /api/users/managers
func ListManagers(ctx context.Context, c *app.RequestContext) {
	managers, err := service.User().ListManagers(ctx)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	snapshots := make([]model.UserSnapshot, 0, len(managers))
	for i := range managers {
		snapshots = append(snapshots, managers[i].Snapshot())
	}

	response.Success(ctx, c, snapshots)
}

// GetUser 查询单个员工
// GET /api/users/:id
func GetUser(ctx context.Context, c *app.RequestContext) {
	id, ok := paramID(ctx, c)
	if !ok {
		return
	}

	user, err := service.User().Get(ctx, id)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, user.Snapshot())
}

// UpdateUser 更新员工信息
// PUT /api/users/:id
func UpdateUser(ctx context.Context, c *app.RequestContext) {
	id, ok := paramID(ctx, c)
	if !ok {
		return
	}

	var req model.UpdateUserRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(ctx, c, "invalid request body")
		return
	}

	if details := utils.ValidateStruct(req); details != nil {
		response.ErrorWithDetails(ctx, c, bizerrors.MissingRequiredFields, details)
		return
	}

	user, err := service.User().Update(ctx, id, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, user.Snapshot())
}

// DeleteUser 删除员工
// DELETE /api/users/:id
func DeleteUser(ctx context.Context, c *app.RequestContext) {
	id, ok := paramID(ctx, c)
	if !ok {
		return
	}

	if err := service.User().Delete(ctx, id); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, map[string]interface{}{"deleted": true})
}

// paramID 解析路径参数 :id，非法时直接写 400 响应。
func paramID(ctx context.Context, c *app.RequestContext) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(ctx, c, "invalid id")
		return 0, false
	}
	return id, true
}
