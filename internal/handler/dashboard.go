package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/skulk0156/EMS-backend/internal/middleware"
	"github.com/skulk0156/EMS-backend/internal/model"
	"github.com/skulk0156/EMS-backend/internal/service"
	"github.com/skulk0156/EMS-backend/pkg/response"
)

// GetDashboard 员工看板统计
// GET /api/dashboard/:employeeId
func GetDashboard(ctx context.Context, c *app.RequestContext) {
	employeeID := c.Param("employeeId")
	if employeeID == "" {
		response.BadRequest(ctx, c, "employeeId is required")
		return
	}

	role, _ := middleware.GetUserRole(ctx, c)

	stats, err := service.Dashboard().Stats(ctx, employeeID, model.Role(role))
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, stats)
}
