package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"github.com/skulk0156/EMS-backend/internal/handler"
	"github.com/skulk0156/EMS-backend/internal/middleware"
	"github.com/skulk0156/EMS-backend/internal/model"
)

func Register(h *server.Hertz) {

	h.Use(middleware.RecoverMiddleware())
	h.Use(middleware.CORSMiddleware())
	h.Use(middleware.GeneralRateLimitMiddleware())

	api := h.Group("/api")

	// 用户与认证路由
	users := api.Group("/users")
	{
		// 公开接口，按 IP 限流防爆破
		users.POST("/login", middleware.AuthRateLimitMiddleware(), handler.Login)
		users.POST("/refresh", middleware.AuthRateLimitMiddleware(), handler.RefreshToken)

		authed := users.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			// 注册新员工仅限 HR/管理员
			authed.POST("/register",
				middleware.RequireRoles(model.RoleHR, model.RoleAdmin),
				handler.RegisterUser)

			authed.GET("", handler.ListUsers)
			authed.GET("/managers", handler.ListManagers)
			authed.GET("/:id", handler.GetUser)
			authed.PUT("/:id",
				middleware.RequireRoles(model.RoleHR, model.RoleAdmin),
				handler.UpdateUser)
			authed.DELETE("/:id",
				middleware.RequireRoles(model.RoleAdmin),
				handler.DeleteUser)
		}
	}

	// 考勤路由
	attendance := api.Group("/attendance")
	attendance.Use(middleware.AuthMiddleware())
	attendance.Use(middleware.PunchRateLimitMiddleware())
	{
		attendance.POST("", handler.PunchIn)
		attendance.PUT("/logout", handler.PunchOut)
		attendance.GET("", handler.ListAttendance)
	}

	// 团队路由
	teams := api.Group("/teams")
	teams.Use(middleware.AuthMiddleware())
	{
		teams.GET("", handler.ListTeams)
		teams.GET("/:id", handler.GetTeam)

		manage := teams.Group("", middleware.RequireRoles(model.RoleManager, model.RoleHR, model.RoleAdmin))
		{
			manage.POST("", handler.CreateTeam)
			manage.PUT("/:id", handler.UpdateTeam)
			manage.DELETE("/:id", handler.DeleteTeam)
		}
	}

	// 项目路由
	projects := api.Group("/projects")
	projects.Use(middleware.AuthMiddleware())
	{
		projects.GET("", handler.ListProjects)
		projects.GET("/summary", handler.ProjectSummary)
		projects.GET("/:id", handler.GetProject)

		manage := projects.Group("", middleware.RequireRoles(model.RoleManager, model.RoleAdmin))
		{
			manage.POST("", handler.CreateProject)
			manage.PUT("/:id", handler.UpdateProject)
			manage.DELETE("/:id", handler.DeleteProject)
		}
	}

	// 任务路由
	tasks := api.Group("/tasks")
	tasks.Use(middleware.AuthMiddleware())
	{
		tasks.GET("", handler.ListTasks)
		tasks.GET("/:id", handler.GetTask)
		tasks.PUT("/:id", handler.UpdateTask)

		manage := tasks.Group("", middleware.RequireRoles(model.RoleManager, model.RoleAdmin))
		{
			manage.POST("", handler.CreateTask)
			manage.DELETE("/:id", handler.DeleteTask)
		}
	}

	// 看板路由
	dashboard := api.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware())
	{
		dashboard.GET("/:employeeId", handler.GetDashboard)
	}
}
