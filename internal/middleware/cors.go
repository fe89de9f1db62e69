package middleware

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/skulk0156/EMS-backend/config"
)

// CORSMiddleware 按 CORS_ALLOWED_ORIGINS 白名单放行跨域请求。
// 白名单为空时回显任意来源，方便本地联调前端看板。
func CORSMiddleware() app.HandlerFunc {
	allowed := map[string]bool{}
	for _, origin := range config.Cfg.CORSAllowedOrigins {
		allowed[origin] = true
	}

	return func(ctx context.Context, c *app.RequestContext) {
		origin := string(c.Request.Header.Get("Origin"))

		switch {
		case origin == "":
			c.Header("Access-Control-Allow-Origin", "*")
		case len(allowed) == 0 || allowed[origin]:
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
		default:
			// 不在白名单内的来源不下发 CORS 头，浏览器自行拦截
			c.Next(ctx)
			return
		}

		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization, X-Requested-With")
		c.Header("Access-Control-Expose-Headers", "Content-Length")
		c.Header("Access-Control-Max-Age", "86400")

		// OPTIONS 预检直接返回
		if string(c.Method()) == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next(ctx)
	}
}
