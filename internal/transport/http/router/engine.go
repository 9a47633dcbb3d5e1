package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"gdsc-member/internal/core/config"
	"gdsc-member/internal/core/server"
	mdw "gdsc-member/internal/transport/http/middleware"
)

func baseEngine(l *zap.Logger, lim config.Limits) *gin.Engine {
	r := server.NewRouter(l)

	chain := []gin.HandlerFunc{
		mdw.RequestID(),
		mdw.AccessLog(l),
		mdw.Metrics(),
	}
	// 0 表示不启用对应保护
	if lim.RPS > 0 {
		chain = append(chain, mdw.RateLimit(rate.Limit(lim.RPS), max(1, lim.Burst)))
	}
	if lim.PerIPRPS > 0 {
		chain = append(chain, mdw.RateLimitPerIP(rate.Limit(lim.PerIPRPS), max(1, lim.PerIPBurst)))
	}
	if lim.RequestTimeout > 0 {
		chain = append(chain, mdw.Timeout(time.Duration(lim.RequestTimeout)*time.Second))
	}
	if lim.MaxConcurrent > 0 {
		chain = append(chain, mdw.ConcurrencyLimit(lim.MaxConcurrent))
	}
	if lim.MaxBodyBytes > 0 {
		chain = append(chain, mdw.MaxBodyBytes(lim.MaxBodyBytes))
	}
	r.Use(chain...)

	// 健康检查
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	return r
}

// NewAPIEngine 公共端，路由挂在根路径
func NewAPIEngine(l *zap.Logger, lim config.Limits, reg *Registry) *gin.Engine {
	r := baseEngine(l, lim)
	reg.MountAllAPI(&r.RouterGroup)
	return r
}

// NewAdminEngine 管理端：/admin/v1 + /metrics
func NewAdminEngine(l *zap.Logger, lim config.Limits, reg *Registry) *gin.Engine {
	r := baseEngine(l, lim)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	reg.MountAllAdmin(r.Group("/admin/v1"))
	return r
}
