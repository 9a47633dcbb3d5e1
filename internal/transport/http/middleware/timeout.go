package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"gdsc-member/internal/core/errcode"
	resp "gdsc-member/internal/transport/http/response"
)

// Timeout 给请求 context 加截止时间；超时且尚未写响应时返回 504
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Writer.Written() {
			resp.Abort(c, errcode.Timeout)
		}
	}
}
