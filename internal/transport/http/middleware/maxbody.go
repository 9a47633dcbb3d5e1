package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gdsc-member/internal/core/errcode"
	resp "gdsc-member/internal/transport/http/response"
)

// MaxBodyBytes 声明长度超限直接 413；未声明长度的读超限由绑定阶段报错
func MaxBodyBytes(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > n {
			resp.Abort(c, errcode.RequestTooLarge)
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
	}
}
