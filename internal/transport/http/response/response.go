package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gdsc-member/internal/core/errcode"
)

// OK 200 + JSON 数据；data 为 nil 时只写状态码，不写 body
func OK(c *gin.Context, data any) {
	if data == nil {
		c.Status(http.StatusOK)
		return
	}
	c.JSON(http.StatusOK, data)
}

// Fail 统一错误出口：状态码取自错误码，body 为空。
// 非业务错误记到 c.Errors，供访问日志输出。
func Fail(c *gin.Context, err error) {
	code := errcode.Of(err)
	if code == errcode.InternalServerError {
		_ = c.Error(err)
	}
	Abort(c, code)
}

// Abort 中间件用：只写状态码
func Abort(c *gin.Context, code errcode.Code) {
	c.AbortWithStatus(code.Status)
}
