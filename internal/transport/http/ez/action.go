// Package ez 一行注册 gin 动作：绑定入参 → 调用 → 统一出参/错误。
package ez

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"gdsc-member/internal/core/errcode"
	"gdsc-member/internal/transport/http/response"
)

// 绑定方式
type Binder string

const (
	BindJSON Binder = "json" // 从 JSON body 绑定
	BindNone Binder = "none" // 不绑定，自己从 c.Param 取
)

// Empty 作为出参时只返回 200，不写 body
type Empty struct{}

// Action I 入参，O 出参
type Action[I any, O any] struct {
	Method  string // GET / POST / PUT / DELETE
	Path    string // 例："/members/:id"
	Binder  Binder
	Handler func(c *gin.Context, in *I) (O, error)
}

func Register[I any, O any](g gin.IRoutes, a Action[I, O]) {
	h := func(c *gin.Context) {
		var in I
		var bindErr error
		if a.Binder == BindJSON {
			bindErr = c.ShouldBindJSON(&in)
		}
		if bindErr != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(bindErr, &tooLarge) {
				response.Fail(c, errcode.Wrap(errcode.RequestTooLarge, bindErr))
				return
			}
			response.Fail(c, errcode.InvalidRequest(bindErr))
			return
		}

		out, err := a.Handler(c, &in)
		if err != nil {
			response.Fail(c, err)
			return
		}
		if _, empty := any(out).(Empty); empty {
			response.OK(c, nil)
			return
		}
		response.OK(c, out)
	}

	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		g.GET(a.Path, h)
	case http.MethodPut:
		g.PUT(a.Path, h)
	case http.MethodDelete:
		g.DELETE(a.Path, h)
	default: // 默认 POST
		g.POST(a.Path, h)
	}
}

// ParamID 解析路径上的数字 ID，非法时返回 BAD_REQUEST
func ParamID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, errcode.InvalidRequest(err)
	}
	return id, nil
}
