// Package errcode holds the closed set of response codes the service can
// report and the typed error that carries one of them.
package errcode

import (
	"context"
	"errors"
	"net/http"
)

// Code 一个响应码：名称 / HTTP 状态 / 是否成功 / 默认提示
type Code struct {
	Name    string
	Status  int
	Success bool
	Message string
}

var (
	BadRequest          = Code{"BAD_REQUEST", http.StatusBadRequest, false, "invalid request"}
	Unauthorized        = Code{"UNAUTHORIZED", http.StatusUnauthorized, false, "unauthenticated user"}
	Forbidden           = Code{"FORBIDDEN", http.StatusForbidden, false, "permission denied"}
	UserNotFound        = Code{"USER_NOT_FOUND", http.StatusNotFound, false, "member not found"}
	MethodNotAllowed    = Code{"METHOD_NOT_ALLOWED", http.StatusMethodNotAllowed, false, "method not allowed"}
	UserAlreadyExist    = Code{"USER_ALREADY_EXIST", http.StatusConflict, false, "member already exists"}
	RequestTooLarge     = Code{"REQUEST_TOO_LARGE", http.StatusRequestEntityTooLarge, false, "request body too large"}
	TooManyRequests     = Code{"TOO_MANY_REQUESTS", http.StatusTooManyRequests, false, "too many requests"}
	InternalServerError = Code{"INTERNAL_SERVER_ERROR", http.StatusInternalServerError, false, "internal server error"}
	ServerBusy          = Code{"SERVER_BUSY", http.StatusServiceUnavailable, false, "server busy"}
	Timeout             = Code{"TIMEOUT", http.StatusGatewayTimeout, false, "timeout"}

	UserReadSuccess   = Code{"USER_READ_SUCCESS", http.StatusOK, true, "member read"}
	UserUpdateSuccess = Code{"USER_UPDATE_SUCCESS", http.StatusOK, true, "member updated"}
	UserCreateSuccess = Code{"USER_CREATE_SUCCESS", http.StatusCreated, true, "member created"}
)

// All 按名称集中管理全部 code
var All = map[string]Code{}

func init() {
	for _, c := range []Code{
		BadRequest, Unauthorized, Forbidden, UserNotFound, MethodNotAllowed,
		UserAlreadyExist, RequestTooLarge, TooManyRequests, InternalServerError,
		ServerBusy, Timeout, UserReadSuccess, UserUpdateSuccess, UserCreateSuccess,
	} {
		All[c.Name] = c
	}
}

// Lookup returns the code registered under name.
func Lookup(name string) (Code, bool) {
	c, ok := All[name]
	return c, ok
}

// Error 统一错误对象
type Error struct {
	Code Code
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Code.Message + ": " + e.Err.Error()
	}
	return e.Code.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error carrying the same code name.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code.Name == e.Code.Name
}

var (
	ErrUserNotFound     = &Error{Code: UserNotFound}
	ErrUserAlreadyExist = &Error{Code: UserAlreadyExist}
)

func Wrap(c Code, err error) error   { return &Error{Code: c, Err: err} }
func InvalidRequest(err error) error { return Wrap(BadRequest, err) }

// Of resolves err to its code. A request deadline surfacing from the store
// is TIMEOUT; other untyped errors are internal errors.
func Of(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return Timeout
	}
	return InternalServerError
}
