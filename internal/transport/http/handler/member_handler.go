package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"gdsc-member/internal/dto"
	"gdsc-member/internal/transport/http/ez"
)

// MemberService handler 需要的服务能力
type MemberService interface {
	Create(ctx context.Context, in dto.Member) (int64, error)
	Update(ctx context.Context, id int64, in dto.Member) error
	FindOne(ctx context.Context, id int64) (dto.Member, error)
	FindAll(ctx context.Context) ([]dto.Member, error)
	Delete(ctx context.Context, id int64) error
}

type MemberHandler struct {
	svc MemberService
}

func NewMemberHandler(svc MemberService) *MemberHandler { return &MemberHandler{svc: svc} }

// MountAPI 公共接口：注册 / 修改 / 单个查询 / 全量查询
func (h *MemberHandler) MountAPI(g *gin.RouterGroup) {
	ez.Register(g, ez.Action[dto.Member, int64]{
		Method: http.MethodPost,
		Path:   "/members/new",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *dto.Member) (int64, error) {
			return h.svc.Create(c.Request.Context(), *in)
		},
	})

	ez.Register(g, ez.Action[dto.Member, ez.Empty]{
		Method: http.MethodPut,
		Path:   "/members/:id",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *dto.Member) (ez.Empty, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return ez.Empty{}, err
			}
			return ez.Empty{}, h.svc.Update(c.Request.Context(), id, *in)
		},
	})

	ez.Register(g, ez.Action[struct{}, dto.Member]{
		Method: http.MethodGet,
		Path:   "/members/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (dto.Member, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return dto.Member{}, err
			}
			return h.svc.FindOne(c.Request.Context(), id)
		},
	})

	ez.Register(g, ez.Action[struct{}, []dto.Member]{
		Method: http.MethodGet,
		Path:   "/members",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]dto.Member, error) {
			return h.svc.FindAll(c.Request.Context())
		},
	})
}

// MountAdmin 管理端：删除（幂等）
func (h *MemberHandler) MountAdmin(g *gin.RouterGroup) {
	ez.Register(g, ez.Action[struct{}, ez.Empty]{
		Method: http.MethodDelete,
		Path:   "/members/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (ez.Empty, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return ez.Empty{}, err
			}
			return ez.Empty{}, h.svc.Delete(c.Request.Context(), id)
		},
	})
}
