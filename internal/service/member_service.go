package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"gdsc-member/internal/core/errcode"
	"gdsc-member/internal/domain"
	"gdsc-member/internal/dto"
)

type MemberService struct {
	repo domain.MemberRepository
	log  *zap.Logger
}

func NewMemberService(r domain.MemberRepository, l *zap.Logger) *MemberService {
	return &MemberService{repo: r, log: l.Named("member_service")}
}

// Create 注册会员：同名已存在返回 USER_ALREADY_EXIST。
// 查重与插入不在同一事务里，并发同名请求可能都通过检查。
func (s *MemberService) Create(ctx context.Context, in dto.Member) (int64, error) {
	exists, err := s.repo.ExistsByName(ctx, in.Name)
	if err != nil {
		return 0, fmt.Errorf("check member name: %w", err)
	}
	if exists {
		observe("create", errcode.UserAlreadyExist)
		return 0, errcode.ErrUserAlreadyExist
	}

	m := domain.NewMember(in.Name, in.Email)
	if err := s.repo.Save(ctx, m); err != nil {
		return 0, fmt.Errorf("save member: %w", err)
	}
	observe("create", errcode.UserCreateSuccess)
	s.log.Info(errcode.UserCreateSuccess.Message, zap.Int64("id", m.ID), zap.String("name", m.Name))
	return m.ID, nil
}

// Update 覆盖 name / email；不做重名校验
func (s *MemberService) Update(ctx context.Context, id int64, in dto.Member) error {
	m, err := s.mustFind(ctx, "update", id)
	if err != nil {
		return err
	}
	m.Update(in.Name, in.Email)
	if err := s.repo.Save(ctx, &m); err != nil {
		return fmt.Errorf("save member %d: %w", id, err)
	}
	observe("update", errcode.UserUpdateSuccess)
	s.log.Info(errcode.UserUpdateSuccess.Message, zap.Int64("id", id))
	return nil
}

func (s *MemberService) FindOne(ctx context.Context, id int64) (dto.Member, error) {
	m, err := s.mustFind(ctx, "read", id)
	if err != nil {
		return dto.Member{}, err
	}
	observe("read", errcode.UserReadSuccess)
	return dto.FromMember(m), nil
}

// FindOneOptional 同 FindOne，但不存在时返回 ok=false 而非错误
func (s *MemberService) FindOneOptional(ctx context.Context, id int64) (dto.Member, bool, error) {
	m, ok, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dto.Member{}, false, fmt.Errorf("find member %d: %w", id, err)
	}
	if !ok {
		return dto.Member{}, false, nil
	}
	return dto.FromMember(m), true, nil
}

// FindAll 全量返回，无分页
func (s *MemberService) FindAll(ctx context.Context) ([]dto.Member, error) {
	ms, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return dto.FromMembers(ms), nil
}

// Delete 幂等
func (s *MemberService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete member %d: %w", id, err)
	}
	s.log.Info("member deleted", zap.Int64("id", id))
	return nil
}

func (s *MemberService) mustFind(ctx context.Context, op string, id int64) (domain.Member, error) {
	m, ok, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Member{}, fmt.Errorf("find member %d: %w", id, err)
	}
	if !ok {
		observe(op, errcode.UserNotFound)
		return domain.Member{}, errcode.ErrUserNotFound
	}
	return m, nil
}
