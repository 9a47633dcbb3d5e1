package repo

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"gdsc-member/internal/domain"
)

type MemberRepo struct {
	db  *gorm.DB
	log *zap.Logger
}

var _ domain.MemberRepository = (*MemberRepo)(nil)

func NewMemberRepo(db *gorm.DB, l *zap.Logger) *MemberRepo {
	return &MemberRepo{db: db, log: l.Named("member_repo")}
}

// Save 无 ID 时插入（回填 ID），有 ID 时整行更新
func (r *MemberRepo) Save(ctx context.Context, m *domain.Member) error {
	if m.ID == 0 {
		if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
			r.log.Error("insert member", zap.String("name", m.Name), zap.Error(err))
			return err
		}
		r.log.Debug("member inserted", zap.Int64("id", m.ID))
		return nil
	}
	// UPDATE 命中 0 行时 gorm 会改为插入：与并发删除交错时，被删的行按原 ID 重新写回
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		r.log.Error("update member", zap.Int64("id", m.ID), zap.Error(err))
		return err
	}
	return nil
}

func (r *MemberRepo) FindByID(ctx context.Context, id int64) (domain.Member, bool, error) {
	var m domain.Member
	err := r.db.WithContext(ctx).First(&m, "member_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Member{}, false, nil
	}
	if err != nil {
		r.log.Error("find member", zap.Int64("id", id), zap.Error(err))
		return domain.Member{}, false, err
	}
	return m, true, nil
}

func (r *MemberRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Member{}).Where("name = ?", name).Limit(1).Count(&n).Error
	if err != nil {
		r.log.Error("exists by name", zap.String("name", name), zap.Error(err))
		return false, err
	}
	return n > 0, nil
}

// FindAll 按主键升序返回全部会员（无分页）
func (r *MemberRepo) FindAll(ctx context.Context) ([]domain.Member, error) {
	var ms []domain.Member
	if err := r.db.WithContext(ctx).Order("member_id ASC").Find(&ms).Error; err != nil {
		r.log.Error("list members", zap.Error(err))
		return nil, err
	}
	return ms, nil
}

// DeleteByID 硬删除；行不存在不算错误
func (r *MemberRepo) DeleteByID(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Member{}, "member_id = ?", id)
	if res.Error != nil {
		r.log.Error("delete member", zap.Int64("id", id), zap.Error(res.Error))
		return res.Error
	}
	r.log.Debug("member delete", zap.Int64("id", id), zap.Int64("rows", res.RowsAffected))
	return nil
}
