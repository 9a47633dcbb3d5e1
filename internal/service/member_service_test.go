package service

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gdsc-member/internal/core/errcode"
	"gdsc-member/internal/domain"
	"gdsc-member/internal/dto"
	"gdsc-member/internal/repo"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Save(ctx context.Context, mem *domain.Member) error {
	return m.Called(ctx, mem).Error(0)
}

func (m *mockRepo) FindByID(ctx context.Context, id int64) (domain.Member, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Member), args.Bool(1), args.Error(2)
}

func (m *mockRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) FindAll(ctx context.Context) ([]domain.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

func (m *mockRepo) DeleteByID(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ domain.MemberRepository = (*mockRepo)(nil)

func newSQLiteService(t *testing.T) *MemberService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&domain.Member{}))
	return NewMemberService(repo.NewMemberRepo(db, zap.NewNop()), zap.NewNop())
}

func TestMemberService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		r := new(mockRepo)
		svc := NewMemberService(r, zap.NewNop())
		r.On("ExistsByName", ctx, "test").Return(false, nil)
		r.On("Save", ctx, mock.MatchedBy(func(m *domain.Member) bool {
			return m.ID == 0 && m.Name == "test" && m.Email == "email"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Member).ID = 5
		}).Return(nil)

		id, err := svc.Create(ctx, dto.Of("test", "email"))

		require.NoError(t, err)
		assert.Equal(t, int64(5), id)
		r.AssertExpectations(t)
	})

	t.Run("duplicate name", func(t *testing.T) {
		r := new(mockRepo)
		svc := NewMemberService(r, zap.NewNop())
		r.On("ExistsByName", ctx, "test").Return(true, nil)
		before := testutil.ToFloat64(memberOps.WithLabelValues("create", errcode.UserAlreadyExist.Name))

		id, err := svc.Create(ctx, dto.Of("test", "email"))

		assert.ErrorIs(t, err, errcode.ErrUserAlreadyExist)
		assert.Zero(t, id)
		r.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		after := testutil.ToFloat64(memberOps.WithLabelValues("create", errcode.UserAlreadyExist.Name))
		assert.Equal(t, before+1, after)
	})

	t.Run("store failure is not typed", func(t *testing.T) {
		r := new(mockRepo)
		svc := NewMemberService(r, zap.NewNop())
		boom := errors.New("db down")
		r.On("ExistsByName", ctx, "test").Return(false, boom)

		_, err := svc.Create(ctx, dto.Of("test", "email"))

		assert.ErrorIs(t, err, boom)
		assert.Equal(t, errcode.InternalServerError, errcode.Of(err))
	})
}

func TestMemberService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites name and email", func(t *testing.T) {
		r := new(mockRepo)
		svc := NewMemberService(r, zap.NewNop())
		r.On("FindByID", ctx, int64(1)).Return(domain.Member{ID: 1, Name: "test", Email: "email"}, true, nil)
		r.On("Save", ctx, &domain.Member{ID: 1, Name: "test2", Email: "email2"}).Return(nil)

		require.NoError(t, svc.Update(ctx, 1, dto.Of("test2", "email2")))
		r.AssertExpectations(t)
		r.AssertNotCalled(t, "ExistsByName", mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		r := new(mockRepo)
		svc := NewMemberService(r, zap.NewNop())
		r.On("FindByID", ctx, int64(9)).Return(domain.Member{}, false, nil)

		err := svc.Update(ctx, 9, dto.Of("test2", "email2"))

		assert.ErrorIs(t, err, errcode.ErrUserNotFound)
		r.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestMemberService_FindOne(t *testing.T) {
	ctx := context.Background()
	r := new(mockRepo)
	svc := NewMemberService(r, zap.NewNop())
	r.On("FindByID", ctx, int64(1)).Return(domain.Member{ID: 1, Name: "test", Email: "email"}, true, nil)
	r.On("FindByID", ctx, int64(2)).Return(domain.Member{}, false, nil)

	got, err := svc.FindOne(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, dto.Of("test", "email"), got)

	_, err = svc.FindOne(ctx, 2)
	assert.ErrorIs(t, err, errcode.ErrUserNotFound)

	got, ok, err := svc.FindOneOptional(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "test", got.Name)

	_, ok, err = svc.FindOneOptional(ctx, 2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemberService_FindAll(t *testing.T) {
	ctx := context.Background()

	t.Run("empty is not nil", func(t *testing.T) {
		r := new(mockRepo)
		r.On("FindAll", ctx).Return([]domain.Member{}, nil)

		got, err := NewMemberService(r, zap.NewNop()).FindAll(ctx)

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("store failure", func(t *testing.T) {
		r := new(mockRepo)
		r.On("FindAll", ctx).Return(nil, errors.New("db down"))

		got, err := NewMemberService(r, zap.NewNop()).FindAll(ctx)

		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestMemberService_Delete(t *testing.T) {
	ctx := context.Background()
	r := new(mockRepo)
	r.On("DeleteByID", ctx, int64(3)).Return(nil)

	assert.NoError(t, NewMemberService(r, zap.NewNop()).Delete(ctx, 3))
	r.AssertExpectations(t)
}

func TestMemberService_SQLiteScenario(t *testing.T) {
	ctx := context.Background()
	svc := newSQLiteService(t)

	id1, err := svc.Create(ctx, dto.Of("test", "email"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), id1)
	id2, err := svc.Create(ctx, dto.Of("test2", "email"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), id2)

	_, err = svc.Create(ctx, dto.Of("test", "other"))
	assert.ErrorIs(t, err, errcode.ErrUserAlreadyExist)

	all, err := svc.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []dto.Member{dto.Of("test", "email"), dto.Of("test2", "email")}, all)

	// 更新为已存在的名字也允许
	require.NoError(t, svc.Update(ctx, id1, dto.Of("test2", "email2")))
	got, err := svc.FindOne(ctx, id1)
	require.NoError(t, err)
	assert.Equal(t, dto.Of("test2", "email2"), got)

	assert.ErrorIs(t, svc.Update(ctx, 99, dto.Of("x", "y")), errcode.ErrUserNotFound)
	all, err = svc.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, svc.Delete(ctx, id2))
	_, err = svc.FindOne(ctx, id2)
	assert.ErrorIs(t, err, errcode.ErrUserNotFound)
	assert.NoError(t, svc.Delete(ctx, id2))
}
