package domain

import "context"

// Member 会员实体；ID 由存储在首次保存时分配
type Member struct {
	ID    int64  `gorm:"column:member_id;primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"size:255" json:"name"`
	Email string `gorm:"size:255" json:"email"`
}

func (Member) TableName() string { return "member" }

// NewMember 构造尚未持久化的会员（ID 为 0）
func NewMember(name, email string) *Member {
	return &Member{Name: name, Email: email}
}

// Update 原地修改 name / email，ID 不变
func (m *Member) Update(name, email string) {
	m.Name = name
	m.Email = email
}

// MemberRepository 会员存储能力。FindByID 的 bool 表示是否找到。
type MemberRepository interface {
	Save(ctx context.Context, m *Member) error
	FindByID(ctx context.Context, id int64) (Member, bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	FindAll(ctx context.Context) ([]Member, error)
	DeleteByID(ctx context.Context, id int64) error
}
