// Package dto holds the wire shapes exchanged with clients.
package dto

import "gdsc-member/internal/domain"

// Member 请求/响应共用的传输结构，不含 ID
type Member struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func Of(name, email string) Member { return Member{Name: name, Email: email} }

func FromMember(m domain.Member) Member { return Member{Name: m.Name, Email: m.Email} }

// FromMembers never returns nil so an empty table encodes as [].
func FromMembers(ms []domain.Member) []Member {
	out := make([]Member, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMember(m))
	}
	return out
}
