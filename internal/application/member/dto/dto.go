package dto

import (
	"time"

	"gestiontickets/internal/domain/member"
)

type MemberDTO struct {
	ID         uint      `json:"id"`
	Surname    string    `json:"surname"`
	GivenNames string    `json:"given_names"`
	NationalID string    `json:"national_id"`
	BirthDate  string    `json:"birth_date"`
	PhotoURL   string    `json:"photo_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ToMemberDTO(m *member.Member, photoURL string) *MemberDTO {
	if m == nil {
		return nil
	}

	return &MemberDTO{
		ID:         m.ID(),
		Surname:    m.Surname(),
		GivenNames: m.GivenNames(),
		NationalID: m.NationalID(),
		BirthDate:  m.BirthDate().Format("2006-01-02"),
		PhotoURL:   photoURL,
		CreatedAt:  m.CreatedAt(),
		UpdatedAt:  m.UpdatedAt(),
	}
}
