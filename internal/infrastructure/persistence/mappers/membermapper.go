package mappers

import (
	"time"

	"gorm.io/datatypes"

	"gestiontickets/internal/domain/member"
	"gestiontickets/internal/infrastructure/persistence/models"
)

// MemberMapper handles the conversion between Member domain entities and persistence models.
type MemberMapper interface {
	// ToModel converts a member domain entity to a persistence model.
	ToModel(m *member.Member) *models.MemberModel

	// ToDomain converts a member persistence model to a domain entity.
	ToDomain(model *models.MemberModel) (*member.Member, error)
}

// MemberMapperImpl is the concrete implementation of MemberMapper.
type MemberMapperImpl struct{}

// NewMemberMapper creates a new MemberMapper.
func NewMemberMapper() MemberMapper {
	return &MemberMapperImpl{}
}

func (mm *MemberMapperImpl) ToModel(m *member.Member) *models.MemberModel {
	return &models.MemberModel{
		ID:         m.ID(),
		Surname:    m.Surname(),
		GivenNames: m.GivenNames(),
		NationalID: m.NationalID(),
		BirthDate:  datatypes.Date(m.BirthDate()),
		PhotoKey:   m.PhotoKey(),
		Version:    m.Version(),
		CreatedAt:  m.CreatedAt().UnixMilli(),
		UpdatedAt:  m.UpdatedAt().UnixMilli(),
	}
}

func (mm *MemberMapperImpl) ToDomain(model *models.MemberModel) (*member.Member, error) {
	return member.ReconstructMember(
		model.ID,
		model.Surname,
		model.GivenNames,
		model.NationalID,
		time.Time(model.BirthDate),
		model.PhotoKey,
		model.Version,
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.UpdatedAt),
	)
}
