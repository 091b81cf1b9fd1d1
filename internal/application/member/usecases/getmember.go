package usecases

import (
	"context"

	"gestiontickets/internal/application/member/dto"
	"gestiontickets/internal/domain/member"
	"gestiontickets/internal/shared/logger"
)

type GetMemberQuery struct {
	MemberID uint
}

type GetMemberUseCase struct {
	memberRepo member.Repository
	photos     PhotoStore
	logger     logger.Interface
}

func NewGetMemberUseCase(memberRepo member.Repository, photos PhotoStore, logger logger.Interface) *GetMemberUseCase {
	return &GetMemberUseCase{
		memberRepo: memberRepo,
		photos:     photos,
		logger:     logger,
	}
}

func (uc *GetMemberUseCase) Execute(ctx context.Context, query GetMemberQuery) (*dto.MemberDTO, error) {
	m, err := uc.memberRepo.FindByID(ctx, query.MemberID)
	if err != nil {
		return nil, err
	}

	return dto.ToMemberDTO(m, uc.photos.URL(m.PhotoKey())), nil
}
