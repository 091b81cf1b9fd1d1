package usecases

import (
	"context"

	"gestiontickets/internal/application/member/dto"
	"gestiontickets/internal/domain/member"
	"gestiontickets/internal/shared/logger"
	"gestiontickets/internal/shared/query"
)

type ListMembersQuery struct {
	Surname    string
	GivenNames string
	NationalID string
	Page       int
}

type ListMembersResult struct {
	Members  []*dto.MemberDTO
	Total    int64
	Page     int
	PageSize int
}

type ListMembersUseCase struct {
	memberRepo member.Repository
	photos     PhotoStore
	logger     logger.Interface
}

func NewListMembersUseCase(memberRepo member.Repository, photos PhotoStore, logger logger.Interface) *ListMembersUseCase {
	return &ListMembersUseCase{
		memberRepo: memberRepo,
		photos:     photos,
		logger:     logger,
	}
}

func (uc *ListMembersUseCase) Execute(ctx context.Context, q ListMembersQuery) (*ListMembersResult, error) {
	page := query.NewPageFilter(q.Page)

	members, total, err := uc.memberRepo.List(ctx, member.Filter{
		Surname:    q.Surname,
		GivenNames: q.GivenNames,
		NationalID: q.NationalID,
		Page:       page,
	})
	if err != nil {
		uc.logger.Errorw("failed to list members", "error", err)
		return nil, err
	}

	items := make([]*dto.MemberDTO, len(members))
	for i, m := range members {
		items[i] = dto.ToMemberDTO(m, uc.photos.URL(m.PhotoKey()))
	}

	return &ListMembersResult{
		Members:  items,
		Total:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}, nil
}
