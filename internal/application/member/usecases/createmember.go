package usecases

import (
	"context"
	"time"

	"gestiontickets/internal/domain/member"
	"gestiontickets/internal/shared/errors"
	"gestiontickets/internal/shared/logger"
)

type CreateMemberCommand struct {
	Surname    string
	GivenNames string
	NationalID string
	BirthDate  time.Time
}

type CreateMemberResult struct {
	MemberID uint
}

type CreateMemberUseCase struct {
	memberRepo member.Repository
	logger     logger.Interface
}

func NewCreateMemberUseCase(memberRepo member.Repository, logger logger.Interface) *CreateMemberUseCase {
	return &CreateMemberUseCase{
		memberRepo: memberRepo,
		logger:     logger,
	}
}

func (uc *CreateMemberUseCase) Execute(ctx context.Context, cmd CreateMemberCommand) (*CreateMemberResult, error) {
	uc.logger.Infow("executing create member use case", "national_id", cmd.NationalID)

	newMember, err := member.NewMember(cmd.Surname, cmd.GivenNames, cmd.NationalID, cmd.BirthDate)
	if err != nil {
		uc.logger.Errorw("invalid member data", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.memberRepo.Save(ctx, newMember); err != nil {
		uc.logger.Errorw("failed to save member", "error", err)
		return nil, err
	}

	uc.logger.Infow("member created successfully", "member_id", newMember.ID())

	return &CreateMemberResult{MemberID: newMember.ID()}, nil
}
