package usecases

import (
	"context"
	"time"

	"gestiontickets/internal/domain/member"
	"gestiontickets/internal/shared/errors"
	"gestiontickets/internal/shared/logger"
)

type UpdateMemberCommand struct {
	MemberID   uint
	Surname    string
	GivenNames string
	NationalID string
	BirthDate  time.Time
}

type UpdateMemberUseCase struct {
	memberRepo member.Repository
	logger     logger.Interface
}

func NewUpdateMemberUseCase(memberRepo member.Repository, logger logger.Interface) *UpdateMemberUseCase {
	return &UpdateMemberUseCase{
		memberRepo: memberRepo,
		logger:     logger,
	}
}

func (uc *UpdateMemberUseCase) Execute(ctx context.Context, cmd UpdateMemberCommand) error {
	uc.logger.Infow("executing update member use case", "member_id", cmd.MemberID)

	m, err := uc.memberRepo.FindByID(ctx, cmd.MemberID)
	if err != nil {
		return err
	}

	if err := m.UpdateDetails(cmd.Surname, cmd.GivenNames, cmd.NationalID, cmd.BirthDate); err != nil {
		return errors.NewValidationError(err.Error())
	}

	// Update is version-guarded; a concurrent edit surfaces as a
	// concurrency error, a vanished row as not found.
	if err := uc.memberRepo.Update(ctx, m); err != nil {
		uc.logger.Errorw("failed to update member", "member_id", cmd.MemberID, "error", err)
		return err
	}

	uc.logger.Infow("member updated successfully", "member_id", cmd.MemberID)
	return nil
}
