package usecases

import (
	"context"

	"gestiontickets/internal/domain/member"
	"gestiontickets/internal/domain/ticket"
	"gestiontickets/internal/shared/errors"
	"gestiontickets/internal/shared/logger"
)

type DeleteMemberCommand struct {
	MemberID uint
}

type DeleteMemberUseCase struct {
	memberRepo member.Repository
	ticketRepo ticket.Repository
	photos     PhotoStore
	logger     logger.Interface
}

func NewDeleteMemberUseCase(
	memberRepo member.Repository,
	ticketRepo ticket.Repository,
	photos PhotoStore,
	logger logger.Interface,
) *DeleteMemberUseCase {
	return &DeleteMemberUseCase{
		memberRepo: memberRepo,
		ticketRepo: ticketRepo,
		photos:     photos,
		logger:     logger,
	}
}

func (uc *DeleteMemberUseCase) Execute(ctx context.Context, cmd DeleteMemberCommand) error {
	uc.logger.Infow("executing delete member use case", "member_id", cmd.MemberID)

	m, err := uc.memberRepo.FindByID(ctx, cmd.MemberID)
	if err != nil {
		return err
	}

	hasTickets, err := uc.ticketRepo.ExistsByMemberID(ctx, cmd.MemberID)
	if err != nil {
		return err
	}
	if hasTickets {
		return errors.NewConflictError("member has tickets and cannot be deleted")
	}

	if err := uc.memberRepo.Delete(ctx, cmd.MemberID); err != nil {
		uc.logger.Errorw("failed to delete member", "member_id", cmd.MemberID, "error", err)
		return err
	}

	// the database reference is gone; a leftover file is logged inside Delete
	uc.photos.Delete(m.PhotoKey())

	uc.logger.Infow("member deleted successfully", "member_id", cmd.MemberID)
	return nil
}
