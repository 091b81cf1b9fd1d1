package usecases

import (
	"context"

	"gestiontickets/internal/domain/member"
	"gestiontickets/internal/domain/ticket"
	"gestiontickets/internal/shared/errors"
	"gestiontickets/internal/shared/logger"
)

type UpdateTicketCommand struct {
	TicketID    uint
	MemberID    uint
	Description string
	// ActorMemberID restricts the edit to the requesting member's own
	// tickets; nil means no ownership restriction (admin).
	ActorMemberID *uint
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	memberRepo member.Repository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	memberRepo member.Repository,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		memberRepo: memberRepo,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) error {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID)

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}

	if cmd.ActorMemberID != nil {
		if *cmd.ActorMemberID != t.MemberID() {
			return errors.NewForbiddenError("ticket belongs to another member")
		}
		if cmd.MemberID != t.MemberID() {
			return errors.NewForbiddenError("members cannot reassign a ticket")
		}
	}

	if cmd.MemberID != t.MemberID() {
		exists, err := uc.memberRepo.Exists(ctx, cmd.MemberID)
		if err != nil {
			return err
		}
		if !exists {
			return errors.NewValidationError("requesting member does not exist")
		}
	}

	if err := t.UpdateHeader(cmd.MemberID, cmd.Description); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return err
	}

	uc.logger.Infow("ticket updated successfully", "ticket_id", cmd.TicketID)
	return nil
}
