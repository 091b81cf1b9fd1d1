package usecases

import (
	"context"

	"gestiontickets/internal/domain/ticket"
	"gestiontickets/internal/shared/db"
	"gestiontickets/internal/shared/errors"
	"gestiontickets/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID uint
	// ActorMemberID restricts the delete to the requesting member's own
	// tickets; nil means no ownership restriction (admin).
	ActorMemberID *uint
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	txManager  *db.TransactionManager
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// Execute removes the ticket and its history in one transaction.
func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID)

	if cmd.ActorMemberID != nil {
		t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
		if err != nil {
			return err
		}
		if *cmd.ActorMemberID != t.MemberID() {
			return errors.NewForbiddenError("ticket belongs to another member")
		}
	}

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.ticketRepo.Delete(txCtx, cmd.TicketID)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return err
	}

	uc.logger.Infow("ticket deleted successfully", "ticket_id", cmd.TicketID)
	return nil
}
