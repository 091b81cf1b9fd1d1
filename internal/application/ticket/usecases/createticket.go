package usecases

import (
	"context"
	"time"

	"gestiontickets/internal/domain/member"
	"gestiontickets/internal/domain/status"
	"gestiontickets/internal/domain/ticket"
	"gestiontickets/internal/shared/constants"
	"gestiontickets/internal/shared/db"
	"gestiontickets/internal/shared/errors"
	"gestiontickets/internal/shared/logger"
)

type CreateTicketCommand struct {
	MemberID    uint
	Description string
}

type CreateTicketResult struct {
	TicketID  uint
	Status    string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	memberRepo member.Repository
	statusRepo status.Repository
	txManager  *db.TransactionManager
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	memberRepo member.Repository,
	statusRepo status.Repository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		memberRepo: memberRepo,
		statusRepo: statusRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// Execute creates the ticket together with its automatic first history event
// in one transaction, so no ticket ever exists without a derivable status.
func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "member_id", cmd.MemberID)

	newTicket, err := ticket.NewTicket(cmd.MemberID, cmd.Description)
	if err != nil {
		uc.logger.Errorw("invalid ticket data", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.memberRepo.Exists(ctx, cmd.MemberID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.NewValidationError("requesting member does not exist")
	}

	pending, err := uc.statusRepo.FindByLabel(ctx, constants.StatusPending)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Errorw("initial status missing from catalog", "label", constants.StatusPending)
			return nil, errors.NewInternalError("status catalog is not seeded")
		}
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Save(txCtx, newTicket); err != nil {
			return err
		}

		event, err := ticket.NewHistoryEvent(newTicket.ID(), pending.ID(), ticket.InitialNote(cmd.Description))
		if err != nil {
			return err
		}

		return uc.ticketRepo.SaveEvent(txCtx, event)
	})
	if err != nil {
		uc.logger.Errorw("failed to create ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID())

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Status:    pending.Label(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}
