package usecases

import (
	"context"
	"time"

	"gestiontickets/internal/domain/member"
	"gestiontickets/internal/domain/status"
	"gestiontickets/internal/domain/ticket"
	"gestiontickets/internal/domain/user"
	"gestiontickets/internal/shared/errors"
	"gestiontickets/internal/shared/logger"
)

type AppendHistoryCommand struct {
	TicketID uint
	StatusID uint
	Note     string
	// ActorMemberID restricts the append to the requesting member's own
	// tickets; nil means no ownership restriction (admin).
	ActorMemberID *uint
}

type AppendHistoryResult struct {
	EventID    uint
	Status     string
	OccurredAt time.Time
}

type AppendHistoryUseCase struct {
	ticketRepo ticket.Repository
	memberRepo member.Repository
	statusRepo status.Repository
	userRepo   user.Repository
	notifier   Notifier
	logger     logger.Interface
}

func NewAppendHistoryUseCase(
	ticketRepo ticket.Repository,
	memberRepo member.Repository,
	statusRepo status.Repository,
	userRepo user.Repository,
	notifier Notifier,
	logger logger.Interface,
) *AppendHistoryUseCase {
	return &AppendHistoryUseCase{
		ticketRepo: ticketRepo,
		memberRepo: memberRepo,
		statusRepo: statusRepo,
		userRepo:   userRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *AppendHistoryUseCase) Execute(ctx context.Context, cmd AppendHistoryCommand) (*AppendHistoryResult, error) {
	uc.logger.Infow("executing append history use case",
		"ticket_id", cmd.TicketID, "status_id", cmd.StatusID)

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if cmd.ActorMemberID != nil && *cmd.ActorMemberID != t.MemberID() {
		return nil, errors.NewForbiddenError("ticket belongs to another member")
	}

	st, err := uc.statusRepo.FindByID(ctx, cmd.StatusID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewValidationError("status does not exist")
		}
		return nil, err
	}

	event, err := ticket.NewHistoryEvent(cmd.TicketID, cmd.StatusID, cmd.Note)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.SaveEvent(ctx, event); err != nil {
		uc.logger.Errorw("failed to save history event", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.notifyStatusChange(ctx, t, st.Label(), cmd.Note)

	uc.logger.Infow("history event appended",
		"ticket_id", cmd.TicketID, "event_id", event.ID(), "status", st.Label())

	return &AppendHistoryResult{
		EventID:    event.ID(),
		Status:     st.Label(),
		OccurredAt: event.OccurredAt(),
	}, nil
}

// notifyStatusChange emails the requesting member's account about the new
// status. Members without a linked account, and delivery failures, are
// logged and ignored.
func (uc *AppendHistoryUseCase) notifyStatusChange(ctx context.Context, t *ticket.Ticket, statusLabel, note string) {
	m, err := uc.memberRepo.FindByID(ctx, t.MemberID())
	if err != nil {
		uc.logger.Warnw("skipping notification, member lookup failed",
			"ticket_id", t.ID(), "error", err)
		return
	}

	account, err := uc.userRepo.FindByMemberID(ctx, t.MemberID())
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Warnw("skipping notification, account lookup failed",
				"ticket_id", t.ID(), "error", err)
		}
		return
	}

	if err := uc.notifier.SendTicketStatusChanged(
		account.Email(), memberDisplayName(m), t.ID(), statusLabel, note,
	); err != nil {
		uc.logger.Warnw("failed to send status notification",
			"ticket_id", t.ID(), "error", err)
	}
}
