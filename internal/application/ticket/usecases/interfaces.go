package usecases

import (
	"context"

	"gestiontickets/internal/application/ticket/dto"
)

// Notifier is the outbound notification slice the ticket usecases need.
// Failures are logged, never propagated.
type Notifier interface {
	SendTicketStatusChanged(to, memberName string, ticketID uint, statusLabel, note string) error
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) error
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type AppendHistoryExecutor interface {
	Execute(ctx context.Context, cmd AppendHistoryCommand) (*AppendHistoryResult, error)
}
