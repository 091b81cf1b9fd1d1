package usecases

import (
	"context"

	"gestiontickets/internal/application/ticket/dto"
	"gestiontickets/internal/domain/member"
	"gestiontickets/internal/domain/status"
	"gestiontickets/internal/domain/ticket"
	"gestiontickets/internal/shared/errors"
	"gestiontickets/internal/shared/logger"
	"gestiontickets/internal/shared/query"
)

type ListTicketsQuery struct {
	RequesterName string
	Status        string
	Page          int
}

type ListTicketsResult struct {
	Tickets  []dto.TicketListItemDTO
	Total    int64
	Page     int
	PageSize int
	Status   string
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	memberRepo member.Repository
	statusRepo status.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.Repository,
	memberRepo member.Repository,
	statusRepo status.Repository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		memberRepo: memberRepo,
		statusRepo: statusRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, q ListTicketsQuery) (*ListTicketsResult, error) {
	statusFilter := ticket.ParseStatusFilter(q.Status)
	if !statusFilter.IsValid() {
		return nil, errors.NewValidationError("invalid status filter: " + q.Status)
	}

	page := query.NewPageFilter(q.Page)

	tickets, total, err := uc.ticketRepo.List(ctx, ticket.Filter{
		RequesterName: q.RequesterName,
		Status:        statusFilter,
		Page:          page,
	})
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	labels, err := statusLabelMap(ctx, uc.statusRepo)
	if err != nil {
		return nil, err
	}

	names, err := uc.memberNames(ctx, tickets)
	if err != nil {
		return nil, err
	}

	items := make([]dto.TicketListItemDTO, len(tickets))
	for i, t := range tickets {
		items[i] = dto.ToTicketListItemDTO(t, labels, names)
	}

	return &ListTicketsResult{
		Tickets:  items,
		Total:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
		Status:   string(statusFilter),
	}, nil
}

func (uc *ListTicketsUseCase) memberNames(ctx context.Context, tickets []*ticket.Ticket) (map[uint]string, error) {
	names := make(map[uint]string)
	for _, t := range tickets {
		if _, ok := names[t.MemberID()]; ok {
			continue
		}
		m, err := uc.memberRepo.FindByID(ctx, t.MemberID())
		if err != nil {
			if errors.IsNotFoundError(err) {
				names[t.MemberID()] = ""
				continue
			}
			return nil, err
		}
		names[t.MemberID()] = memberDisplayName(m)
	}
	return names, nil
}
