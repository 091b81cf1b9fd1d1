package usecases

import (
	"context"

	"gestiontickets/internal/application/ticket/dto"
	"gestiontickets/internal/domain/member"
	"gestiontickets/internal/domain/status"
	"gestiontickets/internal/domain/ticket"
	"gestiontickets/internal/shared/logger"
	"gestiontickets/internal/shared/services/markdown"
)

type GetTicketQuery struct {
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	memberRepo member.Repository
	statusRepo status.Repository
	markdown   markdown.MarkdownService
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	memberRepo member.Repository,
	statusRepo status.Repository,
	markdownSvc markdown.MarkdownService,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		memberRepo: memberRepo,
		statusRepo: statusRepo,
		markdown:   markdownSvc,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.FindByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	m, err := uc.memberRepo.FindByID(ctx, t.MemberID())
	if err != nil {
		return nil, err
	}

	labels, err := statusLabelMap(ctx, uc.statusRepo)
	if err != nil {
		return nil, err
	}

	history := make([]dto.HistoryEventDTO, len(t.History()))
	for i, e := range t.History() {
		noteHTML, err := uc.markdown.ToHTMLSanitized(e.Note())
		if err != nil {
			uc.logger.Warnw("failed to render note", "event_id", e.ID(), "error", err)
			noteHTML = ""
		}
		history[i] = dto.HistoryEventDTO{
			ID:         e.ID(),
			StatusID:   e.StatusID(),
			Status:     labels[e.StatusID()],
			Note:       e.Note(),
			NoteHTML:   noteHTML,
			OccurredAt: e.OccurredAt(),
		}
	}

	result := &dto.TicketDTO{
		ID:          t.ID(),
		MemberID:    t.MemberID(),
		MemberName:  memberDisplayName(m),
		Description: t.Description(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
		History:     history,
	}
	if current := t.CurrentEvent(); current != nil {
		result.Status = labels[current.StatusID()]
	}

	return result, nil
}

func statusLabelMap(ctx context.Context, repo status.Repository) (map[uint]string, error) {
	statuses, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	labels := make(map[uint]string, len(statuses))
	for _, s := range statuses {
		labels[s.ID()] = s.Label()
	}
	return labels, nil
}

func memberDisplayName(m *member.Member) string {
	return m.Surname() + ", " + m.GivenNames()
}
