package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestiontickets/internal/domain/member"
	"gestiontickets/internal/domain/status"
	"gestiontickets/internal/domain/ticket"
	"gestiontickets/internal/shared/constants"
	apperrors "gestiontickets/internal/shared/errors"
	"gestiontickets/internal/shared/services/markdown"
)

func catalogStatuses(t *testing.T) []*status.Status {
	t.Helper()
	labels := []string{constants.StatusPending, constants.StatusInProgress, constants.StatusResolved}
	statuses := make([]*status.Status, len(labels))
	for i, label := range labels {
		s, err := status.ReconstructStatus(uint(i+1), label)
		require.NoError(t, err)
		statuses[i] = s
	}
	return statuses
}

func TestGetTicketUseCase_Execute(t *testing.T) {
	base := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	tk := reconstructTestTicket(t, 10, 7, "description")
	first, err := ticket.ReconstructHistoryEvent(1, 10, 1, "Start of claim: description", base)
	require.NoError(t, err)
	second, err := ticket.ReconstructHistoryEvent(2, 10, 3, "Closed with **replacement**", base.Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, tk.AddEvent(first))
	require.NoError(t, tk.AddEvent(second))

	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			assert.Equal(t, uint(10), id)
			return tk, nil
		},
	}
	mockMembers := &mockMemberRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*member.Member, error) {
			return reconstructTestMember(t, 7, "Garcia", "Ana"), nil
		},
	}
	mockStatuses := &mockStatusRepository{
		ListFunc: func(ctx context.Context) ([]*status.Status, error) {
			return catalogStatuses(t), nil
		},
	}

	useCase := NewGetTicketUseCase(mockRepo, mockMembers, mockStatuses,
		markdown.NewMarkdownService(), &mockLogger{})
	result, err := useCase.Execute(context.Background(), GetTicketQuery{TicketID: 10})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(10), result.ID)
	assert.Equal(t, "Garcia, Ana", result.MemberName)
	assert.Equal(t, constants.StatusResolved, result.Status)

	require.Len(t, result.History, 2)
	assert.Equal(t, constants.StatusPending, result.History[0].Status)
	assert.Equal(t, constants.StatusResolved, result.History[1].Status)
	assert.Contains(t, result.History[1].NoteHTML, "<strong>replacement</strong>")
}

func TestGetTicketUseCase_Execute_StatusFollowsLatestEvent(t *testing.T) {
	base := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	tk := reconstructTestTicket(t, 10, 7, "description")
	// The resolving event is older than a backdated follow-up note; the
	// later timestamp must win regardless of insertion order.
	resolved, err := ticket.ReconstructHistoryEvent(2, 10, 3, "resolved", base.Add(2*time.Hour))
	require.NoError(t, err)
	backdated, err := ticket.ReconstructHistoryEvent(3, 10, 2, "backdated note", base.Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, tk.AddEvent(resolved))
	require.NoError(t, tk.AddEvent(backdated))

	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	mockMembers := &mockMemberRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*member.Member, error) {
			return reconstructTestMember(t, 7, "Garcia", "Ana"), nil
		},
	}
	mockStatuses := &mockStatusRepository{
		ListFunc: func(ctx context.Context) ([]*status.Status, error) {
			return catalogStatuses(t), nil
		},
	}

	useCase := NewGetTicketUseCase(mockRepo, mockMembers, mockStatuses,
		markdown.NewMarkdownService(), &mockLogger{})
	result, err := useCase.Execute(context.Background(), GetTicketQuery{TicketID: 10})

	require.NoError(t, err)
	assert.Equal(t, constants.StatusResolved, result.Status)
}

func TestGetTicketUseCase_Execute_NotFound(t *testing.T) {
	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		},
	}

	useCase := NewGetTicketUseCase(mockRepo, &mockMemberRepository{}, &mockStatusRepository{},
		markdown.NewMarkdownService(), &mockLogger{})
	result, err := useCase.Execute(context.Background(), GetTicketQuery{TicketID: 10})

	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}
