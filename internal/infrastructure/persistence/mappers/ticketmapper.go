package mappers

import (
	"gestiontickets/internal/domain/ticket"
	"gestiontickets/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	// History events must be loaded separately by the repository.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	// EventToModel converts a history event domain entity to a persistence model.
	EventToModel(e *ticket.HistoryEvent) *models.HistoryEventModel

	// EventToDomain converts a history event persistence model to a domain entity.
	EventToDomain(model *models.HistoryEventModel) (*ticket.HistoryEvent, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (tm *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID(),
		MemberID:    t.MemberID(),
		Description: t.Description(),
		Version:     t.Version(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}
}

func (tm *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	return ticket.ReconstructTicket(
		model.ID,
		model.MemberID,
		model.Description,
		model.Version,
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.UpdatedAt),
	)
}

func (tm *TicketMapperImpl) EventToModel(e *ticket.HistoryEvent) *models.HistoryEventModel {
	return &models.HistoryEventModel{
		ID:         e.ID(),
		TicketID:   e.TicketID(),
		StatusID:   e.StatusID(),
		Note:       e.Note(),
		OccurredAt: e.OccurredAt().UnixMilli(),
	}
}

func (tm *TicketMapperImpl) EventToDomain(model *models.HistoryEventModel) (*ticket.HistoryEvent, error) {
	return ticket.ReconstructHistoryEvent(
		model.ID,
		model.TicketID,
		model.StatusID,
		model.Note,
		convertMillisToTime(model.OccurredAt),
	)
}
