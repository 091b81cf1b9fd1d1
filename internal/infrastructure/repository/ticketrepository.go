package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gestiontickets/internal/domain/ticket"
	"gestiontickets/internal/infrastructure/persistence/mappers"
	"gestiontickets/internal/infrastructure/persistence/models"
	"gestiontickets/internal/shared/constants"
	db "gestiontickets/internal/shared/db"
	apperrors "gestiontickets/internal/shared/errors"
)

// currentEventJoin pins each ticket to its single defining history event: the
// one with the latest occurred_at, ties broken by the highest row ID. Runs on
// both MySQL and SQLite.
const currentEventJoin = `JOIN ticket_history cur ON cur.ticket_id = tickets.id AND cur.id = (
	SELECT h.id FROM ticket_history h
	WHERE h.ticket_id = tickets.id
	ORDER BY h.occurred_at DESC, h.id DESC
	LIMIT 1
)`

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

// Update writes the header fields back guarded by the ticket's version. The
// creation timestamp is never part of the update set.
func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version).
		Updates(map[string]interface{}{
			"member_id":   model.MemberID,
			"description": model.Description,
			"updated_at":  model.UpdatedAt,
			"version":     gorm.Expr("version + 1"),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		exists, err := r.Exists(ctx, model.ID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.NewNotFoundError("ticket not found")
		}
		return apperrors.NewConcurrencyError("ticket was modified concurrently")
	}

	return nil
}

// Delete removes the ticket together with its history events. Callers wrap it
// in a transaction so the two deletes land or fail together.
func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", id).
		Delete(&models.HistoryEventModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket history: %w", err)
	}

	result := tx.Delete(&models.TicketModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("ticket not found")
	}

	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	t, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, err
	}

	events, err := r.FindEventsByTicketID(ctx, model.ID)
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		if err := t.AddEvent(e); err != nil {
			return nil, err
		}
	}

	return t, nil
}

func (r *TicketRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check ticket existence: %w", err)
	}

	return count > 0, nil
}

func (r *TicketRepository) ExistsByMemberID(ctx context.Context, memberID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.TicketModel{}).
		Where("member_id = ?", memberID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check member tickets: %w", err)
	}

	return count > 0, nil
}

func (r *TicketRepository) List(
	ctx context.Context,
	filter ticket.Filter,
) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if filter.RequesterName != "" {
		like := "%" + filter.RequesterName + "%"
		query = query.
			Joins("JOIN members ON members.id = tickets.member_id").
			Where("members.surname LIKE ? OR members.given_names LIKE ?", like, like)
	}

	if labels := statusLabelsFor(filter.Status); labels != nil {
		query = query.
			Joins(currentEventJoin).
			Joins("JOIN statuses ON statuses.id = cur.status_id").
			Where("statuses.label IN ?", labels)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	query = query.
		Select("tickets.*").
		Order("tickets.created_at DESC, tickets.id DESC").
		Limit(filter.Page.Limit()).
		Offset(filter.Page.Offset())

	var ticketModels []models.TicketModel
	if err := query.Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	ids := make([]uint, len(ticketModels))
	byID := make(map[uint]*ticket.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		tickets[i] = t
		ids[i] = model.ID
		byID[model.ID] = t
	}

	if len(ids) > 0 {
		if err := r.loadEvents(ctx, byID, ids); err != nil {
			return nil, 0, err
		}
	}

	return tickets, total, nil
}

func (r *TicketRepository) SaveEvent(ctx context.Context, e *ticket.HistoryEvent) error {
	model := r.mapper.EventToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save history event: %w", err)
	}

	if err := e.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *TicketRepository) FindEventsByTicketID(
	ctx context.Context,
	ticketID uint,
) ([]*ticket.HistoryEvent, error) {
	var eventModels []models.HistoryEventModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("occurred_at ASC, id ASC").
		Find(&eventModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find history events: %w", err)
	}

	events := make([]*ticket.HistoryEvent, len(eventModels))
	for i, model := range eventModels {
		e, err := r.mapper.EventToDomain(&model)
		if err != nil {
			return nil, err
		}
		events[i] = e
	}

	return events, nil
}

// loadEvents fetches the history of all listed tickets in one query.
func (r *TicketRepository) loadEvents(
	ctx context.Context,
	byID map[uint]*ticket.Ticket,
	ids []uint,
) error {
	var eventModels []models.HistoryEventModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("ticket_id IN ?", ids).
		Order("occurred_at ASC, id ASC").
		Find(&eventModels).Error; err != nil {
		return fmt.Errorf("failed to load history events: %w", err)
	}

	for _, model := range eventModels {
		e, err := r.mapper.EventToDomain(&model)
		if err != nil {
			return err
		}
		t, ok := byID[model.TicketID]
		if !ok {
			continue
		}
		if err := t.AddEvent(e); err != nil {
			return err
		}
	}

	return nil
}

// statusLabelsFor maps the derived-status filter to the catalog labels the
// current event must carry; nil means no restriction.
func statusLabelsFor(f ticket.StatusFilter) []string {
	switch f {
	case ticket.StatusFilterResolved:
		return []string{constants.StatusResolved}
	case ticket.StatusFilterAll:
		return nil
	default:
		return []string{constants.StatusPending, constants.StatusInProgress}
	}
}
