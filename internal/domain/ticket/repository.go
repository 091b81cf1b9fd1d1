package ticket

import (
	"context"

	"gestiontickets/internal/shared/query"
)

// StatusFilter is the derived-status filter of the ticket listing. It is
// computed against each ticket's latest history event, not a stored column.
type StatusFilter string

const (
	// StatusFilterActive matches tickets whose current status is "Pending"
	// or "In Progress". This is the default when no filter is supplied.
	StatusFilterActive StatusFilter = "Active"
	// StatusFilterResolved matches tickets whose current status is "Resolved".
	StatusFilterResolved StatusFilter = "Resolved"
	// StatusFilterAll applies no status restriction.
	StatusFilterAll StatusFilter = "All"
)

func (f StatusFilter) IsValid() bool {
	return f == StatusFilterActive || f == StatusFilterResolved || f == StatusFilterAll
}

// ParseStatusFilter maps the query value to a filter, defaulting to Active.
func ParseStatusFilter(s string) StatusFilter {
	if s == "" {
		return StatusFilterActive
	}
	return StatusFilter(s)
}

// Filter narrows the ticket listing. RequesterName is a substring match on
// the requesting member's surname or given names.
type Filter struct {
	RequesterName string
	Status        StatusFilter
	Page          query.PageFilter
}

type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	// Delete removes the ticket and cascades over its history events.
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	Exists(ctx context.Context, id uint) (bool, error)
	ExistsByMemberID(ctx context.Context, memberID uint) (bool, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)

	SaveEvent(ctx context.Context, e *HistoryEvent) error
	FindEventsByTicketID(ctx context.Context, ticketID uint) ([]*HistoryEvent, error)
}
