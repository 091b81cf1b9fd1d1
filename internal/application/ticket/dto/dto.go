package dto

import (
	"time"

	"gestiontickets/internal/domain/ticket"
)

type TicketDTO struct {
	ID          uint              `json:"id"`
	MemberID    uint              `json:"member_id"`
	MemberName  string            `json:"member_name"`
	Description string            `json:"description"`
	Status      string            `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	History     []HistoryEventDTO `json:"history"`
}

type HistoryEventDTO struct {
	ID         uint      `json:"id"`
	StatusID   uint      `json:"status_id"`
	Status     string    `json:"status"`
	Note       string    `json:"note"`
	NoteHTML   string    `json:"note_html,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type TicketListItemDTO struct {
	ID          uint      `json:"id"`
	MemberID    uint      `json:"member_id"`
	MemberName  string    `json:"member_name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToTicketListItemDTO flattens a ticket for the listing. statusLabels maps
// status IDs to catalog labels; memberNames maps member IDs to display names.
func ToTicketListItemDTO(t *ticket.Ticket, statusLabels map[uint]string, memberNames map[uint]string) TicketListItemDTO {
	item := TicketListItemDTO{
		ID:          t.ID(),
		MemberID:    t.MemberID(),
		MemberName:  memberNames[t.MemberID()],
		Description: t.Description(),
		CreatedAt:   t.CreatedAt(),
	}
	if current := t.CurrentEvent(); current != nil {
		item.Status = statusLabels[current.StatusID()]
	}
	return item
}
