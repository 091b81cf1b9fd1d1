package ticket

import (
	"fmt"
	"time"
)

// HistoryEvent is one timestamped status change on a ticket. Events are
// append-only: nothing in the normal flow edits or removes them.
type HistoryEvent struct {
	id         uint
	ticketID   uint
	statusID   uint
	note       string
	occurredAt time.Time
}

func NewHistoryEvent(ticketID, statusID uint, note string) (*HistoryEvent, error) {
	return NewHistoryEventAt(ticketID, statusID, note, time.Now())
}

func NewHistoryEventAt(ticketID, statusID uint, note string, occurredAt time.Time) (*HistoryEvent, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if statusID == 0 {
		return nil, fmt.Errorf("status ID is required")
	}
	if len(note) == 0 {
		return nil, fmt.Errorf("note is required")
	}
	if len(note) > 5000 {
		return nil, fmt.Errorf("note exceeds maximum length of 5000 characters")
	}

	return &HistoryEvent{
		ticketID:   ticketID,
		statusID:   statusID,
		note:       note,
		occurredAt: occurredAt,
	}, nil
}

func ReconstructHistoryEvent(id, ticketID, statusID uint, note string, occurredAt time.Time) (*HistoryEvent, error) {
	if id == 0 {
		return nil, fmt.Errorf("history event ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if statusID == 0 {
		return nil, fmt.Errorf("status ID is required")
	}

	return &HistoryEvent{
		id:         id,
		ticketID:   ticketID,
		statusID:   statusID,
		note:       note,
		occurredAt: occurredAt,
	}, nil
}

func (e *HistoryEvent) ID() uint {
	return e.id
}

func (e *HistoryEvent) TicketID() uint {
	return e.ticketID
}

func (e *HistoryEvent) StatusID() uint {
	return e.statusID
}

func (e *HistoryEvent) Note() string {
	return e.note
}

func (e *HistoryEvent) OccurredAt() time.Time {
	return e.occurredAt
}

func (e *HistoryEvent) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("history event ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("history event ID cannot be zero")
	}
	e.id = id
	return nil
}

// InitialNote synthesizes the note of the automatic first event created with
// every new ticket.
func InitialNote(description string) string {
	return "Start of claim: " + description
}
