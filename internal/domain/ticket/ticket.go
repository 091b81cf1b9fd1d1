package ticket

import (
	"fmt"
	"time"
)

// Ticket is a single support request raised by one member. The creation
// timestamp is server-assigned once and never editable afterwards. A ticket
// owns its history events; its current status is always derived from them,
// never stored.
type Ticket struct {
	id          uint
	memberID    uint
	description string
	version     int
	createdAt   time.Time
	updatedAt   time.Time
	history     []*HistoryEvent
}

func NewTicket(memberID uint, description string) (*Ticket, error) {
	if memberID == 0 {
		return nil, fmt.Errorf("member ID is required")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}

	now := time.Now()
	return &Ticket{
		memberID:    memberID,
		description: description,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
		history:     []*HistoryEvent{},
	}, nil
}

func ReconstructTicket(
	id uint,
	memberID uint,
	description string,
	version int,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if memberID == 0 {
		return nil, fmt.Errorf("member ID is required")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}

	return &Ticket{
		id:          id,
		memberID:    memberID,
		description: description,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		history:     []*HistoryEvent{},
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) MemberID() uint {
	return t.memberID
}

func (t *Ticket) Description() string {
	return t.description
}

// Version is the optimistic-lock counter persisted alongside the record.
func (t *Ticket) Version() int {
	return t.version
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) History() []*HistoryEvent {
	historyCopy := make([]*HistoryEvent, len(t.history))
	copy(historyCopy, t.history)
	return historyCopy
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// UpdateHeader edits the mutable header fields. The creation timestamp is
// deliberately not touched.
func (t *Ticket) UpdateHeader(memberID uint, description string) error {
	if memberID == 0 {
		return fmt.Errorf("member ID is required")
	}
	if len(description) == 0 {
		return fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return fmt.Errorf("description exceeds maximum length of 5000 characters")
	}

	t.memberID = memberID
	t.description = description
	t.updatedAt = time.Now()

	return nil
}

func (t *Ticket) AddEvent(event *HistoryEvent) error {
	if event == nil {
		return fmt.Errorf("history event cannot be nil")
	}
	if event.TicketID() != t.id {
		return fmt.Errorf("history event ticket ID mismatch")
	}
	t.history = append(t.history, event)
	return nil
}

// CurrentEvent returns the event that defines the ticket's current status:
// the one with the latest timestamp, ties broken by highest ID so appends
// win over older rows carrying the same instant. Returns nil when the ticket
// has no events, which should not happen after creation.
func (t *Ticket) CurrentEvent() *HistoryEvent {
	var current *HistoryEvent
	for _, e := range t.history {
		if current == nil {
			current = e
			continue
		}
		if e.OccurredAt().After(current.OccurredAt()) {
			current = e
			continue
		}
		if e.OccurredAt().Equal(current.OccurredAt()) && e.ID() > current.ID() {
			current = e
		}
	}
	return current
}

// CurrentStatusID derives the current status from the history. An error is
// returned when no events exist so callers never read a phantom status.
func (t *Ticket) CurrentStatusID() (uint, error) {
	current := t.CurrentEvent()
	if current == nil {
		return 0, fmt.Errorf("ticket has no history events")
	}
	return current.StatusID(), nil
}
