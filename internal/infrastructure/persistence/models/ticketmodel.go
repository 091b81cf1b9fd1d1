package models

type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	MemberID    uint   `gorm:"not null;index"`
	Description string `gorm:"type:text;not null"`
	Version     int    `gorm:"not null;default:1"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type HistoryEventModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;index"`
	StatusID   uint   `gorm:"not null;index"`
	Note       string `gorm:"type:text;not null"`
	OccurredAt int64  `gorm:"not null;index"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
}

func (HistoryEventModel) TableName() string {
	return "ticket_history"
}
