package models

import "gorm.io/datatypes"

type MemberModel struct {
	ID         uint           `gorm:"primaryKey"`
	Surname    string         `gorm:"size:100;not null;index"`
	GivenNames string         `gorm:"size:100;not null;index"`
	NationalID string         `gorm:"size:20;not null;index"`
	BirthDate  datatypes.Date `gorm:"not null"`
	PhotoKey   string         `gorm:"size:100"`
	Version    int            `gorm:"not null;default:1"`
	CreatedAt  int64          `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64          `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (MemberModel) TableName() string {
	return "members"
}
