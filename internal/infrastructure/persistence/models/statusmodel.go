package models

type StatusModel struct {
	ID        uint   `gorm:"primaryKey"`
	Label     string `gorm:"size:50;not null;uniqueIndex"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (StatusModel) TableName() string {
	return "statuses"
}
