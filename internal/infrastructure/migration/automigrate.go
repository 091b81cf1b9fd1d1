package migration

import (
	"gestiontickets/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.MemberModel{},
		&models.StatusModel{},
		&models.TicketModel{},
		&models.HistoryEventModel{},
		&models.UserModel{},
	}
}
