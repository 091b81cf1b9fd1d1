package mappers

import (
	"gestiontickets/internal/domain/status"
	"gestiontickets/internal/infrastructure/persistence/models"
)

// StatusMapper handles the conversion between Status domain entities and persistence models.
type StatusMapper interface {
	ToModel(s *status.Status) *models.StatusModel
	ToDomain(model *models.StatusModel) (*status.Status, error)
}

type StatusMapperImpl struct{}

func NewStatusMapper() StatusMapper {
	return &StatusMapperImpl{}
}

func (sm *StatusMapperImpl) ToModel(s *status.Status) *models.StatusModel {
	return &models.StatusModel{
		ID:    s.ID(),
		Label: s.Label(),
	}
}

func (sm *StatusMapperImpl) ToDomain(model *models.StatusModel) (*status.Status, error) {
	return status.ReconstructStatus(model.ID, model.Label)
}
