package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gestiontickets/internal/domain/status"
	"gestiontickets/internal/infrastructure/persistence/mappers"
	"gestiontickets/internal/infrastructure/persistence/models"
	db "gestiontickets/internal/shared/db"
	apperrors "gestiontickets/internal/shared/errors"
)

type StatusRepository struct {
	db     *gorm.DB
	mapper mappers.StatusMapper
}

func NewStatusRepository(db *gorm.DB) *StatusRepository {
	return &StatusRepository{
		db:     db,
		mapper: mappers.NewStatusMapper(),
	}
}

func (r *StatusRepository) Save(ctx context.Context, s *status.Status) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save status: %w", err)
	}

	if err := s.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *StatusRepository) FindByID(ctx context.Context, id uint) (*status.Status, error) {
	var model models.StatusModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("status not found")
		}
		return nil, fmt.Errorf("failed to find status: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *StatusRepository) FindByLabel(ctx context.Context, label string) (*status.Status, error) {
	var model models.StatusModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("label = ?", label).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("status %q not found", label))
		}
		return nil, fmt.Errorf("failed to find status: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *StatusRepository) List(ctx context.Context) ([]*status.Status, error) {
	var statusModels []models.StatusModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Order("id ASC").
		Find(&statusModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list statuses: %w", err)
	}

	statuses := make([]*status.Status, len(statusModels))
	for i, model := range statusModels {
		s, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		statuses[i] = s
	}

	return statuses, nil
}
