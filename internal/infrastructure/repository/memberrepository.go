package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gestiontickets/internal/domain/member"
	"gestiontickets/internal/infrastructure/persistence/mappers"
	"gestiontickets/internal/infrastructure/persistence/models"
	db "gestiontickets/internal/shared/db"
	apperrors "gestiontickets/internal/shared/errors"
)

type MemberRepository struct {
	db     *gorm.DB
	mapper mappers.MemberMapper
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{
		db:     db,
		mapper: mappers.NewMemberMapper(),
	}
}

func (r *MemberRepository) Save(ctx context.Context, m *member.Member) error {
	model := r.mapper.ToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save member: %w", err)
	}

	if err := m.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

// Update writes the member back guarded by its version. A stale in-memory
// copy loses the compare-and-swap, and the existence re-check decides whether
// the row vanished or was modified behind the caller's back.
func (r *MemberRepository) Update(ctx context.Context, m *member.Member) error {
	model := r.mapper.ToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.MemberModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version).
		Updates(map[string]interface{}{
			"surname":     model.Surname,
			"given_names": model.GivenNames,
			"national_id": model.NationalID,
			"birth_date":  model.BirthDate,
			"photo_key":   model.PhotoKey,
			"updated_at":  model.UpdatedAt,
			"version":     gorm.Expr("version + 1"),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update member: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		exists, err := r.Exists(ctx, model.ID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.NewNotFoundError("member not found")
		}
		return apperrors.NewConcurrencyError("member was modified concurrently")
	}

	return nil
}

func (r *MemberRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.MemberModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete member: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("member not found")
	}
	return nil
}

func (r *MemberRepository) FindByID(ctx context.Context, id uint) (*member.Member, error) {
	var model models.MemberModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("member not found")
		}
		return nil, fmt.Errorf("failed to find member: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *MemberRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.MemberModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check member existence: %w", err)
	}

	return count > 0, nil
}

func (r *MemberRepository) List(
	ctx context.Context,
	filter member.Filter,
) ([]*member.Member, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.MemberModel{})

	if filter.Surname != "" {
		query = query.Where("surname LIKE ?", "%"+filter.Surname+"%")
	}
	if filter.GivenNames != "" {
		query = query.Where("given_names LIKE ?", "%"+filter.GivenNames+"%")
	}
	if filter.NationalID != "" {
		query = query.Where("national_id LIKE ?", "%"+filter.NationalID+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count members: %w", err)
	}

	query = query.
		Order("surname ASC, given_names ASC, id ASC").
		Limit(filter.Page.Limit()).
		Offset(filter.Page.Offset())

	var memberModels []models.MemberModel
	if err := query.Find(&memberModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list members: %w", err)
	}

	members := make([]*member.Member, len(memberModels))
	for i, model := range memberModels {
		m, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		members[i] = m
	}

	return members, total, nil
}

// SaveBatch persists the members in insertion order. Callers wrap it in a
// transaction so a failing row discards the whole batch.
func (r *MemberRepository) SaveBatch(ctx context.Context, members []*member.Member) error {
	tx := db.GetTxFromContext(ctx, r.db)

	for i, m := range members {
		model := r.mapper.ToModel(m)
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to save member %d of batch: %w", i+1, err)
		}
		if err := m.SetID(model.ID); err != nil {
			return err
		}
	}

	return nil
}
