package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"labtrace/internal/domain/equipment"
	"labtrace/internal/infrastructure/persistence/mappers"
	"labtrace/internal/infrastructure/persistence/models"
	"labtrace/internal/shared/db"
	"labtrace/internal/shared/errors"
)

type EquipmentRepository struct {
	db     *gorm.DB
	mapper mappers.EquipmentMapper
}

func NewEquipmentRepository(database *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{
		db:     database,
		mapper: mappers.NewEquipmentMapper(),
	}
}

func (r *EquipmentRepository) Save(ctx context.Context, eq *equipment.Equipment) error {
	model := r.mapper.ToModel(eq)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return err
		}
		return fmt.Errorf("failed to save equipment: %w", err)
	}

	return eq.SetID(model.ID)
}

func (r *EquipmentRepository) Update(ctx context.Context, eq *equipment.Equipment) error {
	model := r.mapper.ToModel(eq)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.EquipmentModel{}).
		Where("id = ?", model.ID).
		Updates(model)

	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return result.Error
		}
		return fmt.Errorf("failed to update equipment: %w", result.Error)
	}

	return nil
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id uint) (*equipment.Equipment, error) {
	var model models.EquipmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("equipment not found")
		}
		return nil, fmt.Errorf("failed to find equipment: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *EquipmentRepository) GetByTagNumber(ctx context.Context, tagNumber string) (*equipment.Equipment, error) {
	var model models.EquipmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("tag_number = ?", tagNumber).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("equipment not found")
		}
		return nil, fmt.Errorf("failed to find equipment: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *EquipmentRepository) ExistsByTagNumber(ctx context.Context, tagNumber string) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	err := tx.
		Model(&models.EquipmentModel{}).
		Where("tag_number = ?", tagNumber).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check tag number: %w", err)
	}
	return count > 0, nil
}

func (r *EquipmentRepository) List(ctx context.Context, filter equipment.Filter) ([]*equipment.Equipment, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.EquipmentModel{})

	if filter.Status != nil && *filter.Status != "" {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Location != "" {
		query = query.Where("location = ?", filter.Location)
	}
	if filter.DueBefore != nil {
		cutoff := filter.DueBefore.UnixMilli()
		query = query.
			Where("status <> ?", equipment.StatusRetired.String()).
			Where("calibration_due_at IS NULL OR calibration_due_at <= ?", cutoff)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count equipment: %w", err)
	}

	var rows []models.EquipmentModel
	offset := (filter.Page - 1) * filter.PageSize
	err := query.
		Order("tag_number ASC").
		Offset(offset).
		Limit(filter.PageSize).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list equipment: %w", err)
	}

	items := make([]*equipment.Equipment, 0, len(rows))
	for i := range rows {
		eq, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		items = append(items, eq)
	}

	return items, total, nil
}

func (r *EquipmentRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.EquipmentModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete equipment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("equipment not found")
	}
	return nil
}
