package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"labtrace/internal/domain/uut"
	"labtrace/internal/infrastructure/persistence/mappers"
	"labtrace/internal/infrastructure/persistence/models"
	"labtrace/internal/shared/db"
	"labtrace/internal/shared/errors"
)

type UUTRepository struct {
	db     *gorm.DB
	mapper mappers.UUTMapper
}

func NewUUTRepository(database *gorm.DB) *UUTRepository {
	return &UUTRepository{
		db:     database,
		mapper: mappers.NewUUTMapper(),
	}
}

func (r *UUTRepository) Save(ctx context.Context, unit *uut.UnitUnderTest) error {
	model := r.mapper.ToModel(unit)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		// Duplicate-key errors pass through unwrapped so the allocator's
		// conflict classifier can match the driver message.
		if errors.IsDuplicateError(err) {
			return err
		}
		return fmt.Errorf("failed to save unit: %w", err)
	}

	return unit.SetID(model.ID)
}

func (r *UUTRepository) Update(ctx context.Context, unit *uut.UnitUnderTest) error {
	model := r.mapper.ToModel(unit)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.UUTRecordModel{}).
		Where("id = ?", model.ID).
		Select("checkout", "checkout_at", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update unit: %w", result.Error)
	}

	return nil
}

// MaxSerialOfDay reads the highest committed sequence for the day bucket.
// Inside a confirm transaction the context carries that transaction, so the
// read and the subsequent insert see the same state.
func (r *UUTRepository) MaxSerialOfDay(ctx context.Context, day time.Time) (int, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var max *int
	err := tx.
		Model(&models.UUTRecordModel{}).
		Where("in_date_day = ?", datatypes.Date(day)).
		Select("MAX(serial_of_day)").
		Scan(&max).Error
	if err != nil {
		return 0, fmt.Errorf("failed to read max serial of day: %w", err)
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

func (r *UUTRepository) ExistsBySerialNo(ctx context.Context, serialNo string) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	err := tx.
		Model(&models.UUTRecordModel{}).
		Where("serial_no = ?", serialNo).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check serial number: %w", err)
	}
	return count > 0, nil
}

func (r *UUTRepository) GetByID(ctx context.Context, id uint) (*uut.UnitUnderTest, error) {
	var model models.UUTRecordModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("unit not found")
		}
		return nil, fmt.Errorf("failed to find unit: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UUTRepository) GetByCode(ctx context.Context, uutCode string) (*uut.UnitUnderTest, error) {
	var model models.UUTRecordModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("uut_code = ?", uutCode).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("unit not found")
		}
		return nil, fmt.Errorf("failed to find unit: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UUTRepository) List(ctx context.Context, filter uut.Filter) ([]*uut.UnitUnderTest, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.UUTRecordModel{})

	if filter.CustomerName != nil && *filter.CustomerName != "" {
		query = query.Where("customer_name LIKE ?", "%"+*filter.CustomerName+"%")
	}
	if filter.TestTypeCode != nil && *filter.TestTypeCode != "" {
		query = query.Where("test_type_code = ?", *filter.TestTypeCode)
	}
	if filter.Day != nil {
		query = query.Where("in_date_day = ?", datatypes.Date(*filter.Day))
	}
	if filter.Checkout != nil && *filter.Checkout != "" {
		query = query.Where("checkout = ?", *filter.Checkout)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count units: %w", err)
	}

	var rows []models.UUTRecordModel
	offset := (filter.Page - 1) * filter.PageSize
	err := query.
		Order("in_date_day DESC, serial_of_day DESC").
		Offset(offset).
		Limit(filter.PageSize).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list units: %w", err)
	}

	units := make([]*uut.UnitUnderTest, 0, len(rows))
	for i := range rows {
		unit, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		units = append(units, unit)
	}

	return units, total, nil
}
