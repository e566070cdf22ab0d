package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"labtrace/internal/domain/testrequest"
	"labtrace/internal/infrastructure/persistence/mappers"
	"labtrace/internal/infrastructure/persistence/models"
	"labtrace/internal/shared/db"
	"labtrace/internal/shared/errors"
)

type TestRequestRepository struct {
	db     *gorm.DB
	mapper mappers.TestRequestMapper
}

func NewTestRequestRepository(database *gorm.DB) *TestRequestRepository {
	return &TestRequestRepository{
		db:     database,
		mapper: mappers.NewTestRequestMapper(),
	}
}

func (r *TestRequestRepository) Save(ctx context.Context, req *testrequest.TestRequest) error {
	model := r.mapper.ToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save test request: %w", err)
	}

	return req.SetID(model.ID)
}

func (r *TestRequestRepository) Update(ctx context.Context, req *testrequest.TestRequest) error {
	model := r.mapper.ToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TestRequestModel{}).
		Where("id = ?", model.ID).
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update test request: %w", result.Error)
	}

	return nil
}

func (r *TestRequestRepository) GetByID(ctx context.Context, id uint) (*testrequest.TestRequest, error) {
	var model models.TestRequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("test request not found")
		}
		return nil, fmt.Errorf("failed to find test request: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TestRequestRepository) List(ctx context.Context, filter testrequest.Filter) ([]*testrequest.TestRequest, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TestRequestModel{})

	if filter.CustomerName != "" {
		query = query.Where("customer_name LIKE ?", "%"+filter.CustomerName+"%")
	}
	if filter.Status != nil && *filter.Status != "" {
		query = query.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count test requests: %w", err)
	}

	var rows []models.TestRequestModel
	offset := (filter.Page - 1) * filter.PageSize
	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(filter.PageSize).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list test requests: %w", err)
	}

	requests := make([]*testrequest.TestRequest, 0, len(rows))
	for i := range rows {
		req, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, req)
	}

	return requests, total, nil
}

func (r *TestRequestRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TestRequestModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete test request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("test request not found")
	}
	return nil
}
