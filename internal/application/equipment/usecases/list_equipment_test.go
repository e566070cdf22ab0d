package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labtrace/internal/domain/equipment"
	"labtrace/internal/shared/errors"
)

func TestListEquipment_PassesFilter(t *testing.T) {
	var captured equipment.Filter
	repo := &mockEquipmentRepository{
		ListFunc: func(ctx context.Context, filter equipment.Filter) ([]*equipment.Equipment, int64, error) {
			captured = filter
			return nil, 0, nil
		},
	}

	useCase := NewListEquipmentUseCase(repo, &mockLogger{})
	_, err := useCase.Execute(context.Background(), ListEquipmentQuery{
		Status:   "active",
		Location: "Chamber 2",
		Page:     2,
		PageSize: 10,
	})

	require.NoError(t, err)
	require.NotNil(t, captured.Status)
	assert.Equal(t, "active", *captured.Status)
	assert.Equal(t, "Chamber 2", captured.Location)
	assert.Equal(t, 2, captured.Page)
	assert.Equal(t, 10, captured.PageSize)
	assert.Nil(t, captured.DueBefore)
}

func TestListEquipment_DueFilterSetsCutoff(t *testing.T) {
	var captured equipment.Filter
	repo := &mockEquipmentRepository{
		ListFunc: func(ctx context.Context, filter equipment.Filter) ([]*equipment.Equipment, int64, error) {
			captured = filter
			return nil, 0, nil
		},
	}

	useCase := NewListEquipmentUseCase(repo, &mockLogger{})
	before := time.Now().UTC()
	_, err := useCase.Execute(context.Background(), ListEquipmentQuery{Due: true})
	after := time.Now().UTC()

	require.NoError(t, err)
	require.NotNil(t, captured.DueBefore)
	assert.False(t, captured.DueBefore.Before(before.Add(-time.Second)))
	assert.False(t, captured.DueBefore.After(after.Add(time.Second)))
}

func TestListEquipment_InvalidStatusFilter(t *testing.T) {
	useCase := NewListEquipmentUseCase(&mockEquipmentRepository{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), ListEquipmentQuery{Status: "broken"})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}

func TestListEquipment_NormalizesPagination(t *testing.T) {
	var captured equipment.Filter
	repo := &mockEquipmentRepository{
		ListFunc: func(ctx context.Context, filter equipment.Filter) ([]*equipment.Equipment, int64, error) {
			captured = filter
			return nil, 0, nil
		},
	}

	useCase := NewListEquipmentUseCase(repo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListEquipmentQuery{Page: -1, PageSize: 9999})

	require.NoError(t, err)
	assert.Equal(t, 1, captured.Page)
	assert.Equal(t, 100, captured.PageSize)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 100, result.PageSize)
}
