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

func activeEquipment(t *testing.T) *equipment.Equipment {
	t.Helper()
	created := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	eq, err := equipment.ReconstructEquipment(
		3, "Spectrum Analyzer", "EQ-001", "Chamber 2",
		equipment.StatusActive, nil, nil, created, created,
	)
	require.NoError(t, err)
	return eq
}

func TestRecordCalibration_SchedulesNextDue(t *testing.T) {
	eq := activeEquipment(t)
	var updated *equipment.Equipment
	repo := &mockEquipmentRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*equipment.Equipment, error) {
			return eq, nil
		},
		UpdateFunc: func(ctx context.Context, e *equipment.Equipment) error {
			updated = e
			return nil
		},
	}

	calibratedAt := time.Date(2024, time.March, 5, 14, 0, 0, 0, time.UTC)
	useCase := NewRecordCalibrationUseCase(repo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), RecordCalibrationCommand{
		EquipmentID:  3,
		CalibratedAt: calibratedAt,
		ValidForDays: 180,
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	require.NotNil(t, result.Equipment.LastCalibratedAt)
	require.NotNil(t, result.Equipment.CalibrationDueAt)
	assert.Equal(t, calibratedAt, *result.Equipment.LastCalibratedAt)
	assert.Equal(t, calibratedAt.Add(180*24*time.Hour), *result.Equipment.CalibrationDueAt)
}

func TestRecordCalibration_DefaultValidity(t *testing.T) {
	eq := activeEquipment(t)
	repo := &mockEquipmentRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*equipment.Equipment, error) {
			return eq, nil
		},
	}

	calibratedAt := time.Date(2024, time.March, 5, 14, 0, 0, 0, time.UTC)
	useCase := NewRecordCalibrationUseCase(repo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), RecordCalibrationCommand{
		EquipmentID:  3,
		CalibratedAt: calibratedAt,
	})

	require.NoError(t, err)
	assert.Equal(t, calibratedAt.Add(365*24*time.Hour), *result.Equipment.CalibrationDueAt)
}

func TestRecordCalibration_RetiredEquipmentRejected(t *testing.T) {
	created := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	eq, err := equipment.ReconstructEquipment(
		3, "Spectrum Analyzer", "EQ-001", "Chamber 2",
		equipment.StatusRetired, nil, nil, created, created,
	)
	require.NoError(t, err)

	repo := &mockEquipmentRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*equipment.Equipment, error) {
			return eq, nil
		},
	}

	useCase := NewRecordCalibrationUseCase(repo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), RecordCalibrationCommand{EquipmentID: 3})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}

func TestEquipmentCalibrationDue(t *testing.T) {
	eq := activeEquipment(t)
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	// Never calibrated counts as due.
	assert.True(t, eq.CalibrationDue(now))

	require.NoError(t, eq.RecordCalibration(now, 90*24*time.Hour))
	assert.False(t, eq.CalibrationDue(now.Add(89*24*time.Hour)))
	assert.True(t, eq.CalibrationDue(now.Add(90*24*time.Hour)))
}
