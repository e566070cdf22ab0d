package mappers

import (
	"time"

	"labtrace/internal/domain/equipment"
	"labtrace/internal/infrastructure/persistence/models"
)

// EquipmentMapper handles the conversion between equipment domain entities and persistence models.
type EquipmentMapper interface {
	ToModel(e *equipment.Equipment) *models.EquipmentModel
	ToDomain(model *models.EquipmentModel) (*equipment.Equipment, error)
}

type EquipmentMapperImpl struct{}

func NewEquipmentMapper() EquipmentMapper {
	return &EquipmentMapperImpl{}
}

func (m *EquipmentMapperImpl) ToModel(e *equipment.Equipment) *models.EquipmentModel {
	model := &models.EquipmentModel{
		ID:        e.ID(),
		Name:      e.Name(),
		TagNumber: e.TagNumber(),
		Location:  e.Location(),
		Status:    e.Status().String(),
		CreatedAt: e.CreatedAt().UnixMilli(),
		UpdatedAt: e.UpdatedAt().UnixMilli(),
	}

	if e.LastCalibratedAt() != nil {
		last := e.LastCalibratedAt().UnixMilli()
		model.LastCalibratedAt = &last
	}
	if e.CalibrationDueAt() != nil {
		due := e.CalibrationDueAt().UnixMilli()
		model.CalibrationDueAt = &due
	}

	return model
}

func (m *EquipmentMapperImpl) ToDomain(model *models.EquipmentModel) (*equipment.Equipment, error) {
	var lastCalibratedAt, calibrationDueAt *time.Time
	if model.LastCalibratedAt != nil {
		t := time.UnixMilli(*model.LastCalibratedAt).UTC()
		lastCalibratedAt = &t
	}
	if model.CalibrationDueAt != nil {
		t := time.UnixMilli(*model.CalibrationDueAt).UTC()
		calibrationDueAt = &t
	}

	return equipment.ReconstructEquipment(
		model.ID,
		model.Name,
		model.TagNumber,
		model.Location,
		equipment.Status(model.Status),
		lastCalibratedAt,
		calibrationDueAt,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}
