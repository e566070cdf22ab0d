package dto

import (
	"time"

	"labtrace/internal/domain/equipment"
)

type EquipmentDTO struct {
	ID               uint       `json:"id"`
	Name             string     `json:"name"`
	TagNumber        string     `json:"tagNumber"`
	Location         string     `json:"location,omitempty"`
	Status           string     `json:"status"`
	LastCalibratedAt *time.Time `json:"lastCalibratedAt,omitempty"`
	CalibrationDueAt *time.Time `json:"calibrationDueAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func FromEntity(e *equipment.Equipment) *EquipmentDTO {
	return &EquipmentDTO{
		ID:               e.ID(),
		Name:             e.Name(),
		TagNumber:        e.TagNumber(),
		Location:         e.Location(),
		Status:           e.Status().String(),
		LastCalibratedAt: e.LastCalibratedAt(),
		CalibrationDueAt: e.CalibrationDueAt(),
		CreatedAt:        e.CreatedAt(),
		UpdatedAt:        e.UpdatedAt(),
	}
}

func FromEntities(items []*equipment.Equipment) []*EquipmentDTO {
	out := make([]*EquipmentDTO, 0, len(items))
	for _, e := range items {
		out = append(out, FromEntity(e))
	}
	return out
}
