package usecases

import (
	"context"

	appdto "labtrace/internal/application/equipment/dto"
	"labtrace/internal/domain/equipment"
	"labtrace/internal/shared/logger"
)

type GetEquipmentQuery struct {
	EquipmentID uint
}

type GetEquipmentResult struct {
	Equipment *appdto.EquipmentDTO `json:"equipment"`
}

type GetEquipmentUseCase struct {
	equipmentRepo equipment.Repository
	logger        logger.Interface
}

func NewGetEquipmentUseCase(equipmentRepo equipment.Repository, logger logger.Interface) *GetEquipmentUseCase {
	return &GetEquipmentUseCase{
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

func (uc *GetEquipmentUseCase) Execute(ctx context.Context, query GetEquipmentQuery) (*GetEquipmentResult, error) {
	eq, err := uc.equipmentRepo.GetByID(ctx, query.EquipmentID)
	if err != nil {
		return nil, err
	}
	return &GetEquipmentResult{Equipment: appdto.FromEntity(eq)}, nil
}
