package usecases

import (
	"context"

	"labtrace/internal/domain/equipment"
	"labtrace/internal/shared/errors"
	"labtrace/internal/shared/logger"
)

type DeleteEquipmentCommand struct {
	EquipmentID uint
}

type DeleteEquipmentResult struct {
	Message string `json:"message"`
}

type DeleteEquipmentUseCase struct {
	equipmentRepo equipment.Repository
	logger        logger.Interface
}

func NewDeleteEquipmentUseCase(equipmentRepo equipment.Repository, logger logger.Interface) *DeleteEquipmentUseCase {
	return &DeleteEquipmentUseCase{
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

func (uc *DeleteEquipmentUseCase) Execute(ctx context.Context, cmd DeleteEquipmentCommand) (*DeleteEquipmentResult, error) {
	eq, err := uc.equipmentRepo.GetByID(ctx, cmd.EquipmentID)
	if err != nil {
		return nil, err
	}

	// Only retired equipment can leave the registry; the record is the
	// calibration history for everything still in use.
	if eq.Status() != equipment.StatusRetired {
		return nil, errors.NewValidationError("only retired equipment can be deleted")
	}

	if err := uc.equipmentRepo.Delete(ctx, cmd.EquipmentID); err != nil {
		uc.logger.Errorw("failed to delete equipment", "equipment_id", cmd.EquipmentID, "error", err)
		return nil, errors.NewInternalError("failed to delete equipment")
	}

	uc.logger.Infow("equipment deleted", "equipment_id", cmd.EquipmentID, "tag_number", eq.TagNumber())

	return &DeleteEquipmentResult{Message: "Equipment deleted successfully"}, nil
}
