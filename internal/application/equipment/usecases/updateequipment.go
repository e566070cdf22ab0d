package usecases

import (
	"context"
	"strings"

	appdto "labtrace/internal/application/equipment/dto"
	"labtrace/internal/domain/equipment"
	"labtrace/internal/shared/biztime"
	"labtrace/internal/shared/errors"
	"labtrace/internal/shared/logger"
)

type UpdateEquipmentCommand struct {
	EquipmentID uint
	Name        string
	TagNumber   string
	Location    string
	Status      string
}

type UpdateEquipmentResult struct {
	Equipment *appdto.EquipmentDTO `json:"equipment"`
	Message   string               `json:"message"`
}

type UpdateEquipmentUseCase struct {
	equipmentRepo equipment.Repository
	logger        logger.Interface
}

func NewUpdateEquipmentUseCase(equipmentRepo equipment.Repository, logger logger.Interface) *UpdateEquipmentUseCase {
	return &UpdateEquipmentUseCase{
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

func (uc *UpdateEquipmentUseCase) Execute(ctx context.Context, cmd UpdateEquipmentCommand) (*UpdateEquipmentResult, error) {
	eq, err := uc.equipmentRepo.GetByID(ctx, cmd.EquipmentID)
	if err != nil {
		return nil, err
	}

	now := biztime.NowUTC()

	if err := eq.UpdateDetails(strings.TrimSpace(cmd.Name), strings.TrimSpace(cmd.TagNumber), strings.TrimSpace(cmd.Location), now); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Status != "" {
		if err := eq.ChangeStatus(equipment.Status(cmd.Status), now); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.equipmentRepo.Update(ctx, eq); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("equipment with this tag number already exists")
		}
		uc.logger.Errorw("failed to update equipment", "equipment_id", cmd.EquipmentID, "error", err)
		return nil, errors.NewInternalError("failed to update equipment")
	}

	return &UpdateEquipmentResult{
		Equipment: appdto.FromEntity(eq),
		Message:   "Equipment updated successfully",
	}, nil
}
