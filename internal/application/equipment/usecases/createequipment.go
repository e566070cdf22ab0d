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

type CreateEquipmentCommand struct {
	Name      string
	TagNumber string
	Location  string
}

type CreateEquipmentResult struct {
	Equipment *appdto.EquipmentDTO `json:"equipment"`
	Message   string               `json:"message"`
}

type CreateEquipmentUseCase struct {
	equipmentRepo equipment.Repository
	logger        logger.Interface
}

func NewCreateEquipmentUseCase(equipmentRepo equipment.Repository, logger logger.Interface) *CreateEquipmentUseCase {
	return &CreateEquipmentUseCase{
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

func (uc *CreateEquipmentUseCase) Execute(ctx context.Context, cmd CreateEquipmentCommand) (*CreateEquipmentResult, error) {
	name := strings.TrimSpace(cmd.Name)
	tagNumber := strings.TrimSpace(cmd.TagNumber)
	if name == "" {
		return nil, errors.NewValidationError("name is required")
	}
	if tagNumber == "" {
		return nil, errors.NewValidationError("tag number is required")
	}

	exists, err := uc.equipmentRepo.ExistsByTagNumber(ctx, tagNumber)
	if err != nil {
		uc.logger.Errorw("failed to check tag number", "tag_number", tagNumber, "error", err)
		return nil, errors.NewInternalError("failed to check tag number")
	}
	if exists {
		return nil, errors.NewConflictError("equipment with this tag number already exists")
	}

	eq, err := equipment.NewEquipment(name, tagNumber, strings.TrimSpace(cmd.Location), biztime.NowUTC())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.equipmentRepo.Save(ctx, eq); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("equipment with this tag number already exists")
		}
		uc.logger.Errorw("failed to save equipment", "tag_number", tagNumber, "error", err)
		return nil, errors.NewInternalError("failed to save equipment")
	}

	uc.logger.Infow("equipment created", "equipment_id", eq.ID(), "tag_number", tagNumber)

	return &CreateEquipmentResult{
		Equipment: appdto.FromEntity(eq),
		Message:   "Equipment created successfully",
	}, nil
}
