package usecases

import (
	"context"
	"time"

	appdto "labtrace/internal/application/equipment/dto"
	"labtrace/internal/domain/equipment"
	"labtrace/internal/shared/biztime"
	"labtrace/internal/shared/errors"
	"labtrace/internal/shared/logger"
)

// defaultCalibrationValidity applies when the caller does not specify one.
const defaultCalibrationValidity = 365 * 24 * time.Hour

type RecordCalibrationCommand struct {
	EquipmentID uint
	// CalibratedAt defaults to now when zero.
	CalibratedAt time.Time
	// ValidForDays defaults to 365 when zero.
	ValidForDays int
}

type RecordCalibrationResult struct {
	Equipment *appdto.EquipmentDTO `json:"equipment"`
	Message   string               `json:"message"`
}

type RecordCalibrationUseCase struct {
	equipmentRepo equipment.Repository
	logger        logger.Interface
}

func NewRecordCalibrationUseCase(equipmentRepo equipment.Repository, logger logger.Interface) *RecordCalibrationUseCase {
	return &RecordCalibrationUseCase{
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

func (uc *RecordCalibrationUseCase) Execute(ctx context.Context, cmd RecordCalibrationCommand) (*RecordCalibrationResult, error) {
	if cmd.ValidForDays < 0 {
		return nil, errors.NewValidationError("calibration validity must be positive")
	}

	eq, err := uc.equipmentRepo.GetByID(ctx, cmd.EquipmentID)
	if err != nil {
		return nil, err
	}

	calibratedAt := cmd.CalibratedAt
	if calibratedAt.IsZero() {
		calibratedAt = biztime.NowUTC()
	}
	validity := defaultCalibrationValidity
	if cmd.ValidForDays > 0 {
		validity = time.Duration(cmd.ValidForDays) * 24 * time.Hour
	}

	if err := eq.RecordCalibration(calibratedAt, validity); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.equipmentRepo.Update(ctx, eq); err != nil {
		uc.logger.Errorw("failed to record calibration", "equipment_id", cmd.EquipmentID, "error", err)
		return nil, errors.NewInternalError("failed to record calibration")
	}

	uc.logger.Infow("calibration recorded",
		"equipment_id", eq.ID(),
		"tag_number", eq.TagNumber(),
		"due_at", eq.CalibrationDueAt())

	return &RecordCalibrationResult{
		Equipment: appdto.FromEntity(eq),
		Message:   "Calibration recorded",
	}, nil
}
