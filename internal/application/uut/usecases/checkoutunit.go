package usecases

import (
	"context"

	appdto "labtrace/internal/application/uut/dto"
	"labtrace/internal/domain/uut"
	vo "labtrace/internal/domain/uut/valueobjects"
	"labtrace/internal/shared/errors"
	"labtrace/internal/shared/logger"
)

type CheckoutUnitCommand struct {
	UnitID uint
	// Status is "partially_out" or "fully_out".
	Status string
}

type CheckoutUnitResult struct {
	Unit    *appdto.UnitDTO `json:"unit"`
	Message string          `json:"message"`
}

// CheckoutUnitUseCase records a registered unit leaving the lab. The code,
// sequence and day bucket stay untouched; units are never re-sequenced.
type CheckoutUnitUseCase struct {
	unitRepo uut.Repository
	clock    uut.Clock
	logger   logger.Interface
}

func NewCheckoutUnitUseCase(unitRepo uut.Repository, clock uut.Clock, logger logger.Interface) *CheckoutUnitUseCase {
	return &CheckoutUnitUseCase{
		unitRepo: unitRepo,
		clock:    clock,
		logger:   logger,
	}
}

func (uc *CheckoutUnitUseCase) Execute(ctx context.Context, cmd CheckoutUnitCommand) (*CheckoutUnitResult, error) {
	status, err := vo.NewCheckoutStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError("checkout status must be partially_out or fully_out")
	}

	unit, err := uc.unitRepo.GetByID(ctx, cmd.UnitID)
	if err != nil {
		return nil, err
	}

	if err := unit.Checkout(status, uc.clock.Now()); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.unitRepo.Update(ctx, unit); err != nil {
		uc.logger.Errorw("failed to update unit checkout", "unit_id", cmd.UnitID, "error", err)
		return nil, errors.NewInternalError("failed to update unit")
	}

	uc.logger.Infow("unit checkout recorded",
		"unit_id", unit.ID(),
		"uut_code", unit.UUTCode(),
		"status", status.String())

	return &CheckoutUnitResult{
		Unit:    appdto.FromEntity(unit),
		Message: "Checkout recorded",
	}, nil
}
