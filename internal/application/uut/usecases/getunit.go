package usecases

import (
	"context"

	appdto "labtrace/internal/application/uut/dto"
	"labtrace/internal/domain/uut"
	"labtrace/internal/shared/logger"
)

type GetUnitQuery struct {
	UnitID  uint
	UUTCode string
}

type GetUnitUseCase struct {
	unitRepo uut.Repository
	logger   logger.Interface
}

func NewGetUnitUseCase(unitRepo uut.Repository, logger logger.Interface) *GetUnitUseCase {
	return &GetUnitUseCase{
		unitRepo: unitRepo,
		logger:   logger,
	}
}

func (uc *GetUnitUseCase) Execute(ctx context.Context, query GetUnitQuery) (*appdto.UnitDTO, error) {
	var unit *uut.UnitUnderTest
	var err error

	if query.UUTCode != "" {
		unit, err = uc.unitRepo.GetByCode(ctx, query.UUTCode)
	} else {
		unit, err = uc.unitRepo.GetByID(ctx, query.UnitID)
	}
	if err != nil {
		return nil, err
	}

	return appdto.FromEntity(unit), nil
}
