package usecases

import (
	"context"

	appdto "labtrace/internal/application/uut/dto"
	"labtrace/internal/domain/uut"
	"labtrace/internal/shared/logger"
	"labtrace/internal/shared/utils"
)

type ListUnitsQuery struct {
	CustomerName *string
	TestTypeCode *string
	Day          *string
	Checkout     *string
	Page         int
	PageSize     int
}

type ListUnitsResult struct {
	Units      []*appdto.UnitDTO
	TotalCount int64
}

type ListUnitsUseCase struct {
	unitRepo uut.Repository
	logger   logger.Interface
}

func NewListUnitsUseCase(unitRepo uut.Repository, logger logger.Interface) *ListUnitsUseCase {
	return &ListUnitsUseCase{
		unitRepo: unitRepo,
		logger:   logger,
	}
}

func (uc *ListUnitsUseCase) Execute(ctx context.Context, query ListUnitsQuery) (*ListUnitsResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	filter := uut.Filter{
		CustomerName: query.CustomerName,
		TestTypeCode: query.TestTypeCode,
		Checkout:     query.Checkout,
		Page:         pagination.Page,
		PageSize:     pagination.PageSize,
	}

	if query.Day != nil {
		day, err := parseDay(*query.Day)
		if err != nil {
			return nil, err
		}
		filter.Day = &day
	}

	units, total, err := uc.unitRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list units", "error", err)
		return nil, err
	}

	return &ListUnitsResult{
		Units:      appdto.FromEntities(units),
		TotalCount: total,
	}, nil
}
