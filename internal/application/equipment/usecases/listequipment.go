package usecases

import (
	"context"

	appdto "labtrace/internal/application/equipment/dto"
	"labtrace/internal/domain/equipment"
	"labtrace/internal/shared/biztime"
	"labtrace/internal/shared/errors"
	"labtrace/internal/shared/logger"
	"labtrace/internal/shared/utils"
)

type ListEquipmentQuery struct {
	Status   string
	Location string
	// Due limits the listing to calibration-due equipment.
	Due      bool
	Page     int
	PageSize int
}

type ListEquipmentResult struct {
	Equipment []*appdto.EquipmentDTO `json:"equipment"`
	Total     int64                  `json:"total"`
	Page      int                    `json:"page"`
	PageSize  int                    `json:"pageSize"`
}

type ListEquipmentUseCase struct {
	equipmentRepo equipment.Repository
	logger        logger.Interface
}

func NewListEquipmentUseCase(equipmentRepo equipment.Repository, logger logger.Interface) *ListEquipmentUseCase {
	return &ListEquipmentUseCase{
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

func (uc *ListEquipmentUseCase) Execute(ctx context.Context, query ListEquipmentQuery) (*ListEquipmentResult, error) {
	p := utils.ValidatePagination(query.Page, query.PageSize)

	filter := equipment.Filter{
		Location: query.Location,
		Page:     p.Page,
		PageSize: p.PageSize,
	}
	if query.Status != "" {
		if !equipment.Status(query.Status).IsValid() {
			return nil, errors.NewValidationError("invalid status filter")
		}
		filter.Status = &query.Status
	}
	if query.Due {
		now := biztime.NowUTC()
		filter.DueBefore = &now
	}

	items, total, err := uc.equipmentRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list equipment", "error", err)
		return nil, errors.NewInternalError("failed to list equipment")
	}

	return &ListEquipmentResult{
		Equipment: appdto.FromEntities(items),
		Total:     total,
		Page:      p.Page,
		PageSize:  p.PageSize,
	}, nil
}
