package usecases

import (
	"context"

	appdto "labtrace/internal/application/testrequest/dto"
	"labtrace/internal/domain/testrequest"
	"labtrace/internal/shared/errors"
	"labtrace/internal/shared/logger"
	"labtrace/internal/shared/utils"
)

type ListTestRequestsQuery struct {
	CustomerName string
	Status       string
	Page         int
	PageSize     int
}

type ListTestRequestsResult struct {
	Requests []*appdto.TestRequestDTO `json:"requests"`
	Total    int64                    `json:"total"`
	Page     int                      `json:"page"`
	PageSize int                      `json:"pageSize"`
}

type ListTestRequestsUseCase struct {
	requestRepo testrequest.Repository
	logger      logger.Interface
}

func NewListTestRequestsUseCase(requestRepo testrequest.Repository, logger logger.Interface) *ListTestRequestsUseCase {
	return &ListTestRequestsUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *ListTestRequestsUseCase) Execute(ctx context.Context, query ListTestRequestsQuery) (*ListTestRequestsResult, error) {
	p := utils.ValidatePagination(query.Page, query.PageSize)

	filter := testrequest.Filter{
		CustomerName: query.CustomerName,
		Page:         p.Page,
		PageSize:     p.PageSize,
	}
	if query.Status != "" {
		if !testrequest.Status(query.Status).IsValid() {
			return nil, errors.NewValidationError("invalid status filter")
		}
		filter.Status = &query.Status
	}

	requests, total, err := uc.requestRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list test requests", "error", err)
		return nil, errors.NewInternalError("failed to list test requests")
	}

	return &ListTestRequestsResult{
		Requests: appdto.FromEntities(requests),
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}
