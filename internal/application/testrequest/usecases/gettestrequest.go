package usecases

import (
	"context"

	appdto "labtrace/internal/application/testrequest/dto"
	"labtrace/internal/domain/testrequest"
	"labtrace/internal/shared/logger"
)

type GetTestRequestQuery struct {
	RequestID uint
}

type GetTestRequestResult struct {
	Request *appdto.TestRequestDTO `json:"request"`
}

type GetTestRequestUseCase struct {
	requestRepo testrequest.Repository
	logger      logger.Interface
}

func NewGetTestRequestUseCase(requestRepo testrequest.Repository, logger logger.Interface) *GetTestRequestUseCase {
	return &GetTestRequestUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *GetTestRequestUseCase) Execute(ctx context.Context, query GetTestRequestQuery) (*GetTestRequestResult, error) {
	req, err := uc.requestRepo.GetByID(ctx, query.RequestID)
	if err != nil {
		return nil, err
	}
	return &GetTestRequestResult{Request: appdto.FromEntity(req)}, nil
}
