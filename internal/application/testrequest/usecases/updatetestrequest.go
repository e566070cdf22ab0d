package usecases

import (
	"context"
	"strings"

	appdto "labtrace/internal/application/testrequest/dto"
	"labtrace/internal/domain/testrequest"
	"labtrace/internal/shared/biztime"
	"labtrace/internal/shared/errors"
	"labtrace/internal/shared/logger"
)

type UpdateTestRequestCommand struct {
	RequestID   uint
	ProjectName string
	Description string
}

type UpdateTestRequestResult struct {
	Request *appdto.TestRequestDTO `json:"request"`
	Message string                 `json:"message"`
}

type UpdateTestRequestUseCase struct {
	requestRepo testrequest.Repository
	logger      logger.Interface
}

func NewUpdateTestRequestUseCase(requestRepo testrequest.Repository, logger logger.Interface) *UpdateTestRequestUseCase {
	return &UpdateTestRequestUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *UpdateTestRequestUseCase) Execute(ctx context.Context, cmd UpdateTestRequestCommand) (*UpdateTestRequestResult, error) {
	req, err := uc.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}

	if err := req.UpdateDetails(strings.TrimSpace(cmd.ProjectName), strings.TrimSpace(cmd.Description), biztime.NowUTC()); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.requestRepo.Update(ctx, req); err != nil {
		uc.logger.Errorw("failed to update test request", "request_id", cmd.RequestID, "error", err)
		return nil, errors.NewInternalError("failed to update test request")
	}

	return &UpdateTestRequestResult{
		Request: appdto.FromEntity(req),
		Message: "Test request updated successfully",
	}, nil
}
