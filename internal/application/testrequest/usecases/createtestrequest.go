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

type CreateTestRequestCommand struct {
	CustomerName string
	TestTypeName string
	TestTypeCode string
	ProjectName  string
	Description  string
}

type CreateTestRequestResult struct {
	Request *appdto.TestRequestDTO `json:"request"`
	Message string                 `json:"message"`
}

type CreateTestRequestUseCase struct {
	requestRepo testrequest.Repository
	logger      logger.Interface
}

func NewCreateTestRequestUseCase(requestRepo testrequest.Repository, logger logger.Interface) *CreateTestRequestUseCase {
	return &CreateTestRequestUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *CreateTestRequestUseCase) Execute(ctx context.Context, cmd CreateTestRequestCommand) (*CreateTestRequestResult, error) {
	req, err := testrequest.NewTestRequest(
		strings.TrimSpace(cmd.CustomerName),
		strings.TrimSpace(cmd.TestTypeName),
		strings.ToUpper(strings.TrimSpace(cmd.TestTypeCode)),
		strings.TrimSpace(cmd.ProjectName),
		strings.TrimSpace(cmd.Description),
		biztime.NowUTC(),
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.requestRepo.Save(ctx, req); err != nil {
		uc.logger.Errorw("failed to save test request", "customer", cmd.CustomerName, "error", err)
		return nil, errors.NewInternalError("failed to save test request")
	}

	uc.logger.Infow("test request created", "request_id", req.ID(), "customer", req.CustomerName())

	return &CreateTestRequestResult{
		Request: appdto.FromEntity(req),
		Message: "Test request created successfully",
	}, nil
}
