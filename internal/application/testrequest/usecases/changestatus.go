package usecases

import (
	"context"

	appdto "labtrace/internal/application/testrequest/dto"
	"labtrace/internal/domain/testrequest"
	"labtrace/internal/shared/biztime"
	"labtrace/internal/shared/errors"
	"labtrace/internal/shared/logger"
)

type ChangeStatusCommand struct {
	RequestID uint
	Status    string
}

type ChangeStatusResult struct {
	Request *appdto.TestRequestDTO `json:"request"`
	Message string                 `json:"message"`
}

type ChangeStatusUseCase struct {
	requestRepo testrequest.Repository
	logger      logger.Interface
}

func NewChangeStatusUseCase(requestRepo testrequest.Repository, logger logger.Interface) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	status := testrequest.Status(cmd.Status)
	if !status.IsValid() {
		return nil, errors.NewValidationError("invalid status")
	}

	req, err := uc.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}

	if err := req.ChangeStatus(status, biztime.NowUTC()); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.requestRepo.Update(ctx, req); err != nil {
		uc.logger.Errorw("failed to update test request status", "request_id", cmd.RequestID, "error", err)
		return nil, errors.NewInternalError("failed to update test request")
	}

	uc.logger.Infow("test request status changed",
		"request_id", req.ID(),
		"status", status.String())

	return &ChangeStatusResult{
		Request: appdto.FromEntity(req),
		Message: "Status updated successfully",
	}, nil
}
