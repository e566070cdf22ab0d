package usecases

import (
	"context"

	"labtrace/internal/domain/testrequest"
	"labtrace/internal/shared/errors"
	"labtrace/internal/shared/logger"
)

type DeleteTestRequestCommand struct {
	RequestID uint
}

type DeleteTestRequestResult struct {
	Message string `json:"message"`
}

type DeleteTestRequestUseCase struct {
	requestRepo testrequest.Repository
	logger      logger.Interface
}

func NewDeleteTestRequestUseCase(requestRepo testrequest.Repository, logger logger.Interface) *DeleteTestRequestUseCase {
	return &DeleteTestRequestUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *DeleteTestRequestUseCase) Execute(ctx context.Context, cmd DeleteTestRequestCommand) (*DeleteTestRequestResult, error) {
	req, err := uc.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}

	// Approved requests feed registration; only requests that never
	// entered the lab flow can be removed.
	if req.Status() != testrequest.StatusNew && req.Status() != testrequest.StatusRejected {
		return nil, errors.NewValidationError("only new or rejected requests can be deleted")
	}

	if err := uc.requestRepo.Delete(ctx, cmd.RequestID); err != nil {
		uc.logger.Errorw("failed to delete test request", "request_id", cmd.RequestID, "error", err)
		return nil, errors.NewInternalError("failed to delete test request")
	}

	uc.logger.Infow("test request deleted", "request_id", cmd.RequestID)

	return &DeleteTestRequestResult{Message: "Test request deleted successfully"}, nil
}
