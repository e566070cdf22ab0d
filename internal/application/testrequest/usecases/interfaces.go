package usecases

import "context"

type CreateTestRequestExecutor interface {
	Execute(ctx context.Context, cmd CreateTestRequestCommand) (*CreateTestRequestResult, error)
}

type UpdateTestRequestExecutor interface {
	Execute(ctx context.Context, cmd UpdateTestRequestCommand) (*UpdateTestRequestResult, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error)
}

type GetTestRequestExecutor interface {
	Execute(ctx context.Context, query GetTestRequestQuery) (*GetTestRequestResult, error)
}

type ListTestRequestsExecutor interface {
	Execute(ctx context.Context, query ListTestRequestsQuery) (*ListTestRequestsResult, error)
}

type DeleteTestRequestExecutor interface {
	Execute(ctx context.Context, cmd DeleteTestRequestCommand) (*DeleteTestRequestResult, error)
}
