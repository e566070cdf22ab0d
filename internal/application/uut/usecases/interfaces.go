package usecases

import (
	"context"

	appdto "labtrace/internal/application/uut/dto"
)

type PreviewRegistrationExecutor interface {
	Execute(ctx context.Context, cmd PreviewRegistrationCommand) (*PreviewRegistrationResult, error)
}

type ConfirmRegistrationExecutor interface {
	Execute(ctx context.Context, cmd ConfirmRegistrationCommand) (*ConfirmRegistrationResult, error)
}

type GetUnitExecutor interface {
	Execute(ctx context.Context, query GetUnitQuery) (*appdto.UnitDTO, error)
}

type ListUnitsExecutor interface {
	Execute(ctx context.Context, query ListUnitsQuery) (*ListUnitsResult, error)
}

type CheckoutUnitExecutor interface {
	Execute(ctx context.Context, cmd CheckoutUnitCommand) (*CheckoutUnitResult, error)
}
