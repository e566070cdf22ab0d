package usecases

import "context"

type CreateEquipmentExecutor interface {
	Execute(ctx context.Context, cmd CreateEquipmentCommand) (*CreateEquipmentResult, error)
}

type UpdateEquipmentExecutor interface {
	Execute(ctx context.Context, cmd UpdateEquipmentCommand) (*UpdateEquipmentResult, error)
}

type RecordCalibrationExecutor interface {
	Execute(ctx context.Context, cmd RecordCalibrationCommand) (*RecordCalibrationResult, error)
}

type GetEquipmentExecutor interface {
	Execute(ctx context.Context, query GetEquipmentQuery) (*GetEquipmentResult, error)
}

type ListEquipmentExecutor interface {
	Execute(ctx context.Context, query ListEquipmentQuery) (*ListEquipmentResult, error)
}

type DeleteEquipmentExecutor interface {
	Execute(ctx context.Context, cmd DeleteEquipmentCommand) (*DeleteEquipmentResult, error)
}
