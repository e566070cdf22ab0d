package usecases

import (
	"context"
	"errors"

	"labtrace/internal/domain/equipment"
	"labtrace/internal/shared/logger"
)

type mockEquipmentRepository struct {
	SaveFunc              func(ctx context.Context, eq *equipment.Equipment) error
	UpdateFunc            func(ctx context.Context, eq *equipment.Equipment) error
	GetByIDFunc           func(ctx context.Context, id uint) (*equipment.Equipment, error)
	GetByTagNumberFunc    func(ctx context.Context, tagNumber string) (*equipment.Equipment, error)
	ExistsByTagNumberFunc func(ctx context.Context, tagNumber string) (bool, error)
	ListFunc              func(ctx context.Context, filter equipment.Filter) ([]*equipment.Equipment, int64, error)
	DeleteFunc            func(ctx context.Context, id uint) error
}

func (m *mockEquipmentRepository) Save(ctx context.Context, eq *equipment.Equipment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, eq)
	}
	return eq.SetID(1)
}

func (m *mockEquipmentRepository) Update(ctx context.Context, eq *equipment.Equipment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, eq)
	}
	return nil
}

func (m *mockEquipmentRepository) GetByID(ctx context.Context, id uint) (*equipment.Equipment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("equipment not found")
}

func (m *mockEquipmentRepository) GetByTagNumber(ctx context.Context, tagNumber string) (*equipment.Equipment, error) {
	if m.GetByTagNumberFunc != nil {
		return m.GetByTagNumberFunc(ctx, tagNumber)
	}
	return nil, errors.New("equipment not found")
}

func (m *mockEquipmentRepository) ExistsByTagNumber(ctx context.Context, tagNumber string) (bool, error) {
	if m.ExistsByTagNumberFunc != nil {
		return m.ExistsByTagNumberFunc(ctx, tagNumber)
	}
	return false, nil
}

func (m *mockEquipmentRepository) List(ctx context.Context, filter equipment.Filter) ([]*equipment.Equipment, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockEquipmentRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
