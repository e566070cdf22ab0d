package usecases

import (
	"context"
	"errors"

	"labtrace/internal/domain/testrequest"
	"labtrace/internal/shared/logger"
)

type mockTestRequestRepository struct {
	SaveFunc    func(ctx context.Context, req *testrequest.TestRequest) error
	UpdateFunc  func(ctx context.Context, req *testrequest.TestRequest) error
	GetByIDFunc func(ctx context.Context, id uint) (*testrequest.TestRequest, error)
	ListFunc    func(ctx context.Context, filter testrequest.Filter) ([]*testrequest.TestRequest, int64, error)
	DeleteFunc  func(ctx context.Context, id uint) error
}

func (m *mockTestRequestRepository) Save(ctx context.Context, req *testrequest.TestRequest) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, req)
	}
	return req.SetID(1)
}

func (m *mockTestRequestRepository) Update(ctx context.Context, req *testrequest.TestRequest) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, req)
	}
	return nil
}

func (m *mockTestRequestRepository) GetByID(ctx context.Context, id uint) (*testrequest.TestRequest, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("test request not found")
}

func (m *mockTestRequestRepository) List(ctx context.Context, filter testrequest.Filter) ([]*testrequest.TestRequest, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTestRequestRepository) Delete(ctx context.Context, id uint) error {
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
