package testrequest

import "context"

type Filter struct {
	CustomerName string
	Status       *string
	Page         int
	PageSize     int
}

type Repository interface {
	Save(ctx context.Context, req *TestRequest) error
	Update(ctx context.Context, req *TestRequest) error
	GetByID(ctx context.Context, id uint) (*TestRequest, error)
	List(ctx context.Context, filter Filter) ([]*TestRequest, int64, error)
	Delete(ctx context.Context, id uint) error
}
