package equipment

import (
	"context"
	"time"
)

// Filter narrows equipment listings.
type Filter struct {
	Status   *string
	Location string
	// DueBefore selects equipment whose calibration is due at or before the
	// given instant, including never-calibrated items.
	DueBefore *time.Time
	Page      int
	PageSize  int
}

type Repository interface {
	Save(ctx context.Context, eq *Equipment) error
	Update(ctx context.Context, eq *Equipment) error
	GetByID(ctx context.Context, id uint) (*Equipment, error)
	GetByTagNumber(ctx context.Context, tagNumber string) (*Equipment, error)
	ExistsByTagNumber(ctx context.Context, tagNumber string) (bool, error)
	List(ctx context.Context, filter Filter) ([]*Equipment, int64, error)
	Delete(ctx context.Context, id uint) error
}
