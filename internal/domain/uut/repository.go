package uut

import (
	"context"
	"time"
)

// Repository persists units under test. MaxSerialOfDay and Save both honor a
// context-carried transaction, which is what makes the allocator's
// read-then-insert section atomic: the backing store must enforce a compound
// uniqueness constraint on (in_date_day, serial_of_day) so that concurrent
// inserts surface as duplicate-key errors rather than silently interleaving.
type Repository interface {
	// Save inserts the unit and assigns its generated identity.
	Save(ctx context.Context, unit *UnitUnderTest) error
	// Update persists mutable state (checkout) of an existing unit.
	Update(ctx context.Context, unit *UnitUnderTest) error
	// MaxSerialOfDay returns the highest serial already committed for the
	// given day bucket, or zero when the day has no records.
	MaxSerialOfDay(ctx context.Context, day time.Time) (int, error)
	// ExistsBySerialNo reports whether the external serial number is already
	// registered.
	ExistsBySerialNo(ctx context.Context, serialNo string) (bool, error)
	GetByID(ctx context.Context, id uint) (*UnitUnderTest, error)
	GetByCode(ctx context.Context, uutCode string) (*UnitUnderTest, error)
	List(ctx context.Context, filter Filter) ([]*UnitUnderTest, int64, error)
}

// Filter narrows List queries.
type Filter struct {
	CustomerName *string
	TestTypeCode *string
	Day          *time.Time
	Checkout     *string
	Page         int
	PageSize     int
}
