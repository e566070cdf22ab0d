package usecases

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"labtrace/internal/domain/uut"
	"labtrace/internal/shared/logger"
)

type mockUnitRepository struct {
	SaveFunc             func(ctx context.Context, unit *uut.UnitUnderTest) error
	UpdateFunc           func(ctx context.Context, unit *uut.UnitUnderTest) error
	MaxSerialOfDayFunc   func(ctx context.Context, day time.Time) (int, error)
	ExistsBySerialNoFunc func(ctx context.Context, serialNo string) (bool, error)
	GetByIDFunc          func(ctx context.Context, id uint) (*uut.UnitUnderTest, error)
	GetByCodeFunc        func(ctx context.Context, uutCode string) (*uut.UnitUnderTest, error)
	ListFunc             func(ctx context.Context, filter uut.Filter) ([]*uut.UnitUnderTest, int64, error)
}

func (m *mockUnitRepository) Save(ctx context.Context, unit *uut.UnitUnderTest) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, unit)
	}
	return nil
}

func (m *mockUnitRepository) Update(ctx context.Context, unit *uut.UnitUnderTest) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, unit)
	}
	return nil
}

func (m *mockUnitRepository) MaxSerialOfDay(ctx context.Context, day time.Time) (int, error) {
	if m.MaxSerialOfDayFunc != nil {
		return m.MaxSerialOfDayFunc(ctx, day)
	}
	return 0, nil
}

func (m *mockUnitRepository) ExistsBySerialNo(ctx context.Context, serialNo string) (bool, error) {
	if m.ExistsBySerialNoFunc != nil {
		return m.ExistsBySerialNoFunc(ctx, serialNo)
	}
	return false, nil
}

func (m *mockUnitRepository) GetByID(ctx context.Context, id uint) (*uut.UnitUnderTest, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUnitRepository) GetByCode(ctx context.Context, uutCode string) (*uut.UnitUnderTest, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, uutCode)
	}
	return nil, nil
}

func (m *mockUnitRepository) List(ctx context.Context, filter uut.Filter) ([]*uut.UnitUnderTest, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

// passthroughTransactor runs the function directly; rollback semantics are
// irrelevant because the fakes only mutate state on a successful insert.
type passthroughTransactor struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (t *passthroughTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if t.RunFunc != nil {
		return t.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

// memUnitStore is an in-memory repository that enforces the same uniqueness
// constraints as the real schema: serial_no globally, (day, serial_of_day) per
// day, uut_code globally. Violations return errors recognized by the duplicate
// classifier, which lets the confirm loop's race recovery run against real
// goroutine interleavings. Reads of the day maximum deliberately happen
// without any lock held across the subsequent insert, mirroring the
// check-then-insert window of the SQL implementation.
type memUnitStore struct {
	mu       sync.Mutex
	nextID   uint
	units    []*uut.UnitUnderTest
	serials  map[string]bool
	codes    map[string]bool
	daySeqs  map[string]map[int]bool
}

func newMemUnitStore() *memUnitStore {
	return &memUnitStore{
		serials: make(map[string]bool),
		codes:   make(map[string]bool),
		daySeqs: make(map[string]map[int]bool),
	}
}

func dayKey(day time.Time) string {
	return day.Format("2006-01-02")
}

func (s *memUnitStore) Save(ctx context.Context, unit *uut.UnitUnderTest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := dayKey(unit.InDateDay())
	if s.serials[unit.SerialNo()] {
		return fmt.Errorf("duplicate key value violates unique constraint \"uq_uut_serial_no\"")
	}
	if s.daySeqs[key][unit.SerialOfDay()] {
		return fmt.Errorf("duplicate key value violates unique constraint \"uq_uut_day_serial\"")
	}
	if s.codes[unit.UUTCode()] {
		return fmt.Errorf("duplicate key value violates unique constraint \"uq_uut_code\"")
	}

	s.nextID++
	if err := unit.SetID(s.nextID); err != nil {
		return err
	}
	s.units = append(s.units, unit)
	s.serials[unit.SerialNo()] = true
	s.codes[unit.UUTCode()] = true
	if s.daySeqs[key] == nil {
		s.daySeqs[key] = make(map[int]bool)
	}
	s.daySeqs[key][unit.SerialOfDay()] = true
	return nil
}

func (s *memUnitStore) Update(ctx context.Context, unit *uut.UnitUnderTest) error {
	return nil
}

func (s *memUnitStore) MaxSerialOfDay(ctx context.Context, day time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	max := 0
	for seq := range s.daySeqs[dayKey(day)] {
		if seq > max {
			max = seq
		}
	}
	return max, nil
}

func (s *memUnitStore) ExistsBySerialNo(ctx context.Context, serialNo string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.serials[serialNo], nil
}

func (s *memUnitStore) GetByID(ctx context.Context, id uint) (*uut.UnitUnderTest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.units {
		if u.ID() == id {
			return u, nil
		}
	}
	return nil, errors.New("unit not found")
}

func (s *memUnitStore) GetByCode(ctx context.Context, uutCode string) (*uut.UnitUnderTest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.units {
		if u.UUTCode() == uutCode {
			return u, nil
		}
	}
	return nil, errors.New("unit not found")
}

func (s *memUnitStore) List(ctx context.Context, filter uut.Filter) ([]*uut.UnitUnderTest, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*uut.UnitUnderTest, len(s.units))
	copy(out, s.units)
	return out, int64(len(out)), nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                  {}
func (m *mockLogger) Info(msg string, args ...any)                   {}
func (m *mockLogger) Warn(msg string, args ...any)                   {}
func (m *mockLogger) Error(msg string, args ...any)                  {}
func (m *mockLogger) With(args ...any) logger.Interface              { return m }
func (m *mockLogger) Named(name string) logger.Interface             { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
