package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labtrace/internal/domain/uut"
	"labtrace/internal/shared/errors"
)

func confirmCommand(expectedCode string) ConfirmRegistrationCommand {
	return ConfirmRegistrationCommand{
		RegistrationCommand: validCommand(),
		ExpectedUUTCode:     expectedCode,
	}
}

func duplicateKeyErr() error {
	return fmt.Errorf("Error 1062 (23000): Duplicate entry '2024-03-05-1' for key 'uq_uut_day_serial'")
}

func TestConfirmRegistration_CommitsPreviewedCode(t *testing.T) {
	store := newMemUnitStore()
	clock := testClock()
	log := &mockLogger{}

	preview := NewPreviewRegistrationUseCase(store, clock, log)
	confirm := NewConfirmRegistrationUseCase(store, &passthroughTransactor{}, clock, 5, log)

	previewed, err := preview.Execute(context.Background(), PreviewRegistrationCommand{
		RegistrationCommand: validCommand(),
	})
	require.NoError(t, err)

	result, err := confirm.Execute(context.Background(), confirmCommand(previewed.UUTCode))
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, previewed.UUTCode, result.Unit.UUTCode)
	assert.Equal(t, 1, result.Unit.SerialOfDay)
	assert.Equal(t, "JS", result.Unit.CustomerCode)
	assert.NotZero(t, result.Unit.ID)
	assert.Contains(t, result.Message, previewed.UUTCode)

	persisted, err := store.GetByCode(context.Background(), previewed.UUTCode)
	require.NoError(t, err)
	assert.Equal(t, "SN-100", persisted.SerialNo())
}

func TestConfirmRegistration_StaleCodeAfterCommit(t *testing.T) {
	store := newMemUnitStore()
	clock := testClock()
	log := &mockLogger{}

	preview := NewPreviewRegistrationUseCase(store, clock, log)
	confirm := NewConfirmRegistrationUseCase(store, &passthroughTransactor{}, clock, 5, log)

	previewed, err := preview.Execute(context.Background(), PreviewRegistrationCommand{
		RegistrationCommand: validCommand(),
	})
	require.NoError(t, err)

	_, err = confirm.Execute(context.Background(), confirmCommand(previewed.UUTCode))
	require.NoError(t, err)

	// A second confirm reusing the stale previewed code must fail with
	// code_changed, not silently commit under a different code.
	second := confirmCommand(previewed.UUTCode)
	second.SerialNo = "SN-101"

	result, err := confirm.Execute(context.Background(), second)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsCodeChangedError(err), "expected code_changed, got %v", err)

	// Nothing extra was persisted for the failed confirm.
	_, total, err := store.List(context.Background(), uut.Filter{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestConfirmRegistration_MissingExpectedCode(t *testing.T) {
	confirm := NewConfirmRegistrationUseCase(&mockUnitRepository{}, &passthroughTransactor{}, testClock(), 5, &mockLogger{})

	result, err := confirm.Execute(context.Background(), confirmCommand(""))

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}

func TestConfirmRegistration_DuplicateSerialPreCheck(t *testing.T) {
	repo := &mockUnitRepository{
		ExistsBySerialNoFunc: func(ctx context.Context, serialNo string) (bool, error) {
			return true, nil
		},
	}
	confirm := NewConfirmRegistrationUseCase(repo, &passthroughTransactor{}, testClock(), 5, &mockLogger{})

	result, err := confirm.Execute(context.Background(), confirmCommand("24/CJS/UT/0503/0001"))

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeDuplicateSerial, appErr.Type)
}

func TestConfirmRegistration_LostRaceThenCodeChanged(t *testing.T) {
	// Attempt 1 reads max 0, formats the expected code, but the insert hits a
	// duplicate because a concurrent commit claimed the sequence. Attempt 2
	// reads max 1, recomputes sequence 2 and the code no longer matches the
	// previewed one, so the loop stops with code_changed instead of retrying.
	var reads int
	repo := &mockUnitRepository{
		MaxSerialOfDayFunc: func(ctx context.Context, day time.Time) (int, error) {
			reads++
			if reads == 1 {
				return 0, nil
			}
			return 1, nil
		},
		SaveFunc: func(ctx context.Context, unit *uut.UnitUnderTest) error {
			return duplicateKeyErr()
		},
	}
	confirm := NewConfirmRegistrationUseCase(repo, &passthroughTransactor{}, testClock(), 5, &mockLogger{})

	result, err := confirm.Execute(context.Background(), confirmCommand("24/CJS/UT/0503/0001"))

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsCodeChangedError(err), "expected code_changed, got %v", err)
	assert.Equal(t, 2, reads)
}

func TestConfirmRegistration_RetryExhaustion(t *testing.T) {
	const maxAttempts = 5

	// Every attempt reads max 0 (so the code always matches) and every insert
	// collides. The loop must run exactly maxAttempts times, then give up with
	// a generic conflict.
	var attempts int
	repo := &mockUnitRepository{
		SaveFunc: func(ctx context.Context, unit *uut.UnitUnderTest) error {
			attempts++
			return duplicateKeyErr()
		},
	}
	confirm := NewConfirmRegistrationUseCase(repo, &passthroughTransactor{}, testClock(), maxAttempts, &mockLogger{})

	result, err := confirm.Execute(context.Background(), confirmCommand("24/CJS/UT/0503/0001"))

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsConflictError(err), "expected conflict, got %v", err)
	assert.Equal(t, maxAttempts, attempts, "all retries must be attempted")
}

func TestConfirmRegistration_OverflowIsNotRetried(t *testing.T) {
	var reads, saves int
	repo := &mockUnitRepository{
		MaxSerialOfDayFunc: func(ctx context.Context, day time.Time) (int, error) {
			reads++
			return 9999, nil
		},
		SaveFunc: func(ctx context.Context, unit *uut.UnitUnderTest) error {
			saves++
			return nil
		},
	}
	confirm := NewConfirmRegistrationUseCase(repo, &passthroughTransactor{}, testClock(), 5, &mockLogger{})

	result, err := confirm.Execute(context.Background(), confirmCommand("24/CJS/UT/0503/0001"))

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsDailyOverflowError(err))
	assert.Equal(t, 1, reads, "overflow must fail on the first attempt")
	assert.Zero(t, saves)
}

func TestConfirmRegistration_LastSlotOfDayCommits(t *testing.T) {
	var saved *uut.UnitUnderTest
	repo := &mockUnitRepository{
		MaxSerialOfDayFunc: func(ctx context.Context, day time.Time) (int, error) {
			return 9998, nil
		},
		SaveFunc: func(ctx context.Context, unit *uut.UnitUnderTest) error {
			saved = unit
			return unit.SetID(42)
		},
	}
	confirm := NewConfirmRegistrationUseCase(repo, &passthroughTransactor{}, testClock(), 5, &mockLogger{})

	result, err := confirm.Execute(context.Background(), confirmCommand("24/CJS/UT/0503/9999"))

	require.NoError(t, err)
	assert.Equal(t, 9999, result.Unit.SerialOfDay)
	require.NotNil(t, saved)
	assert.Equal(t, "24/CJS/UT/0503/9999", saved.UUTCode())
}

func TestConfirmRegistration_FatalErrorSurfacesImmediately(t *testing.T) {
	var attempts int
	repo := &mockUnitRepository{
		SaveFunc: func(ctx context.Context, unit *uut.UnitUnderTest) error {
			attempts++
			return stderrors.New("dial tcp 127.0.0.1:3306: connect: connection refused")
		},
	}
	confirm := NewConfirmRegistrationUseCase(repo, &passthroughTransactor{}, testClock(), 5, &mockLogger{})

	result, err := confirm.Execute(context.Background(), confirmCommand("24/CJS/UT/0503/0001"))

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
	assert.Equal(t, 1, attempts, "fatal errors must not be retried")
}

func TestConfirmRegistration_ConcurrentClientsGetDistinctSequences(t *testing.T) {
	const clients = 24

	store := newMemUnitStore()
	clock := testClock()
	log := &mockLogger{}
	preview := NewPreviewRegistrationUseCase(store, clock, log)
	confirm := NewConfirmRegistrationUseCase(store, &passthroughTransactor{}, clock, 5, log)

	var wg sync.WaitGroup
	failures := make(chan error, clients)

	for i := 0; i < clients; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			cmd := validCommand()
			cmd.SerialNo = fmt.Sprintf("SN-%03d", i)

			// Full client flow: preview, confirm, re-preview on a stale code.
			for round := 0; round < clients*4; round++ {
				previewed, err := preview.Execute(context.Background(), PreviewRegistrationCommand{RegistrationCommand: cmd})
				if err != nil {
					failures <- fmt.Errorf("client %d preview: %w", i, err)
					return
				}

				_, err = confirm.Execute(context.Background(), ConfirmRegistrationCommand{
					RegistrationCommand: cmd,
					ExpectedUUTCode:     previewed.UUTCode,
				})
				if err == nil {
					return
				}
				if errors.IsCodeChangedError(err) || errors.IsConflictError(err) {
					continue
				}
				failures <- fmt.Errorf("client %d confirm: %w", i, err)
				return
			}
			failures <- fmt.Errorf("client %d never committed", i)
		}(i)
	}

	wg.Wait()
	close(failures)
	for err := range failures {
		t.Error(err)
	}

	units, total, err := store.List(context.Background(), uut.Filter{})
	require.NoError(t, err)
	require.EqualValues(t, clients, total)

	seqs := make(map[int]bool)
	codes := make(map[string]bool)
	for _, u := range units {
		assert.False(t, seqs[u.SerialOfDay()], "serial of day %d assigned twice", u.SerialOfDay())
		seqs[u.SerialOfDay()] = true
		assert.False(t, codes[u.UUTCode()], "uut code %s assigned twice", u.UUTCode())
		codes[u.UUTCode()] = true
		assert.GreaterOrEqual(t, u.SerialOfDay(), 1)
		assert.LessOrEqual(t, u.SerialOfDay(), clients)
	}
}
