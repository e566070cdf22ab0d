package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "labtrace/internal/domain/uut/valueobjects"
	"labtrace/internal/shared/errors"
)

func registerUnit(t *testing.T, store *memUnitStore) uint {
	t.Helper()

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
	return result.Unit.ID
}

func TestCheckoutUnit_RecordsFullCheckout(t *testing.T) {
	store := newMemUnitStore()
	id := registerUnit(t, store)

	useCase := NewCheckoutUnitUseCase(store, testClock(), &mockLogger{})
	result, err := useCase.Execute(context.Background(), CheckoutUnitCommand{
		UnitID: id,
		Status: vo.CheckoutFull.String(),
	})

	require.NoError(t, err)
	assert.Equal(t, vo.CheckoutFull.String(), result.Unit.CheckoutStatus)
	require.NotNil(t, result.Unit.CheckoutAt)

	// Code, sequence and day are untouched by checkout.
	assert.Equal(t, "24/CJS/UT/0503/0001", result.Unit.UUTCode)
	assert.Equal(t, 1, result.Unit.SerialOfDay)
	assert.Equal(t, "2024-03-05", result.Unit.UUTInDate)
}

func TestCheckoutUnit_PartialThenFull(t *testing.T) {
	store := newMemUnitStore()
	id := registerUnit(t, store)

	useCase := NewCheckoutUnitUseCase(store, testClock(), &mockLogger{})

	partial, err := useCase.Execute(context.Background(), CheckoutUnitCommand{
		UnitID: id,
		Status: vo.CheckoutPartial.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, vo.CheckoutPartial.String(), partial.Unit.CheckoutStatus)

	full, err := useCase.Execute(context.Background(), CheckoutUnitCommand{
		UnitID: id,
		Status: vo.CheckoutFull.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, vo.CheckoutFull.String(), full.Unit.CheckoutStatus)
}

func TestCheckoutUnit_RejectsInvalidStatus(t *testing.T) {
	useCase := NewCheckoutUnitUseCase(newMemUnitStore(), testClock(), &mockLogger{})

	for _, status := range []string{"", "gone", vo.CheckoutNone.String()} {
		result, err := useCase.Execute(context.Background(), CheckoutUnitCommand{
			UnitID: 1,
			Status: status,
		})
		require.Error(t, err, "status %q", status)
		assert.Nil(t, result)
		assert.True(t, errors.IsValidationError(err))
	}
}

func TestCheckoutUnit_RejectsDoubleFullCheckout(t *testing.T) {
	store := newMemUnitStore()
	id := registerUnit(t, store)

	useCase := NewCheckoutUnitUseCase(store, testClock(), &mockLogger{})

	_, err := useCase.Execute(context.Background(), CheckoutUnitCommand{
		UnitID: id,
		Status: vo.CheckoutFull.String(),
	})
	require.NoError(t, err)

	result, err := useCase.Execute(context.Background(), CheckoutUnitCommand{
		UnitID: id,
		Status: vo.CheckoutPartial.String(),
	})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}
