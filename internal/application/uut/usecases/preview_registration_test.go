package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labtrace/internal/domain/uut"
	"labtrace/internal/shared/errors"
)

func validCommand() RegistrationCommand {
	return RegistrationCommand{
		SerialNo:     "SN-100",
		CustomerName: "John Smith",
		TestTypeName: "Conducted Emission",
		TestTypeCode: "C",
		ProjectName:  "Radar Unit Qualification",
		UUTType:      "UT",
		UUTQty:       1,
		UUTInDate:    "2024-03-05",
	}
}

func testClock() uut.FixedClock {
	return uut.FixedClock{Instant: time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)}
}

func TestPreviewRegistration_FirstOfDay(t *testing.T) {
	useCase := NewPreviewRegistrationUseCase(&mockUnitRepository{}, testClock(), &mockLogger{})

	result, err := useCase.Execute(context.Background(), PreviewRegistrationCommand{
		RegistrationCommand: validCommand(),
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 1, result.SerialOfDay)
	assert.Equal(t, "JS", result.CustomerCode)
	assert.Equal(t, "24/CJS/UT/0503/0001", result.UUTCode)
	assert.Equal(t, PreviewNote, result.Note)
	assert.Equal(t, "SN-100", result.SerialNo)
	assert.Equal(t, "2024-03-05", result.UUTInDate)
	assert.Equal(t, 1, result.UUTQty)
}

func TestPreviewRegistration_ContinuesDaySequence(t *testing.T) {
	repo := &mockUnitRepository{
		MaxSerialOfDayFunc: func(ctx context.Context, day time.Time) (int, error) {
			return 41, nil
		},
	}
	useCase := NewPreviewRegistrationUseCase(repo, testClock(), &mockLogger{})

	result, err := useCase.Execute(context.Background(), PreviewRegistrationCommand{
		RegistrationCommand: validCommand(),
	})

	require.NoError(t, err)
	assert.Equal(t, 42, result.SerialOfDay)
	assert.Equal(t, "24/CJS/UT/0503/0042", result.UUTCode)
}

func TestPreviewRegistration_DefaultsToToday(t *testing.T) {
	cmd := validCommand()
	cmd.UUTInDate = ""

	var queriedDay time.Time
	repo := &mockUnitRepository{
		MaxSerialOfDayFunc: func(ctx context.Context, day time.Time) (int, error) {
			queriedDay = day
			return 0, nil
		},
	}
	useCase := NewPreviewRegistrationUseCase(repo, testClock(), &mockLogger{})

	result, err := useCase.Execute(context.Background(), PreviewRegistrationCommand{RegistrationCommand: cmd})

	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", queriedDay.Format("2006-01-02"))
	assert.Equal(t, "2024-03-05", result.UUTInDate)
}

func TestPreviewRegistration_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cmd *RegistrationCommand)
	}{
		{
			name:   "missing serial number",
			mutate: func(cmd *RegistrationCommand) { cmd.SerialNo = "" },
		},
		{
			name:   "missing customer name",
			mutate: func(cmd *RegistrationCommand) { cmd.CustomerName = "   " },
		},
		{
			name:   "missing test type name",
			mutate: func(cmd *RegistrationCommand) { cmd.TestTypeName = "" },
		},
		{
			name:   "multi-letter test type code",
			mutate: func(cmd *RegistrationCommand) { cmd.TestTypeCode = "CE" },
		},
		{
			name:   "empty test type code",
			mutate: func(cmd *RegistrationCommand) { cmd.TestTypeCode = "" },
		},
		{
			name:   "numeric test type code",
			mutate: func(cmd *RegistrationCommand) { cmd.TestTypeCode = "7" },
		},
		{
			name:   "missing project name",
			mutate: func(cmd *RegistrationCommand) { cmd.ProjectName = "" },
		},
		{
			name:   "one-letter uut type",
			mutate: func(cmd *RegistrationCommand) { cmd.UUTType = "U" },
		},
		{
			name:   "negative quantity",
			mutate: func(cmd *RegistrationCommand) { cmd.UUTQty = -2 },
		},
		{
			name:   "malformed in-date",
			mutate: func(cmd *RegistrationCommand) { cmd.UUTInDate = "05/03/2024" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := validCommand()
			tt.mutate(&cmd)

			useCase := NewPreviewRegistrationUseCase(&mockUnitRepository{}, testClock(), &mockLogger{})
			result, err := useCase.Execute(context.Background(), PreviewRegistrationCommand{RegistrationCommand: cmd})

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.IsValidationError(err), "expected validation error, got %v", err)
		})
	}
}

func TestPreviewRegistration_DuplicateSerial(t *testing.T) {
	repo := &mockUnitRepository{
		ExistsBySerialNoFunc: func(ctx context.Context, serialNo string) (bool, error) {
			return serialNo == "SN-100", nil
		},
	}
	useCase := NewPreviewRegistrationUseCase(repo, testClock(), &mockLogger{})

	result, err := useCase.Execute(context.Background(), PreviewRegistrationCommand{
		RegistrationCommand: validCommand(),
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeDuplicateSerial, appErr.Type)
}

func TestPreviewRegistration_DailyOverflow(t *testing.T) {
	repo := &mockUnitRepository{
		MaxSerialOfDayFunc: func(ctx context.Context, day time.Time) (int, error) {
			return 9999, nil
		},
	}
	useCase := NewPreviewRegistrationUseCase(repo, testClock(), &mockLogger{})

	result, err := useCase.Execute(context.Background(), PreviewRegistrationCommand{
		RegistrationCommand: validCommand(),
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsDailyOverflowError(err))
}

func TestPreviewRegistration_LastSlotOfDay(t *testing.T) {
	repo := &mockUnitRepository{
		MaxSerialOfDayFunc: func(ctx context.Context, day time.Time) (int, error) {
			return 9998, nil
		},
	}
	useCase := NewPreviewRegistrationUseCase(repo, testClock(), &mockLogger{})

	result, err := useCase.Execute(context.Background(), PreviewRegistrationCommand{
		RegistrationCommand: validCommand(),
	})

	require.NoError(t, err)
	assert.Equal(t, 9999, result.SerialOfDay)
	assert.Equal(t, "24/CJS/UT/0503/9999", result.UUTCode)
}

func TestPreviewRegistration_HasNoSideEffects(t *testing.T) {
	store := newMemUnitStore()
	useCase := NewPreviewRegistrationUseCase(store, testClock(), &mockLogger{})

	for i := 0; i < 3; i++ {
		result, err := useCase.Execute(context.Background(), PreviewRegistrationCommand{
			RegistrationCommand: validCommand(),
		})
		require.NoError(t, err)
		// Previewing never reserves: the candidate stays at 1 until a commit.
		assert.Equal(t, 1, result.SerialOfDay)
	}

	units, total, err := store.List(context.Background(), uut.Filter{})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, units)
}
