package usecases

import (
	"context"
	"fmt"

	appdto "labtrace/internal/application/uut/dto"
	"labtrace/internal/domain/uut"
	"labtrace/internal/shared/constants"
	"labtrace/internal/shared/db"
	"labtrace/internal/shared/errors"
	"labtrace/internal/shared/logger"
)

type ConfirmRegistrationCommand struct {
	RegistrationCommand
	// ExpectedUUTCode is the code the caller observed from preview. The
	// commit only proceeds when the authoritative code still matches it.
	ExpectedUUTCode string
}

type ConfirmRegistrationResult struct {
	Unit    *appdto.UnitDTO `json:"unit"`
	Message string          `json:"message"`
}

// ConfirmRegistrationUseCase durably creates a unit record. Each attempt
// re-reads the day's maximum sequence inside a transaction, recomputes the
// code, verifies it against the previewed one, and inserts. A duplicate-key
// failure means a concurrent commit won the race for the same sequence (or
// serial number); the attempt is discarded and the loop runs again, up to
// maxAttempts. Sequence values are never cached across attempts.
type ConfirmRegistrationUseCase struct {
	unitRepo    uut.Repository
	tx          db.Transactor
	clock       uut.Clock
	maxAttempts int
	logger      logger.Interface
}

func NewConfirmRegistrationUseCase(
	unitRepo uut.Repository,
	tx db.Transactor,
	clock uut.Clock,
	maxAttempts int,
	logger logger.Interface,
) *ConfirmRegistrationUseCase {
	if maxAttempts < 1 {
		maxAttempts = constants.DefaultAllocatorMaxAttempts
	}
	return &ConfirmRegistrationUseCase{
		unitRepo:    unitRepo,
		tx:          tx,
		clock:       clock,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

func (uc *ConfirmRegistrationUseCase) Execute(ctx context.Context, cmd ConfirmRegistrationCommand) (*ConfirmRegistrationResult, error) {
	if cmd.ExpectedUUTCode == "" {
		return nil, errors.NewValidationError("expected uut code is required")
	}

	fields, err := validateRegistration(cmd.RegistrationCommand, uc.clock)
	if err != nil {
		uc.logger.Warnw("invalid confirm command", "error", err)
		return nil, err
	}

	// Cheap pre-check outside the transaction; the unique index on serial_no
	// remains the authority for races between this check and the insert.
	exists, err := uc.unitRepo.ExistsBySerialNo(ctx, fields.serialNo)
	if err != nil {
		uc.logger.Errorw("failed to check serial number", "serial_no", fields.serialNo, "error", err)
		return nil, errors.NewInternalError("failed to check serial number")
	}
	if exists {
		return nil, errors.NewDuplicateSerialError(fields.serialNo)
	}

	for attempt := 1; attempt <= uc.maxAttempts; attempt++ {
		unit, err := uc.attemptCommit(ctx, fields, cmd.ExpectedUUTCode)
		if err == nil {
			uc.logger.Infow("unit registered",
				"uut_code", unit.UUTCode(),
				"serial_no", unit.SerialNo(),
				"serial_of_day", unit.SerialOfDay(),
				"attempt", attempt)
			return &ConfirmRegistrationResult{
				Unit:    appdto.FromEntity(unit),
				Message: fmt.Sprintf("Unit registered with code %s", unit.UUTCode()),
			}, nil
		}

		switch classifyCommitError(err) {
		case outcomeRetry:
			uc.logger.Warnw("commit attempt lost a sequence race, retrying",
				"serial_no", fields.serialNo,
				"attempt", attempt,
				"error", err)
			continue
		case outcomeCodeChanged:
			uc.logger.Infow("previewed code is stale",
				"serial_no", fields.serialNo,
				"expected_code", cmd.ExpectedUUTCode)
			return nil, err
		default:
			if errors.IsAppError(err) {
				return nil, err
			}
			uc.logger.Errorw("commit attempt failed", "serial_no", fields.serialNo, "error", err)
			return nil, errors.NewInternalError("failed to register unit")
		}
	}

	uc.logger.Warnw("confirm retries exhausted",
		"serial_no", fields.serialNo,
		"attempts", uc.maxAttempts)
	return nil, errors.NewConflictError(
		"registration conflicted with concurrent requests, please try again")
}

// attemptCommit runs one transactional attempt: authoritative sequence read,
// code verification, insert.
func (uc *ConfirmRegistrationUseCase) attemptCommit(ctx context.Context, fields *registrationFields, expectedCode string) (*uut.UnitUnderTest, error) {
	var unit *uut.UnitUnderTest

	err := uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		maxSerial, err := uc.unitRepo.MaxSerialOfDay(txCtx, fields.inDateDay)
		if err != nil {
			return fmt.Errorf("failed to read day sequence: %w", err)
		}

		nextSerial := maxSerial + 1
		if nextSerial > constants.MaxSerialOfDay {
			return errors.NewDailyOverflowError(
				fmt.Sprintf("daily sequence space exhausted (%d)", constants.MaxSerialOfDay))
		}

		code, err := fields.formatCode(nextSerial)
		if err != nil {
			return errors.NewInternalError("failed to format uut code", err.Error())
		}
		if code != expectedCode {
			return errors.NewCodeChangedError(expectedCode, code)
		}

		unit, err = uut.NewUnitUnderTest(
			fields.serialNo,
			fields.challanNo,
			fields.inDateDay,
			nextSerial,
			code,
			fields.customerName,
			fields.customerCode,
			fields.testTypeName,
			fields.testTypeCode,
			fields.projectName,
			fields.description,
			fields.uutType,
			fields.uutSrNo,
			fields.quantity,
			uc.clock.Now(),
		)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		return uc.unitRepo.Save(txCtx, unit)
	})
	if err != nil {
		return nil, err
	}

	return unit, nil
}
