package usecases

import (
	"context"
	"fmt"

	"labtrace/internal/domain/uut"
	"labtrace/internal/shared/constants"
	"labtrace/internal/shared/errors"
	"labtrace/internal/shared/logger"
)

// PreviewNote labels every preview result so callers know the code is not
// reserved and may change before confirmation.
const PreviewNote = "non-binding preview"

type PreviewRegistrationCommand struct {
	RegistrationCommand
}

// PreviewRegistrationResult echoes the normalized fields together with the
// candidate code. Nothing is reserved or persisted.
type PreviewRegistrationResult struct {
	SerialNo       string `json:"serialNo"`
	ChallanNo      string `json:"challanNo,omitempty"`
	UUTInDate      string `json:"uutInDate"`
	CustomerName   string `json:"customerName"`
	CustomerCode   string `json:"customerCode"`
	TestTypeName   string `json:"testTypeName"`
	TestTypeCode   string `json:"testTypeCode"`
	ProjectName    string `json:"projectName"`
	UUTDescription string `json:"uutDescription,omitempty"`
	UUTType        string `json:"uutType"`
	UUTSrNo        string `json:"uutSrNo,omitempty"`
	UUTQty         int    `json:"uutQty"`
	SerialOfDay    int    `json:"serialOfDay"`
	UUTCode        string `json:"uutCode"`
	Note           string `json:"note"`
}

// PreviewRegistrationUseCase computes a candidate code for a unit without
// reserving it. The sequence read runs outside any transaction; the result can
// go stale the moment a concurrent registration commits.
type PreviewRegistrationUseCase struct {
	unitRepo uut.Repository
	clock    uut.Clock
	logger   logger.Interface
}

func NewPreviewRegistrationUseCase(
	unitRepo uut.Repository,
	clock uut.Clock,
	logger logger.Interface,
) *PreviewRegistrationUseCase {
	return &PreviewRegistrationUseCase{
		unitRepo: unitRepo,
		clock:    clock,
		logger:   logger,
	}
}

func (uc *PreviewRegistrationUseCase) Execute(ctx context.Context, cmd PreviewRegistrationCommand) (*PreviewRegistrationResult, error) {
	fields, err := validateRegistration(cmd.RegistrationCommand, uc.clock)
	if err != nil {
		uc.logger.Warnw("invalid preview command", "error", err)
		return nil, err
	}

	exists, err := uc.unitRepo.ExistsBySerialNo(ctx, fields.serialNo)
	if err != nil {
		uc.logger.Errorw("failed to check serial number", "serial_no", fields.serialNo, "error", err)
		return nil, errors.NewInternalError("failed to check serial number")
	}
	if exists {
		return nil, errors.NewDuplicateSerialError(fields.serialNo)
	}

	maxSerial, err := uc.unitRepo.MaxSerialOfDay(ctx, fields.inDateDay)
	if err != nil {
		uc.logger.Errorw("failed to read day sequence", "day", fields.inDateDay, "error", err)
		return nil, errors.NewInternalError("failed to read day sequence")
	}

	nextSerial := maxSerial + 1
	if nextSerial > constants.MaxSerialOfDay {
		return nil, errors.NewDailyOverflowError(
			fmt.Sprintf("daily sequence space exhausted (%d)", constants.MaxSerialOfDay))
	}

	code, err := fields.formatCode(nextSerial)
	if err != nil {
		return nil, errors.NewInternalError("failed to format uut code", err.Error())
	}

	uc.logger.Debugw("previewed registration code",
		"serial_no", fields.serialNo,
		"day", fields.inDateDay.Format("2006-01-02"),
		"serial_of_day", nextSerial,
		"uut_code", code)

	return &PreviewRegistrationResult{
		SerialNo:       fields.serialNo,
		ChallanNo:      fields.challanNo,
		UUTInDate:      fields.inDateDay.Format("2006-01-02"),
		CustomerName:   fields.customerName,
		CustomerCode:   fields.customerCode.String(),
		TestTypeName:   fields.testTypeName,
		TestTypeCode:   fields.testTypeCode.String(),
		ProjectName:    fields.projectName,
		UUTDescription: fields.description,
		UUTType:        fields.uutType.String(),
		UUTSrNo:        fields.uutSrNo,
		UUTQty:         fields.quantity,
		SerialOfDay:    nextSerial,
		UUTCode:        code,
		Note:           PreviewNote,
	}, nil
}
