package usecases

import (
	"strings"
	"time"

	"labtrace/internal/domain/uut"
	vo "labtrace/internal/domain/uut/valueobjects"
	"labtrace/internal/shared/biztime"
	"labtrace/internal/shared/errors"
)

// RegistrationCommand carries the caller-supplied fields shared by the preview
// and confirm operations.
type RegistrationCommand struct {
	SerialNo       string
	ChallanNo      string
	CustomerName   string
	TestTypeName   string
	TestTypeCode   string
	ProjectName    string
	UUTDescription string
	UUTType        string
	UUTSrNo        string
	UUTQty         int
	// UUTInDate optionally pins the registration day (YYYY-MM-DD, lab
	// timezone). Empty means today.
	UUTInDate string
}

// registrationFields is the validated, normalized form of a command.
type registrationFields struct {
	serialNo     string
	challanNo    string
	customerName string
	testTypeName string
	testTypeCode vo.TestTypeCode
	projectName  string
	description  string
	uutType      vo.UUTType
	uutSrNo      string
	quantity     int
	inDateDay    time.Time
	customerCode vo.CustomerCode
}

// validateRegistration checks required fields and derives the value objects.
// The day bucket is resolved from the command's in-date when present,
// otherwise from the injected clock.
func validateRegistration(cmd RegistrationCommand, clock uut.Clock) (*registrationFields, error) {
	f := &registrationFields{
		serialNo:     strings.TrimSpace(cmd.SerialNo),
		challanNo:    strings.TrimSpace(cmd.ChallanNo),
		customerName: strings.TrimSpace(cmd.CustomerName),
		testTypeName: strings.TrimSpace(cmd.TestTypeName),
		projectName:  strings.TrimSpace(cmd.ProjectName),
		description:  strings.TrimSpace(cmd.UUTDescription),
		uutSrNo:      strings.TrimSpace(cmd.UUTSrNo),
		quantity:     cmd.UUTQty,
	}

	if f.serialNo == "" {
		return nil, errors.NewValidationError("serial number is required")
	}
	if f.customerName == "" {
		return nil, errors.NewValidationError("customer name is required")
	}
	if f.testTypeName == "" {
		return nil, errors.NewValidationError("test type name is required")
	}
	if f.projectName == "" {
		return nil, errors.NewValidationError("project name is required")
	}

	testTypeCode, err := vo.NewTestTypeCode(strings.ToUpper(strings.TrimSpace(cmd.TestTypeCode)))
	if err != nil {
		return nil, errors.NewValidationError("test type code must be exactly one letter")
	}
	f.testTypeCode = testTypeCode

	uutType, err := vo.NewUUTType(strings.ToUpper(strings.TrimSpace(cmd.UUTType)))
	if err != nil {
		return nil, errors.NewValidationError("uut type must be exactly two letters")
	}
	f.uutType = uutType

	if f.quantity == 0 {
		f.quantity = 1
	}
	if f.quantity < 1 {
		return nil, errors.NewValidationError("quantity must be at least 1")
	}

	if cmd.UUTInDate != "" {
		parsed, err := biztime.ParseDateInLabTimezone(strings.TrimSpace(cmd.UUTInDate))
		if err != nil {
			return nil, errors.NewValidationError("in-date must be formatted as YYYY-MM-DD")
		}
		f.inDateDay = biztime.DayOf(parsed)
	} else {
		f.inDateDay = biztime.DayOf(clock.Now())
	}

	f.customerCode = vo.DeriveCustomerCode(f.customerName)

	return f, nil
}

// formatCode derives the candidate code for the fields at the given sequence.
func (f *registrationFields) formatCode(serialOfDay int) (string, error) {
	return vo.FormatUUTCode(f.inDateDay, f.testTypeCode, f.customerCode, f.uutType, serialOfDay)
}

// parseDay parses a YYYY-MM-DD string into its canonical day bucket.
func parseDay(s string) (time.Time, error) {
	parsed, err := biztime.ParseDateInLabTimezone(strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errors.NewValidationError("day must be formatted as YYYY-MM-DD")
	}
	return biztime.DayOf(parsed), nil
}
