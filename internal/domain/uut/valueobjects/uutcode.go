package valueobjects

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidCustomerCode = errors.New("customer code must be exactly 2 uppercase letters")
	ErrInvalidTestTypeCode = errors.New("test type code must be exactly 1 letter")
	ErrInvalidUUTType      = errors.New("uut type must be exactly 2 letters")
	ErrInvalidSerialOfDay  = errors.New("serial of day must be between 1 and 9999")
)

// TestTypeCode is the single-letter code of the test discipline.
type TestTypeCode string

func NewTestTypeCode(code string) (TestTypeCode, error) {
	r := []rune(code)
	if len(r) != 1 || !isLetter(r[0]) {
		return "", ErrInvalidTestTypeCode
	}
	return TestTypeCode(code), nil
}

func (t TestTypeCode) String() string {
	return string(t)
}

// UUTType is the 2-letter unit type code.
type UUTType string

func NewUUTType(code string) (UUTType, error) {
	r := []rune(code)
	if len(r) != 2 || !isLetter(r[0]) || !isLetter(r[1]) {
		return "", ErrInvalidUUTType
	}
	return UUTType(code), nil
}

func (u UUTType) String() string {
	return string(u)
}

// FormatUUTCode composes the human-readable unit identifier
// YY/TCC/UU/DDMM/NNNN from its components:
//
//	YY    2-digit year of the in-date
//	TCC   test type code followed by customer code
//	UU    unit type code
//	DDMM  day and month of the in-date, zero-padded
//	NNNN  serial of day, zero-padded to 4 digits
//
// Pure; identical inputs always produce an identical string.
func FormatUUTCode(inDate time.Time, testType TestTypeCode, customer CustomerCode, uutType UUTType, serialOfDay int) (string, error) {
	if serialOfDay < 1 || serialOfDay > 9999 {
		return "", ErrInvalidSerialOfDay
	}
	return fmt.Sprintf("%02d/%s%s/%s/%02d%02d/%04d",
		inDate.Year()%100,
		testType, customer,
		uutType,
		inDate.Day(), int(inDate.Month()),
		serialOfDay,
	), nil
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
