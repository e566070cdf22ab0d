package uut

import (
	"fmt"
	"time"

	vo "labtrace/internal/domain/uut/valueobjects"
)

// UnitUnderTest is a physical item registered into the lab for testing.
// serialOfDay, uutCode and inDateDay are assigned by the allocator at commit
// time and are immutable afterwards.
type UnitUnderTest struct {
	id           uint
	serialNo     string
	challanNo    string
	inDateDay    time.Time
	serialOfDay  int
	uutCode      string
	customerName string
	customerCode vo.CustomerCode
	testTypeName string
	testTypeCode vo.TestTypeCode
	projectName  string
	description  string
	uutType      vo.UUTType
	uutSrNo      string
	quantity     int
	checkout     vo.CheckoutStatus
	checkoutAt   *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUnitUnderTest assembles a unit at commit time, once the allocator has
// settled the day bucket, sequence number and code.
func NewUnitUnderTest(
	serialNo string,
	challanNo string,
	inDateDay time.Time,
	serialOfDay int,
	uutCode string,
	customerName string,
	customerCode vo.CustomerCode,
	testTypeName string,
	testTypeCode vo.TestTypeCode,
	projectName string,
	description string,
	uutType vo.UUTType,
	uutSrNo string,
	quantity int,
	now time.Time,
) (*UnitUnderTest, error) {
	if serialNo == "" {
		return nil, fmt.Errorf("serial number is required")
	}
	if serialOfDay < 1 || serialOfDay > 9999 {
		return nil, fmt.Errorf("serial of day %d out of range", serialOfDay)
	}
	if uutCode == "" {
		return nil, fmt.Errorf("uut code is required")
	}
	if inDateDay.IsZero() {
		return nil, fmt.Errorf("in-date day is required")
	}
	if customerName == "" {
		return nil, fmt.Errorf("customer name is required")
	}
	if testTypeName == "" {
		return nil, fmt.Errorf("test type name is required")
	}
	if projectName == "" {
		return nil, fmt.Errorf("project name is required")
	}
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}

	return &UnitUnderTest{
		serialNo:     serialNo,
		challanNo:    challanNo,
		inDateDay:    inDateDay,
		serialOfDay:  serialOfDay,
		uutCode:      uutCode,
		customerName: customerName,
		customerCode: customerCode,
		testTypeName: testTypeName,
		testTypeCode: testTypeCode,
		projectName:  projectName,
		description:  description,
		uutType:      uutType,
		uutSrNo:      uutSrNo,
		quantity:     quantity,
		checkout:     vo.CheckoutNone,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUnitUnderTest rebuilds a unit from persistence.
func ReconstructUnitUnderTest(
	id uint,
	serialNo string,
	challanNo string,
	inDateDay time.Time,
	serialOfDay int,
	uutCode string,
	customerName string,
	customerCode vo.CustomerCode,
	testTypeName string,
	testTypeCode vo.TestTypeCode,
	projectName string,
	description string,
	uutType vo.UUTType,
	uutSrNo string,
	quantity int,
	checkout vo.CheckoutStatus,
	checkoutAt *time.Time,
	createdAt, updatedAt time.Time,
) (*UnitUnderTest, error) {
	if id == 0 {
		return nil, fmt.Errorf("unit ID cannot be zero")
	}
	if serialNo == "" {
		return nil, fmt.Errorf("serial number is required")
	}
	if uutCode == "" {
		return nil, fmt.Errorf("uut code is required")
	}
	if !checkout.IsValid() {
		return nil, fmt.Errorf("invalid checkout status")
	}

	return &UnitUnderTest{
		id:           id,
		serialNo:     serialNo,
		challanNo:    challanNo,
		inDateDay:    inDateDay,
		serialOfDay:  serialOfDay,
		uutCode:      uutCode,
		customerName: customerName,
		customerCode: customerCode,
		testTypeName: testTypeName,
		testTypeCode: testTypeCode,
		projectName:  projectName,
		description:  description,
		uutType:      uutType,
		uutSrNo:      uutSrNo,
		quantity:     quantity,
		checkout:     checkout,
		checkoutAt:   checkoutAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

// SetID assigns the generated identity exactly once, after a successful insert.
func (u *UnitUnderTest) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("unit ID already set")
	}
	if id == 0 {
		return fmt.Errorf("unit ID cannot be zero")
	}
	u.id = id
	return nil
}

// Checkout records the unit leaving the lab, fully or partially. It never
// touches the code, sequence or day bucket.
func (u *UnitUnderTest) Checkout(status vo.CheckoutStatus, at time.Time) error {
	if status != vo.CheckoutPartial && status != vo.CheckoutFull {
		return fmt.Errorf("checkout status must be partial or full")
	}
	if u.checkout == vo.CheckoutFull {
		return fmt.Errorf("unit is already fully checked out")
	}
	u.checkout = status
	u.checkoutAt = &at
	u.updatedAt = at
	return nil
}

func (u *UnitUnderTest) ID() uint                      { return u.id }
func (u *UnitUnderTest) SerialNo() string              { return u.serialNo }
func (u *UnitUnderTest) ChallanNo() string             { return u.challanNo }
func (u *UnitUnderTest) InDateDay() time.Time          { return u.inDateDay }
func (u *UnitUnderTest) SerialOfDay() int              { return u.serialOfDay }
func (u *UnitUnderTest) UUTCode() string               { return u.uutCode }
func (u *UnitUnderTest) CustomerName() string          { return u.customerName }
func (u *UnitUnderTest) CustomerCode() vo.CustomerCode { return u.customerCode }
func (u *UnitUnderTest) TestTypeName() string          { return u.testTypeName }
func (u *UnitUnderTest) TestTypeCode() vo.TestTypeCode { return u.testTypeCode }
func (u *UnitUnderTest) ProjectName() string           { return u.projectName }
func (u *UnitUnderTest) Description() string           { return u.description }
func (u *UnitUnderTest) UUTType() vo.UUTType           { return u.uutType }
func (u *UnitUnderTest) UUTSrNo() string               { return u.uutSrNo }
func (u *UnitUnderTest) Quantity() int                 { return u.quantity }
func (u *UnitUnderTest) CheckoutStatus() vo.CheckoutStatus { return u.checkout }
func (u *UnitUnderTest) CheckoutAt() *time.Time        { return u.checkoutAt }
func (u *UnitUnderTest) CreatedAt() time.Time          { return u.createdAt }
func (u *UnitUnderTest) UpdatedAt() time.Time          { return u.updatedAt }
