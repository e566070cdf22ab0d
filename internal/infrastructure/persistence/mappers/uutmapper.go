package mappers

import (
	"fmt"
	"time"

	"gorm.io/datatypes"

	"labtrace/internal/domain/uut"
	vo "labtrace/internal/domain/uut/valueobjects"
	"labtrace/internal/infrastructure/persistence/models"
)

// UUTMapper handles the conversion between unit domain entities and persistence models.
type UUTMapper interface {
	// ToModel converts a unit domain entity to a persistence model.
	ToModel(u *uut.UnitUnderTest) *models.UUTRecordModel

	// ToDomain converts a unit persistence model to a domain entity.
	ToDomain(model *models.UUTRecordModel) (*uut.UnitUnderTest, error)
}

type UUTMapperImpl struct{}

func NewUUTMapper() UUTMapper {
	return &UUTMapperImpl{}
}

func (m *UUTMapperImpl) ToModel(u *uut.UnitUnderTest) *models.UUTRecordModel {
	model := &models.UUTRecordModel{
		ID:           u.ID(),
		SerialNo:     u.SerialNo(),
		ChallanNo:    u.ChallanNo(),
		InDateDay:    datatypes.Date(u.InDateDay()),
		SerialOfDay:  u.SerialOfDay(),
		UUTCode:      u.UUTCode(),
		CustomerName: u.CustomerName(),
		CustomerCode: u.CustomerCode().String(),
		TestTypeName: u.TestTypeName(),
		TestTypeCode: u.TestTypeCode().String(),
		ProjectName:  u.ProjectName(),
		Description:  u.Description(),
		UUTType:      u.UUTType().String(),
		UUTSrNo:      u.UUTSrNo(),
		Quantity:     u.Quantity(),
		Checkout:     u.CheckoutStatus().String(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}

	if u.CheckoutAt() != nil {
		out := u.CheckoutAt().UnixMilli()
		model.CheckoutAt = &out
	}

	return model
}

func (m *UUTMapperImpl) ToDomain(model *models.UUTRecordModel) (*uut.UnitUnderTest, error) {
	customerCode, err := vo.NewCustomerCode(model.CustomerCode)
	if err != nil {
		return nil, fmt.Errorf("invalid customer code %q: %w", model.CustomerCode, err)
	}
	testTypeCode, err := vo.NewTestTypeCode(model.TestTypeCode)
	if err != nil {
		return nil, fmt.Errorf("invalid test type code %q: %w", model.TestTypeCode, err)
	}
	uutType, err := vo.NewUUTType(model.UUTType)
	if err != nil {
		return nil, fmt.Errorf("invalid uut type %q: %w", model.UUTType, err)
	}

	var checkoutAt *time.Time
	if model.CheckoutAt != nil {
		t := time.UnixMilli(*model.CheckoutAt).UTC()
		checkoutAt = &t
	}

	// The day bucket is a pure date; normalize back to midnight UTC.
	day := time.Time(model.InDateDay)
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	return uut.ReconstructUnitUnderTest(
		model.ID,
		model.SerialNo,
		model.ChallanNo,
		day,
		model.SerialOfDay,
		model.UUTCode,
		model.CustomerName,
		customerCode,
		model.TestTypeName,
		testTypeCode,
		model.ProjectName,
		model.Description,
		uutType,
		model.UUTSrNo,
		model.Quantity,
		vo.CheckoutStatus(model.Checkout),
		checkoutAt,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}
