package dto

import (
	"time"

	"labtrace/internal/domain/uut"
)

// UnitDTO is the read-side representation of a registered unit.
type UnitDTO struct {
	ID             uint       `json:"id"`
	SerialNo       string     `json:"serialNo"`
	ChallanNo      string     `json:"challanNo,omitempty"`
	UUTInDate      string     `json:"uutInDate"`
	SerialOfDay    int        `json:"serialOfDay"`
	UUTCode        string     `json:"uutCode"`
	CustomerName   string     `json:"customerName"`
	CustomerCode   string     `json:"customerCode"`
	TestTypeName   string     `json:"testTypeName"`
	TestTypeCode   string     `json:"testTypeCode"`
	ProjectName    string     `json:"projectName"`
	UUTDescription string     `json:"uutDescription,omitempty"`
	UUTType        string     `json:"uutType"`
	UUTSrNo        string     `json:"uutSrNo,omitempty"`
	UUTQty         int        `json:"uutQty"`
	CheckoutStatus string     `json:"checkoutStatus"`
	CheckoutAt     *time.Time `json:"checkoutAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// FromEntity converts a domain unit to its DTO.
func FromEntity(u *uut.UnitUnderTest) *UnitDTO {
	return &UnitDTO{
		ID:             u.ID(),
		SerialNo:       u.SerialNo(),
		ChallanNo:      u.ChallanNo(),
		UUTInDate:      u.InDateDay().Format("2006-01-02"),
		SerialOfDay:    u.SerialOfDay(),
		UUTCode:        u.UUTCode(),
		CustomerName:   u.CustomerName(),
		CustomerCode:   u.CustomerCode().String(),
		TestTypeName:   u.TestTypeName(),
		TestTypeCode:   u.TestTypeCode().String(),
		ProjectName:    u.ProjectName(),
		UUTDescription: u.Description(),
		UUTType:        u.UUTType().String(),
		UUTSrNo:        u.UUTSrNo(),
		UUTQty:         u.Quantity(),
		CheckoutStatus: u.CheckoutStatus().String(),
		CheckoutAt:     u.CheckoutAt(),
		CreatedAt:      u.CreatedAt(),
		UpdatedAt:      u.UpdatedAt(),
	}
}

// FromEntities converts a slice of domain units.
func FromEntities(units []*uut.UnitUnderTest) []*UnitDTO {
	out := make([]*UnitDTO, 0, len(units))
	for _, u := range units {
		out = append(out, FromEntity(u))
	}
	return out
}
