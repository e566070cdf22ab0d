package models

import "gorm.io/datatypes"

// UUTRecordModel persists registered units. The three uniqueness constraints
// back the allocator: serial numbers and codes are globally unique, sequence
// numbers are unique within their day bucket.
type UUTRecordModel struct {
	ID           uint           `gorm:"primaryKey"`
	SerialNo     string         `gorm:"uniqueIndex:uq_uut_serial_no;size:100;not null"`
	ChallanNo    string         `gorm:"size:100"`
	InDateDay    datatypes.Date `gorm:"uniqueIndex:uq_uut_day_serial,priority:1;not null;index"`
	SerialOfDay  int            `gorm:"uniqueIndex:uq_uut_day_serial,priority:2;not null"`
	UUTCode      string         `gorm:"column:uut_code;uniqueIndex:uq_uut_code;size:30;not null"`
	CustomerName string         `gorm:"size:200;not null;index"`
	CustomerCode string         `gorm:"size:2;not null"`
	TestTypeName string         `gorm:"size:100;not null"`
	TestTypeCode string         `gorm:"size:1;not null;index"`
	ProjectName  string         `gorm:"size:200;not null"`
	Description  string         `gorm:"type:text"`
	UUTType      string         `gorm:"column:uut_type;size:2;not null"`
	UUTSrNo      string         `gorm:"column:uut_sr_no;size:100"`
	Quantity     int            `gorm:"not null;default:1"`
	Checkout     string         `gorm:"size:20;not null;index"`
	CheckoutAt   *int64
	CreatedAt    int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (UUTRecordModel) TableName() string {
	return "uut_records"
}
