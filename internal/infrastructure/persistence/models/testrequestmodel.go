package models

type TestRequestModel struct {
	ID           uint   `gorm:"primaryKey"`
	CustomerName string `gorm:"size:200;not null;index"`
	TestTypeName string `gorm:"size:100;not null"`
	TestTypeCode string `gorm:"size:1;not null"`
	ProjectName  string `gorm:"size:200;not null"`
	Description  string `gorm:"type:text"`
	Status       string `gorm:"size:20;not null;index"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (TestRequestModel) TableName() string {
	return "test_requests"
}
