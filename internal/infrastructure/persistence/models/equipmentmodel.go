package models

type EquipmentModel struct {
	ID               uint   `gorm:"primaryKey"`
	Name             string `gorm:"size:200;not null"`
	TagNumber        string `gorm:"uniqueIndex:uq_equipment_tag;size:100;not null"`
	Location         string `gorm:"size:200;index"`
	Status           string `gorm:"size:20;not null;index"`
	LastCalibratedAt *int64
	CalibrationDueAt *int64 `gorm:"index"`
	CreatedAt        int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt        int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (EquipmentModel) TableName() string {
	return "equipment"
}
