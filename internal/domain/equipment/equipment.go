package equipment

import (
	"fmt"
	"time"
)

// Status of a piece of lab equipment.
type Status string

const (
	StatusActive      Status = "active"
	StatusMaintenance Status = "maintenance"
	StatusRetired     Status = "retired"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusMaintenance, StatusRetired:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// Equipment is a calibrated instrument or fixture in the lab inventory.
type Equipment struct {
	id               uint
	name             string
	tagNumber        string
	location         string
	status           Status
	lastCalibratedAt *time.Time
	calibrationDueAt *time.Time
	createdAt        time.Time
	updatedAt        time.Time
}

func NewEquipment(name, tagNumber, location string, now time.Time) (*Equipment, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("name exceeds maximum length of 200 characters")
	}
	if len(tagNumber) == 0 {
		return nil, fmt.Errorf("tag number is required")
	}

	return &Equipment{
		name:      name,
		tagNumber: tagNumber,
		location:  location,
		status:    StatusActive,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructEquipment(
	id uint,
	name string,
	tagNumber string,
	location string,
	status Status,
	lastCalibratedAt *time.Time,
	calibrationDueAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Equipment, error) {
	if id == 0 {
		return nil, fmt.Errorf("equipment ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(tagNumber) == 0 {
		return nil, fmt.Errorf("tag number is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Equipment{
		id:               id,
		name:             name,
		tagNumber:        tagNumber,
		location:         location,
		status:           status,
		lastCalibratedAt: lastCalibratedAt,
		calibrationDueAt: calibrationDueAt,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (e *Equipment) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("equipment ID already set")
	}
	if id == 0 {
		return fmt.Errorf("equipment ID cannot be zero")
	}
	e.id = id
	return nil
}

// UpdateDetails changes the descriptive fields. Empty name or tag number
// leaves the current value in place.
func (e *Equipment) UpdateDetails(name, tagNumber, location string, now time.Time) error {
	if len(name) > 200 {
		return fmt.Errorf("name exceeds maximum length of 200 characters")
	}
	if len(name) > 0 {
		e.name = name
	}
	if len(tagNumber) > 0 {
		e.tagNumber = tagNumber
	}
	if len(location) > 0 {
		e.location = location
	}
	e.updatedAt = now
	return nil
}

func (e *Equipment) ChangeStatus(status Status, now time.Time) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status")
	}
	e.status = status
	e.updatedAt = now
	return nil
}

// RecordCalibration logs a completed calibration and schedules the next one.
func (e *Equipment) RecordCalibration(calibratedAt time.Time, validFor time.Duration) error {
	if e.status == StatusRetired {
		return fmt.Errorf("retired equipment cannot be calibrated")
	}
	if validFor <= 0 {
		return fmt.Errorf("calibration validity must be positive")
	}
	due := calibratedAt.Add(validFor)
	e.lastCalibratedAt = &calibratedAt
	e.calibrationDueAt = &due
	e.updatedAt = calibratedAt
	return nil
}

// CalibrationDue reports whether calibration is overdue at the given instant.
// Equipment that has never been calibrated counts as due.
func (e *Equipment) CalibrationDue(at time.Time) bool {
	if e.status == StatusRetired {
		return false
	}
	if e.calibrationDueAt == nil {
		return true
	}
	return !e.calibrationDueAt.After(at)
}

func (e *Equipment) ID() uint                     { return e.id }
func (e *Equipment) Name() string                 { return e.name }
func (e *Equipment) TagNumber() string            { return e.tagNumber }
func (e *Equipment) Location() string             { return e.location }
func (e *Equipment) Status() Status               { return e.status }
func (e *Equipment) LastCalibratedAt() *time.Time { return e.lastCalibratedAt }
func (e *Equipment) CalibrationDueAt() *time.Time { return e.calibrationDueAt }
func (e *Equipment) CreatedAt() time.Time         { return e.createdAt }
func (e *Equipment) UpdatedAt() time.Time         { return e.updatedAt }
