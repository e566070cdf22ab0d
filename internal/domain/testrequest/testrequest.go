package testrequest

import (
	"fmt"
	"time"
)

// Status of an incoming test request.
type Status string

const (
	StatusNew       Status = "new"
	StatusApproved  Status = "approved"
	StatusCompleted Status = "completed"
	StatusRejected  Status = "rejected"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusApproved, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// canTransition encodes the allowed status flow. Completed and rejected are
// terminal.
func (s Status) canTransition(to Status) bool {
	switch s {
	case StatusNew:
		return to == StatusApproved || to == StatusRejected
	case StatusApproved:
		return to == StatusCompleted || to == StatusRejected
	}
	return false
}

// TestRequest is a customer's request to have units tested. Approved requests
// feed the registration flow; the field shapes mirror what registration
// captures.
type TestRequest struct {
	id           uint
	customerName string
	testTypeName string
	testTypeCode string
	projectName  string
	description  string
	status       Status
	createdAt    time.Time
	updatedAt    time.Time
}

func NewTestRequest(customerName, testTypeName, testTypeCode, projectName, description string, now time.Time) (*TestRequest, error) {
	if len(customerName) == 0 {
		return nil, fmt.Errorf("customer name is required")
	}
	if len(testTypeName) == 0 {
		return nil, fmt.Errorf("test type name is required")
	}
	if len(testTypeCode) != 1 {
		return nil, fmt.Errorf("test type code must be exactly 1 letter")
	}
	if len(projectName) == 0 {
		return nil, fmt.Errorf("project name is required")
	}

	return &TestRequest{
		customerName: customerName,
		testTypeName: testTypeName,
		testTypeCode: testTypeCode,
		projectName:  projectName,
		description:  description,
		status:       StatusNew,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructTestRequest(
	id uint,
	customerName string,
	testTypeName string,
	testTypeCode string,
	projectName string,
	description string,
	status Status,
	createdAt, updatedAt time.Time,
) (*TestRequest, error) {
	if id == 0 {
		return nil, fmt.Errorf("test request ID cannot be zero")
	}
	if len(customerName) == 0 {
		return nil, fmt.Errorf("customer name is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &TestRequest{
		id:           id,
		customerName: customerName,
		testTypeName: testTypeName,
		testTypeCode: testTypeCode,
		projectName:  projectName,
		description:  description,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (r *TestRequest) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("test request ID already set")
	}
	if id == 0 {
		return fmt.Errorf("test request ID cannot be zero")
	}
	r.id = id
	return nil
}

func (r *TestRequest) ChangeStatus(to Status, now time.Time) error {
	if !to.IsValid() {
		return fmt.Errorf("invalid status")
	}
	if !r.status.canTransition(to) {
		return fmt.Errorf("cannot transition from %s to %s", r.status, to)
	}
	r.status = to
	r.updatedAt = now
	return nil
}

func (r *TestRequest) UpdateDetails(projectName, description string, now time.Time) error {
	if r.status == StatusCompleted || r.status == StatusRejected {
		return fmt.Errorf("cannot update a %s request", r.status)
	}
	if len(projectName) > 0 {
		r.projectName = projectName
	}
	if len(description) > 0 {
		r.description = description
	}
	r.updatedAt = now
	return nil
}

func (r *TestRequest) ID() uint             { return r.id }
func (r *TestRequest) CustomerName() string { return r.customerName }
func (r *TestRequest) TestTypeName() string { return r.testTypeName }
func (r *TestRequest) TestTypeCode() string { return r.testTypeCode }
func (r *TestRequest) ProjectName() string  { return r.projectName }
func (r *TestRequest) Description() string  { return r.description }
func (r *TestRequest) Status() Status       { return r.status }
func (r *TestRequest) CreatedAt() time.Time { return r.createdAt }
func (r *TestRequest) UpdatedAt() time.Time { return r.updatedAt }
