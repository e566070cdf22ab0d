package dto

import (
	"time"

	"labtrace/internal/domain/testrequest"
)

type TestRequestDTO struct {
	ID           uint      `json:"id"`
	CustomerName string    `json:"customerName"`
	TestTypeName string    `json:"testTypeName"`
	TestTypeCode string    `json:"testTypeCode"`
	ProjectName  string    `json:"projectName"`
	Description  string    `json:"description,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromEntity(r *testrequest.TestRequest) *TestRequestDTO {
	return &TestRequestDTO{
		ID:           r.ID(),
		CustomerName: r.CustomerName(),
		TestTypeName: r.TestTypeName(),
		TestTypeCode: r.TestTypeCode(),
		ProjectName:  r.ProjectName(),
		Description:  r.Description(),
		Status:       r.Status().String(),
		CreatedAt:    r.CreatedAt(),
		UpdatedAt:    r.UpdatedAt(),
	}
}

func FromEntities(items []*testrequest.TestRequest) []*TestRequestDTO {
	out := make([]*TestRequestDTO, 0, len(items))
	for _, r := range items {
		out = append(out, FromEntity(r))
	}
	return out
}
