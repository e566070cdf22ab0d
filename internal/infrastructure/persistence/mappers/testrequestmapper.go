package mappers

import (
	"time"

	"labtrace/internal/domain/testrequest"
	"labtrace/internal/infrastructure/persistence/models"
)

// TestRequestMapper handles the conversion between test request domain entities and persistence models.
type TestRequestMapper interface {
	ToModel(r *testrequest.TestRequest) *models.TestRequestModel
	ToDomain(model *models.TestRequestModel) (*testrequest.TestRequest, error)
}

type TestRequestMapperImpl struct{}

func NewTestRequestMapper() TestRequestMapper {
	return &TestRequestMapperImpl{}
}

func (m *TestRequestMapperImpl) ToModel(r *testrequest.TestRequest) *models.TestRequestModel {
	return &models.TestRequestModel{
		ID:           r.ID(),
		CustomerName: r.CustomerName(),
		TestTypeName: r.TestTypeName(),
		TestTypeCode: r.TestTypeCode(),
		ProjectName:  r.ProjectName(),
		Description:  r.Description(),
		Status:       r.Status().String(),
		CreatedAt:    r.CreatedAt().UnixMilli(),
		UpdatedAt:    r.UpdatedAt().UnixMilli(),
	}
}

func (m *TestRequestMapperImpl) ToDomain(model *models.TestRequestModel) (*testrequest.TestRequest, error) {
	return testrequest.ReconstructTestRequest(
		model.ID,
		model.CustomerName,
		model.TestTypeName,
		model.TestTypeCode,
		model.ProjectName,
		model.Description,
		testrequest.Status(model.Status),
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}
