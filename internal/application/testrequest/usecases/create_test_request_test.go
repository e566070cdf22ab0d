package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labtrace/internal/domain/testrequest"
	"labtrace/internal/shared/errors"
)

func TestCreateTestRequest_Success(t *testing.T) {
	var saved *testrequest.TestRequest
	repo := &mockTestRequestRepository{
		SaveFunc: func(ctx context.Context, req *testrequest.TestRequest) error {
			saved = req
			return req.SetID(9)
		},
	}

	useCase := NewCreateTestRequestUseCase(repo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateTestRequestCommand{
		CustomerName: "John Smith",
		TestTypeName: "Conducted Emission",
		TestTypeCode: "c",
		ProjectName:  "Radar Unit Qualification",
		Description:  "two power supply units",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, uint(9), result.Request.ID)
	assert.Equal(t, "C", result.Request.TestTypeCode, "code is uppercased")
	assert.Equal(t, "new", result.Request.Status)
}

func TestCreateTestRequest_ValidationErrors(t *testing.T) {
	useCase := NewCreateTestRequestUseCase(&mockTestRequestRepository{}, &mockLogger{})

	valid := CreateTestRequestCommand{
		CustomerName: "John Smith",
		TestTypeName: "Conducted Emission",
		TestTypeCode: "C",
		ProjectName:  "Radar Unit Qualification",
	}

	tests := []struct {
		name   string
		mutate func(*CreateTestRequestCommand)
	}{
		{"missing customer name", func(c *CreateTestRequestCommand) { c.CustomerName = "" }},
		{"missing test type name", func(c *CreateTestRequestCommand) { c.TestTypeName = "" }},
		{"test type code too long", func(c *CreateTestRequestCommand) { c.TestTypeCode = "CE" }},
		{"missing test type code", func(c *CreateTestRequestCommand) { c.TestTypeCode = "" }},
		{"missing project name", func(c *CreateTestRequestCommand) { c.ProjectName = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := valid
			tt.mutate(&cmd)
			result, err := useCase.Execute(context.Background(), cmd)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestDeleteTestRequest_OnlyNewOrRejected(t *testing.T) {
	tests := []struct {
		name   string
		status testrequest.Status
		ok     bool
	}{
		{"new request", testrequest.StatusNew, true},
		{"rejected request", testrequest.StatusRejected, true},
		{"approved request", testrequest.StatusApproved, false},
		{"completed request", testrequest.StatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := requestWithStatus(t, tt.status)
			deleted := false
			repo := &mockTestRequestRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*testrequest.TestRequest, error) {
					return req, nil
				},
				DeleteFunc: func(ctx context.Context, id uint) error {
					deleted = true
					return nil
				},
			}

			useCase := NewDeleteTestRequestUseCase(repo, &mockLogger{})
			_, err := useCase.Execute(context.Background(), DeleteTestRequestCommand{RequestID: 5})

			if tt.ok {
				assert.NoError(t, err)
				assert.True(t, deleted)
			} else {
				require.Error(t, err)
				assert.False(t, deleted)
				assert.True(t, errors.IsValidationError(err))
			}
		})
	}
}
