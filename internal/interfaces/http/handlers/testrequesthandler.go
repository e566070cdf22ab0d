package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"labtrace/internal/application/testrequest/usecases"
	"labtrace/internal/shared/logger"
	"labtrace/internal/shared/utils"
)

type TestRequestHandler struct {
	createUC       *usecases.CreateTestRequestUseCase
	changeStatusUC *usecases.ChangeStatusUseCase
	getUC          *usecases.GetTestRequestUseCase
	listUC         *usecases.ListTestRequestsUseCase
	updateUC       *usecases.UpdateTestRequestUseCase
	deleteUC       *usecases.DeleteTestRequestUseCase
	logger         logger.Interface
}

func NewTestRequestHandler(
	createUC *usecases.CreateTestRequestUseCase,
	changeStatusUC *usecases.ChangeStatusUseCase,
	getUC *usecases.GetTestRequestUseCase,
	listUC *usecases.ListTestRequestsUseCase,
	updateUC *usecases.UpdateTestRequestUseCase,
	deleteUC *usecases.DeleteTestRequestUseCase,
) *TestRequestHandler {
	return &TestRequestHandler{
		createUC:       createUC,
		changeStatusUC: changeStatusUC,
		getUC:          getUC,
		listUC:         listUC,
		updateUC:       updateUC,
		deleteUC:       deleteUC,
		logger:         logger.NewLogger(),
	}
}

type CreateTestRequestRequest struct {
	CustomerName string `json:"customerName" binding:"required"`
	TestTypeName string `json:"testTypeName" binding:"required"`
	TestTypeCode string `json:"testTypeCode" binding:"required,len=1"`
	ProjectName  string `json:"projectName" binding:"required"`
	Description  string `json:"description"`
}

type ChangeTestRequestStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=approved completed rejected"`
}

type UpdateTestRequestRequest struct {
	ProjectName string `json:"projectName"`
	Description string `json:"description"`
}

func (h *TestRequestHandler) CreateTestRequest(c *gin.Context) {
	var req CreateTestRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create test request", "error", err)
		utils.ErrorResponseWithError(c, utils.FormatBindingError(err))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateTestRequestCommand{
		CustomerName: req.CustomerName,
		TestTypeName: req.TestTypeName,
		TestTypeCode: req.TestTypeCode,
		ProjectName:  req.ProjectName,
		Description:  req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Test request created successfully")
}

func (h *TestRequestHandler) ChangeStatus(c *gin.Context) {
	requestID, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeTestRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for change status", "request_id", requestID, "error", err)
		utils.ErrorResponseWithError(c, utils.FormatBindingError(err))
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		RequestID: requestID,
		Status:    req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Status updated", result)
}

func (h *TestRequestHandler) GetTestRequest(c *gin.Context) {
	requestID, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetTestRequestQuery{RequestID: requestID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *TestRequestHandler) ListTestRequests(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListTestRequestsQuery{
		CustomerName: c.Query("customer"),
		Status:       c.Query("status"),
		Page:         pagination.Page,
		PageSize:     pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Requests, result.Total, result.Page, result.PageSize)
}

func (h *TestRequestHandler) UpdateTestRequest(c *gin.Context) {
	requestID, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTestRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update test request", "request_id", requestID, "error", err)
		utils.ErrorResponseWithError(c, utils.FormatBindingError(err))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateTestRequestCommand{
		RequestID:   requestID,
		ProjectName: req.ProjectName,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Test request updated", result)
}

func (h *TestRequestHandler) DeleteTestRequest(c *gin.Context) {
	requestID, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if _, err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteTestRequestCommand{RequestID: requestID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
