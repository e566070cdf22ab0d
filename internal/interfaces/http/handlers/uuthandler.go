package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"labtrace/internal/application/uut/usecases"
	"labtrace/internal/shared/errors"
	"labtrace/internal/shared/logger"
	"labtrace/internal/shared/utils"
)

type UUTHandler struct {
	previewUC  *usecases.PreviewRegistrationUseCase
	confirmUC  *usecases.ConfirmRegistrationUseCase
	getUnitUC  *usecases.GetUnitUseCase
	listUC     *usecases.ListUnitsUseCase
	checkoutUC *usecases.CheckoutUnitUseCase
	logger     logger.Interface
}

func NewUUTHandler(
	previewUC *usecases.PreviewRegistrationUseCase,
	confirmUC *usecases.ConfirmRegistrationUseCase,
	getUnitUC *usecases.GetUnitUseCase,
	listUC *usecases.ListUnitsUseCase,
	checkoutUC *usecases.CheckoutUnitUseCase,
) *UUTHandler {
	return &UUTHandler{
		previewUC:  previewUC,
		confirmUC:  confirmUC,
		getUnitUC:  getUnitUC,
		listUC:     listUC,
		checkoutUC: checkoutUC,
		logger:     logger.NewLogger(),
	}
}

type RegistrationRequest struct {
	SerialNo       string `json:"serialNo" binding:"required"`
	ChallanNo      string `json:"challanNo"`
	CustomerName   string `json:"customerName" binding:"required"`
	TestTypeName   string `json:"testTypeName" binding:"required"`
	TestTypeCode   string `json:"testTypeCode" binding:"required,len=1"`
	ProjectName    string `json:"projectName" binding:"required"`
	UUTDescription string `json:"uutDescription"`
	UUTType        string `json:"uutType" binding:"required,len=2"`
	UUTSrNo        string `json:"uutSrNo"`
	UUTQty         int    `json:"uutQty" binding:"omitempty,min=1"`
	UUTInDate      string `json:"uutInDate"`
}

type ConfirmRegistrationRequest struct {
	RegistrationRequest
	ExpectedUUTCode string `json:"expectedUutCode" binding:"required"`
}

type CheckoutRequest struct {
	Status string `json:"status" binding:"required,oneof=partially_out fully_out"`
}

func (r RegistrationRequest) toCommand() usecases.RegistrationCommand {
	return usecases.RegistrationCommand{
		SerialNo:       r.SerialNo,
		ChallanNo:      r.ChallanNo,
		CustomerName:   r.CustomerName,
		TestTypeName:   r.TestTypeName,
		TestTypeCode:   r.TestTypeCode,
		ProjectName:    r.ProjectName,
		UUTDescription: r.UUTDescription,
		UUTType:        r.UUTType,
		UUTSrNo:        r.UUTSrNo,
		UUTQty:         r.UUTQty,
		UUTInDate:      r.UUTInDate,
	}
}

// PreviewRegistration computes the code a unit would receive if registered
// right now. The result is advisory and reserves nothing.
func (h *UUTHandler) PreviewRegistration(c *gin.Context) {
	var req RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for preview registration", "error", err)
		utils.ErrorResponseWithError(c, utils.FormatBindingError(err))
		return
	}

	cmd := usecases.PreviewRegistrationCommand{RegistrationCommand: req.toCommand()}

	result, err := h.previewUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ConfirmRegistration durably registers a unit and mints its code.
func (h *UUTHandler) ConfirmRegistration(c *gin.Context) {
	var req ConfirmRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for confirm registration", "error", err)
		utils.ErrorResponseWithError(c, utils.FormatBindingError(err))
		return
	}

	cmd := usecases.ConfirmRegistrationCommand{
		RegistrationCommand: req.toCommand(),
		ExpectedUUTCode:     req.ExpectedUUTCode,
	}

	result, err := h.confirmUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Unit registered successfully")
}

func (h *UUTHandler) GetUnit(c *gin.Context) {
	unitID, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUnitUC.Execute(c.Request.Context(), usecases.GetUnitQuery{UnitID: unitID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// LookupUnit resolves a unit by its full code. The code contains slashes, so
// it travels as a query parameter rather than a path segment.
func (h *UUTHandler) LookupUnit(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("code query parameter is required"))
		return
	}

	result, err := h.getUnitUC.Execute(c.Request.Context(), usecases.GetUnitQuery{UUTCode: code})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *UUTHandler) ListUnits(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := usecases.ListUnitsQuery{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}
	if v := c.Query("customer"); v != "" {
		query.CustomerName = &v
	}
	if v := c.Query("testTypeCode"); v != "" {
		query.TestTypeCode = &v
	}
	if v := c.Query("day"); v != "" {
		query.Day = &v
	}
	if v := c.Query("checkout"); v != "" {
		query.Checkout = &v
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Units, result.TotalCount, pagination.Page, pagination.PageSize)
}

func (h *UUTHandler) CheckoutUnit(c *gin.Context) {
	unitID, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for checkout", "unit_id", unitID, "error", err)
		utils.ErrorResponseWithError(c, utils.FormatBindingError(err))
		return
	}

	result, err := h.checkoutUC.Execute(c.Request.Context(), usecases.CheckoutUnitCommand{
		UnitID: unitID,
		Status: req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Unit checked out", result)
}

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid id parameter")
	}
	return uint(id), nil
}
