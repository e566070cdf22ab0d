package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"labtrace/internal/application/equipment/usecases"
	"labtrace/internal/shared/errors"
	"labtrace/internal/shared/logger"
	"labtrace/internal/shared/utils"
)

type EquipmentHandler struct {
	createUC      *usecases.CreateEquipmentUseCase
	updateUC      *usecases.UpdateEquipmentUseCase
	getUC         *usecases.GetEquipmentUseCase
	listUC        *usecases.ListEquipmentUseCase
	calibrationUC *usecases.RecordCalibrationUseCase
	deleteUC      *usecases.DeleteEquipmentUseCase
	logger        logger.Interface
}

func NewEquipmentHandler(
	createUC *usecases.CreateEquipmentUseCase,
	updateUC *usecases.UpdateEquipmentUseCase,
	getUC *usecases.GetEquipmentUseCase,
	listUC *usecases.ListEquipmentUseCase,
	calibrationUC *usecases.RecordCalibrationUseCase,
	deleteUC *usecases.DeleteEquipmentUseCase,
) *EquipmentHandler {
	return &EquipmentHandler{
		createUC:      createUC,
		updateUC:      updateUC,
		getUC:         getUC,
		listUC:        listUC,
		calibrationUC: calibrationUC,
		deleteUC:      deleteUC,
		logger:        logger.NewLogger(),
	}
}

type CreateEquipmentRequest struct {
	Name      string `json:"name" binding:"required"`
	TagNumber string `json:"tagNumber" binding:"required"`
	Location  string `json:"location"`
}

type UpdateEquipmentRequest struct {
	Name      string `json:"name"`
	TagNumber string `json:"tagNumber"`
	Location  string `json:"location"`
	Status    string `json:"status" binding:"omitempty,oneof=active maintenance retired"`
}

type RecordCalibrationRequest struct {
	// CalibratedAt is RFC 3339; empty means now.
	CalibratedAt string `json:"calibratedAt"`
	ValidForDays int    `json:"validForDays" binding:"omitempty,min=1"`
}

func (h *EquipmentHandler) CreateEquipment(c *gin.Context) {
	var req CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create equipment", "error", err)
		utils.ErrorResponseWithError(c, utils.FormatBindingError(err))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateEquipmentCommand{
		Name:      req.Name,
		TagNumber: req.TagNumber,
		Location:  req.Location,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Equipment created successfully")
}

func (h *EquipmentHandler) UpdateEquipment(c *gin.Context) {
	equipmentID, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update equipment", "equipment_id", equipmentID, "error", err)
		utils.ErrorResponseWithError(c, utils.FormatBindingError(err))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateEquipmentCommand{
		EquipmentID: equipmentID,
		Name:        req.Name,
		TagNumber:   req.TagNumber,
		Location:    req.Location,
		Status:      req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Equipment updated successfully", result)
}

func (h *EquipmentHandler) GetEquipment(c *gin.Context) {
	equipmentID, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetEquipmentQuery{EquipmentID: equipmentID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *EquipmentHandler) ListEquipment(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := usecases.ListEquipmentQuery{
		Status:   c.Query("status"),
		Location: c.Query("location"),
		Due:      c.Query("due") == "true",
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Equipment, result.Total, result.Page, result.PageSize)
}

func (h *EquipmentHandler) RecordCalibration(c *gin.Context) {
	equipmentID, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RecordCalibrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for record calibration", "equipment_id", equipmentID, "error", err)
		utils.ErrorResponseWithError(c, utils.FormatBindingError(err))
		return
	}

	cmd := usecases.RecordCalibrationCommand{
		EquipmentID:  equipmentID,
		ValidForDays: req.ValidForDays,
	}
	if req.CalibratedAt != "" {
		at, err := time.Parse(time.RFC3339, req.CalibratedAt)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("calibratedAt must be RFC 3339"))
			return
		}
		cmd.CalibratedAt = at
	}

	result, err := h.calibrationUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Calibration recorded", result)
}

func (h *EquipmentHandler) DeleteEquipment(c *gin.Context) {
	equipmentID, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if _, err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteEquipmentCommand{EquipmentID: equipmentID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
