package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

type MaintenanceLogController struct {
	logService services.MaintenanceLogServiceInterface
	logger     *zap.Logger
}

func NewMaintenanceLogController(logService services.MaintenanceLogServiceInterface, logger *zap.Logger) *MaintenanceLogController {
	return &MaintenanceLogController{logService: logService, logger: logger}
}

func (c *MaintenanceLogController) GetByEquipment(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.logService.GetByEquipment(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Сервисный журнал получен", http.StatusOK)
}

func (c *MaintenanceLogController) AddEntry(ctx echo.Context) error {
	var payload dto.AddMaintenanceLogDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат данных в теле запроса"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	id, err := c.logService.AddEntry(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("AddEntry: ошибка при создании сервисной записи", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, map[string]uint64{"id": id}, "Сервисная запись создана", http.StatusCreated)
}
