package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/services"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
	logger           *zap.Logger
}

func NewDashboardController(dashboardService services.DashboardServiceInterface, logger *zap.Logger) *DashboardController {
	return &DashboardController{dashboardService: dashboardService, logger: logger}
}

func (c *DashboardController) GetSnapshot(ctx echo.Context) error {
	res, err := c.dashboardService.GetSnapshot(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetSnapshot: ошибка при расчёте показателей", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Показатели дашборда рассчитаны", http.StatusOK)
}

func (c *DashboardController) GetUpcomingPreventive(ctx echo.Context) error {
	days := 7
	if v := ctx.QueryParam("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Параметр days должен быть положительным числом"), c.logger)
		}
		days = parsed
	}

	res, err := c.dashboardService.GetUpcomingPreventive(ctx.Request().Context(), days)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Предстоящие плановые работы получены", http.StatusOK)
}

func (c *DashboardController) GetByPriority(ctx echo.Context) error {
	priority := ctx.QueryParam("priority")
	switch priority {
	case constants.PriorityLow, constants.PriorityMedium, constants.PriorityHigh, constants.PriorityCritical:
	default:
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неизвестный приоритет"), c.logger)
	}

	res, err := c.dashboardService.GetByPriority(ctx.Request().Context(), priority)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Заявки по приоритету получены", http.StatusOK)
}
