package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/internal/services"
	"gearguard/pkg/utils"
)

type ReportController struct {
	requestService services.RequestServiceInterface
	logger         *zap.Logger
}

func NewReportController(requestService services.RequestServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{requestService: requestService, logger: logger}
}

var registerHeaders = []string{
	"№ заявки", "Тип", "Тема", "Оборудование (ID)", "Бригада (ID)",
	"Приоритет", "Статус", "Плановая дата", "Начата", "Завершена",
	"Длительность (мин)", "Создана",
}

func requestToRow(r entities.MaintenanceRequest) []interface{} {
	dateFmt := "02.01.2006 15:04"

	var scheduled, started, completed, duration string
	if r.ScheduledDate.Valid {
		scheduled = r.ScheduledDate.Time.Format(dateFmt)
	}
	if r.StartedAt.Valid {
		started = r.StartedAt.Time.Format(dateFmt)
	}
	if r.CompletedAt.Valid {
		completed = r.CompletedAt.Time.Format(dateFmt)
	}
	if r.DurationMinutes.Valid {
		duration = fmt.Sprintf("%d", r.DurationMinutes.Int)
	}

	return []interface{}{
		r.RequestNumber, r.Type, r.Subject, r.EquipmentID, r.MaintenanceTeamID,
		r.Priority, r.Status, scheduled, started, completed,
		duration, r.CreatedAt.Format(dateFmt),
	}
}

// GetRequestRegister выгружает реестр заявок в xlsx. Фильтры те же,
// что у спискового эндпоинта, пагинация не применяется.
func (c *ReportController) GetRequestRegister(ctx echo.Context) error {
	filter := repositories.RequestFilter{
		Status:   ctx.QueryParam("status"),
		Type:     ctx.QueryParam("type"),
		Priority: ctx.QueryParam("priority"),
		TeamID:   parseUintQuery(ctx, "team_id"),
	}

	requests, _, err := c.requestService.GetRequests(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("GetRequestRegister: ошибка при выборке заявок", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	f := excelize.NewFile()
	sheet := "Реестр заявок"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &registerHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "L1", style)

	for i, r := range requests {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := requestToRow(r)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "A", "A", 18)
	f.SetColWidth(sheet, "C", "C", 40)
	f.SetColWidth(sheet, "H", "L", 18)

	fileName := fmt.Sprintf("requests_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
