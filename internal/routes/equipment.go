package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runEquipmentRouter(g *echo.Group, ctrl *controllers.EquipmentController, historyCtrl *controllers.HistoryController, logCtrl *controllers.MaintenanceLogController) {
	g.GET("/equipment", ctrl.GetEquipments)
	g.GET("/equipment/:id", ctrl.FindEquipment)
	g.POST("/equipment", ctrl.CreateEquipment)
	g.PUT("/equipment/:id", ctrl.UpdateEquipment)

	g.GET("/equipment/:id/history", historyCtrl.GetByEquipment)
	g.GET("/equipment/:id/maintenance-log", logCtrl.GetByEquipment)
}
