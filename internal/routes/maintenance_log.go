package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runMaintenanceLogRouter(g *echo.Group, ctrl *controllers.MaintenanceLogController) {
	g.POST("/maintenance-log", ctrl.AddEntry)
}
