package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runDashboardRouter(g *echo.Group, ctrl *controllers.DashboardController) {
	g.GET("/dashboard/stats", ctrl.GetSnapshot)
	g.GET("/dashboard/upcoming-maintenance", ctrl.GetUpcomingPreventive)
	g.GET("/dashboard/requests-by-priority", ctrl.GetByPriority)
}
