package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runCategoryRouter(g *echo.Group, ctrl *controllers.CategoryController) {
	g.GET("/categories", ctrl.GetCategories)
	g.GET("/categories/:id", ctrl.FindCategory)
}
