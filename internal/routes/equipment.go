package routes

import (
	"github.com/labstack/echo/v4"

	"facility-console/internal/controllers"
)

func runEquipmentRouter(api *echo.Group, ctrl *controllers.EquipmentController) {
	g := api.Group("/equipment")
	g.GET("", ctrl.GetEquipment)
	g.GET("/maintenance", ctrl.GetMaintenanceOverview)
	g.GET("/:id", ctrl.FindEquipment)
	g.GET("/:id/maintenance", ctrl.GetMaintenance)
	g.POST("", ctrl.CreateEquipment)
	g.PUT("/:id", ctrl.UpdateEquipment)
	g.DELETE("/:id", ctrl.DeleteEquipment)
}
