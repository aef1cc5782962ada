package routes

import (
	"github.com/labstack/echo/v4"

	"facility-console/internal/controllers"
)

func runScheduleRouter(api *echo.Group, ctrl *controllers.ScheduleController) {
	g := api.Group("/schedules")
	g.GET("", ctrl.GetSchedules)
	g.GET("/:id", ctrl.FindSchedule)
	g.POST("", ctrl.CreateSchedule)
	g.PUT("/:id", ctrl.UpdateSchedule)
	g.DELETE("/:id", ctrl.DeleteSchedule)
}
