package routes

import (
	"github.com/labstack/echo/v4"

	"facility-console/internal/controllers"
)

func runWorkOrderRouter(api *echo.Group, ctrl *controllers.WorkOrderController) {
	g := api.Group("/work-orders")
	g.GET("", ctrl.GetWorkOrders)
	g.GET("/next-code", ctrl.NextCode)
	g.GET("/export", ctrl.Export)
	g.GET("/:id", ctrl.FindWorkOrder)
	g.POST("", ctrl.CreateWorkOrder)
	g.PUT("/:id", ctrl.UpdateWorkOrder)
	g.PATCH("/:id/status", ctrl.ChangeStatus)
	g.POST("/:id/attachments", ctrl.UploadAttachment)
	g.DELETE("/:id", ctrl.DeleteWorkOrder)
}
