package routes

import (
	"github.com/labstack/echo/v4"

	"facility-console/internal/controllers"
)

func runDocumentRouter(api *echo.Group, ctrl *controllers.DocumentController) {
	g := api.Group("/documents")
	g.GET("", ctrl.GetDocuments)
	g.POST("", ctrl.UploadDocument)
	g.GET("/:id/download", ctrl.DownloadDocument)
	g.DELETE("/:id", ctrl.DeleteDocument)
}
