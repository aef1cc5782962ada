package routes

import (
	"github.com/labstack/echo/v4"
)

type recordHandlers interface {
	List(echo.Context) error
	Find(echo.Context) error
	Create(echo.Context) error
	Update(echo.Context) error
	Delete(echo.Context) error
}

func runRecordRouter(g *echo.Group, ctrl recordHandlers) {
	g.GET("", ctrl.List)
	g.GET("/:id", ctrl.Find)
	g.POST("", ctrl.Create)
	g.PUT("/:id", ctrl.Update)
	g.DELETE("/:id", ctrl.Delete)
}
