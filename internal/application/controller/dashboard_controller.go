package controller

import (
	"github.com/labstack/echo/v4"
)

type DashboardController struct {
	e        *echo.Echo
	pagePath string
}

func NewDashboardController(e *echo.Echo, pagePath string) *DashboardController {
	return &DashboardController{e: e, pagePath: pagePath}
}

// InitDashboardRoutes serves the dashboard page at the root path
func (controller *DashboardController) InitDashboardRoutes() {
	controller.e.GET("/", controller.Index)
}

// Index serves the static dashboard page
func (controller *DashboardController) Index(c echo.Context) error {
	return c.File(controller.pagePath)
}
