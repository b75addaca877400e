// Package webapp is the demo web application that app_tail supervises.
// It exists so the harness has something to start, click, and collect
// logs from; the page content itself is presentation glue.
package webapp

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// New builds the demo application's HTTP server. Request logging goes
// to stdout so the supervisor's relay has server-side lines to carry.
func New() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/", func(c echo.Context) error {
		return c.HTML(http.StatusOK, PageHTML)
	})
	e.GET("/about", func(c echo.Context) error {
		return c.HTML(http.StatusOK, AboutHTML)
	})
	e.GET("/broken", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusInternalServerError, "this route is intentionally broken")
	})

	return e
}

// ListenAndServe runs the demo application on the given port until
// the process is terminated.
func ListenAndServe(port string) error {
	return New().Start(":" + port)
}
