package server

import (
	"log"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"hotbray.GO/api"
	"hotbray.GO/config"
	"hotbray.GO/core/metrics"
)

// New builds the echo instance with the standard middleware stack and every
// registered route module applied.
func New(deps *api.Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     deps.Config.CORSOrigins,
		AllowMethods:     config.AllowedMethods(),
		AllowCredentials: true,
	}))
	e.Use(metrics.Middleware())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			c.Response().Before(func() {
				duration := time.Since(start).Milliseconds()
				c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			})
			err := next(c)
			if deps.Config.Debug {
				log.Printf("Request duration: %d ms", time.Since(start).Milliseconds())
			}
			return err
		}
	})

	api.ApplyModules(e.Group(""), deps)
	api.ApplyRoutes(e, deps)
	return e
}
