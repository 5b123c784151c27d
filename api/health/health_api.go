package health

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hotbray.GO/api"
	"hotbray.GO/core/metrics"
	systemRepo "hotbray.GO/model/repository/system"
)

func init() {
	api.RegisterModule(RegisterHealthRoutes)
	api.RegisterGET("/metrics", metrics.Handler())
}

func RegisterHealthRoutes(root *echo.Group, deps *api.Deps) {
	repo := systemRepo.NewSystemRepository(deps.DB)

	root.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Backend is running...")
	})

	root.GET("/test-db", func(c echo.Context) error {
		now, err := repo.Now(c.Request().Context())
		if err != nil {
			c.Logger().Errorf("db connection error: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to connect to database"})
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "Connected successfully!", "time": now})
	})
}
