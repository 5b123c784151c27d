package product

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"hotbray.GO/api"
	"hotbray.GO/core/apperror"
	productRepo "hotbray.GO/model/repository/product"
)

func init() {
	api.RegisterModule(RegisterProductRoutes)
}

func RegisterProductRoutes(root *echo.Group, deps *api.Deps) {
	repo := productRepo.NewProductRepository(deps.DB)
	g := root.Group("/products")

	g.GET("", func(c echo.Context) error {
		rows, err := repo.FindAll(c.Request().Context())
		if err != nil {
			return api.FailWithMessage(c, "products", apperror.Dependency("list products", err), "Database error")
		}
		return c.JSON(http.StatusOK, rows)
	})

	g.GET("/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			return api.Fail(c, "product", apperror.Validation("Invalid product id"))
		}
		p, err := repo.FindByID(c.Request().Context(), uint(id))
		if errors.Is(err, productRepo.ErrNotFound) {
			return api.Fail(c, "product", apperror.NotFound("Product not found"))
		}
		if err != nil {
			return api.FailWithMessage(c, "product", apperror.Dependency("find product", err), "Database error")
		}
		return c.JSON(http.StatusOK, p)
	})
}
