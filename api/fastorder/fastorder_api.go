package fastorder

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hotbray.GO/api"
	"hotbray.GO/core/apperror"
	productRepo "hotbray.GO/model/repository/product"
	fastorderService "hotbray.GO/service/fastorder"
)

func init() {
	api.RegisterModule(RegisterFastOrderRoutes)
}

func RegisterFastOrderRoutes(root *echo.Group, deps *api.Deps) {
	resolver := fastorderService.NewResolver(productRepo.NewProductRepository(deps.DB))
	bulk := fastorderService.NewBulkResolver(resolver, fastorderService.BulkOptions{
		Cap:           deps.Config.BulkCap,
		ZeroAsDefault: deps.Config.TreatZeroQtyAsDefault,
	})
	g := root.Group("/fast-order")

	// GET /fast-order/single?part=ABC123[&qty=2]
	g.GET("/single", func(c echo.Context) error {
		res, err := resolver.Resolve(c.Request().Context(), c.QueryParam("part"))
		if err != nil {
			return api.Fail(c, "fast-order single", err)
		}
		qty := fastorderService.ParseQty(c.QueryParam("qty"), deps.Config.TreatZeroQtyAsDefault)
		status := http.StatusOK
		if !res.Found() {
			status = http.StatusNotFound
		}
		return c.JSON(status, echo.Map{"item": res.Item(qty)})
	})

	// POST /fast-order/bulk-validate {items:[{part_number,qty}]}
	g.POST("/bulk-validate", func(c echo.Context) error {
		body, err := api.BindMap(c)
		if err != nil {
			return api.Fail(c, "fast-order bulk", err)
		}
		rows, ok := body["items"].([]interface{})
		if !ok {
			return api.Fail(c, "fast-order bulk", apperror.Validation("items must be an array"))
		}
		out, err := bulk.ResolveBulk(c.Request().Context(), rows)
		if err != nil {
			return api.Fail(c, "fast-order bulk", err)
		}
		return c.JSON(http.StatusOK, out)
	})
}
