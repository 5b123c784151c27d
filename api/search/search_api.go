package search

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"hotbray.GO/api"
	"hotbray.GO/core/apperror"
	searchService "hotbray.GO/service/search"
)

func init() {
	api.RegisterModule(RegisterSearchRoutes)
}

var errNotConfigured = apperror.Dependency("search", errString("search client not configured"))

type errString string

func (e errString) Error() string { return string(e) }

func RegisterSearchRoutes(root *echo.Group, deps *api.Deps) {
	g := root.Group("/search")

	// GET /search?q=brake&limit=20&filters=category:Jaguar
	g.GET("", func(c echo.Context) error {
		if strings.TrimSpace(c.QueryParam("q")) == "" {
			return c.JSON(http.StatusOK, echo.Map{"hits": []interface{}{}})
		}
		if deps.Search == nil {
			return api.FailWithMessage(c, "search", errNotConfigured, "Search error")
		}
		res, err := deps.Search.Search(c.Request().Context(),
			c.QueryParam("q"),
			api.QueryInt(c, "limit", searchService.DefaultSearchLimit),
			c.QueryParam("filters"),
		)
		if err != nil {
			return api.FailWithMessage(c, "search", err, "Search error")
		}
		return c.JSON(http.StatusOK, res)
	})

	// GET /search/suggest?q=wip&limit=8
	g.GET("/suggest", func(c echo.Context) error {
		if strings.TrimSpace(c.QueryParam("q")) == "" {
			return c.JSON(http.StatusOK, echo.Map{"suggestions": []interface{}{}})
		}
		if deps.Search == nil {
			return api.FailWithMessage(c, "suggest", errNotConfigured, "Suggest error")
		}
		out, err := deps.Search.Suggest(c.Request().Context(),
			c.QueryParam("q"),
			api.QueryInt(c, "limit", searchService.DefaultSuggestLimit),
		)
		if err != nil {
			return api.FailWithMessage(c, "suggest", err, "Suggest error")
		}
		return c.JSON(http.StatusOK, echo.Map{"suggestions": out})
	})
}
