package rating

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/mitchellh/mapstructure"

	"hotbray.GO/api"
	"hotbray.GO/core/apperror"
	ratingEntity "hotbray.GO/model/entity/rating"
	ratingRepo "hotbray.GO/model/repository/rating"
)

func init() {
	api.RegisterModule(RegisterRatingRoutes)
}

// ratingInput mirrors the storefront payload; ids and scores may arrive as strings.
type ratingInput struct {
	UserID    string `mapstructure:"userId"`
	ProductID uint   `mapstructure:"productId"`
	Rating    int    `mapstructure:"rating"`
	Review    string `mapstructure:"review"`
}

func decodeRating(body map[string]interface{}) (*ratingEntity.Rating, error) {
	var in ratingInput
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{WeaklyTypedInput: true, Result: &in})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(body); err != nil {
		return nil, apperror.Validation("Invalid rating payload")
	}
	if in.UserID == "" || in.ProductID == 0 || in.Rating == 0 || in.Review == "" {
		return nil, apperror.Validation("Missing fields")
	}
	return &ratingEntity.Rating{UserID: in.UserID, ProductID: in.ProductID, Rating: in.Rating, Review: in.Review}, nil
}

func RegisterRatingRoutes(root *echo.Group, deps *api.Deps) {
	repo := ratingRepo.NewRatingRepository(deps.DB)
	g := root.Group("/ratings")

	g.POST("/add", func(c echo.Context) error {
		body, err := api.BindMap(c)
		if err != nil {
			return api.Fail(c, "rating add", err)
		}
		row, err := decodeRating(body)
		if err != nil {
			return api.Fail(c, "rating add", err)
		}
		if err := repo.Create(c.Request().Context(), row); err != nil {
			return api.Fail(c, "rating add", apperror.Dependency("insert rating", err))
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "Rating submitted successfully", "data": row})
	})

	g.GET("/:productId", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("productId"), 10, 64)
		if err != nil {
			return api.Fail(c, "rating list", apperror.Validation("Invalid product id"))
		}
		rows, err := repo.ListByProduct(c.Request().Context(), uint(id))
		if err != nil {
			return api.Fail(c, "rating list", apperror.Dependency("list ratings", err))
		}
		return c.JSON(http.StatusOK, rows)
	})
}
