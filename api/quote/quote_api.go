package quote

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/mitchellh/mapstructure"

	"hotbray.GO/api"
	"hotbray.GO/core/apperror"
	productRepo "hotbray.GO/model/repository/product"
	quoteRepo "hotbray.GO/model/repository/quote"
	quoteService "hotbray.GO/service/quote"
)

func init() {
	api.RegisterModule(RegisterQuoteRoutes)
}

// NewBuilder builds the quote service from the shared dependencies.
func NewBuilder(deps *api.Deps) *quoteService.Builder {
	return quoteService.NewBuilder(
		quoteRepo.NewQuoteRepository(deps.DB),
		productRepo.NewProductRepository(deps.DB),
		quoteService.Options{
			ZeroAsDefault: deps.Config.TreatZeroQtyAsDefault,
			ListCap:       deps.Config.QuoteListCap,
			PublicBase:    deps.Config.PublicQuoteBase,
		},
	)
}

func RegisterQuoteRoutes(root *echo.Group, deps *api.Deps) {
	builder := NewBuilder(deps)
	g := root.Group("/quotes")

	g.POST("/create", func(c echo.Context) error {
		body, err := api.BindMap(c)
		if err != nil {
			return api.Fail(c, "quote create", err)
		}
		in, err := decodeCreate(body)
		if err != nil {
			return api.Fail(c, "quote create", err)
		}
		created, err := builder.Create(c.Request().Context(), in)
		if err != nil {
			return api.Fail(c, "quote create", err)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"success":     true,
			"quote":       created.Quote,
			"items":       created.Items,
			"public_link": created.PublicLink,
		})
	})

	g.GET("/user/:userId", func(c echo.Context) error {
		quotes, err := builder.ListByUser(c.Request().Context(), c.Param("userId"))
		if err != nil {
			return api.Fail(c, "quote list", err)
		}
		return c.JSON(http.StatusOK, echo.Map{"quotes": quotes})
	})

	g.GET("/view/:token", func(c echo.Context) error {
		q, items, err := builder.View(c.Request().Context(), c.Param("token"))
		if err != nil {
			return api.Fail(c, "quote view", err)
		}
		return c.JSON(http.StatusOK, echo.Map{"quote": q, "items": items})
	})

	g.POST("/convert-to-cart", func(c echo.Context) error {
		body, err := api.BindMap(c)
		if err != nil {
			return api.Fail(c, "quote convert", err)
		}
		// A usable token wins; quote_id is only parsed when no token is sent.
		token := api.StringField(body, "token")
		var quoteID *uint
		if token == "" {
			if quoteID, err = optionalID(body["quote_id"]); err != nil {
				return api.Fail(c, "quote convert", err)
			}
		}
		items, err := builder.ConvertToCart(c.Request().Context(), token, quoteID)
		if err != nil {
			return api.Fail(c, "quote convert", err)
		}
		return c.JSON(http.StatusOK, echo.Map{"items": items})
	})

	g.DELETE("/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			return api.Fail(c, "quote delete", apperror.Validation("Invalid quote id"))
		}
		if err := builder.Delete(c.Request().Context(), uint(id)); err != nil {
			return api.Fail(c, "quote delete", err)
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Quote deleted"})
	})
}

// createInput carries the quote header. Storefronts send ids as numbers or
// strings, so scalars are weakly converted to text.
type createInput struct {
	UserID    *string `mapstructure:"user_id"`
	UserEmail *string `mapstructure:"user_email"`
	Name      *string `mapstructure:"name"`
	Note      *string `mapstructure:"note"`
}

func decodeCreate(body map[string]interface{}) (quoteService.CreateInput, error) {
	var in createInput
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{WeaklyTypedInput: true, Result: &in})
	if err != nil {
		return quoteService.CreateInput{}, err
	}
	if err := dec.Decode(body); err != nil {
		return quoteService.CreateInput{}, apperror.Validation("Invalid quote payload")
	}
	items, _ := body["items"].([]interface{})
	return quoteService.CreateInput{
		UserID:    blankToNil(in.UserID),
		UserEmail: blankToNil(in.UserEmail),
		Name:      blankToNil(in.Name),
		Note:      blankToNil(in.Note),
		Items:     items,
	}, nil
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

// optionalID accepts a JSON number or numeric string.
func optionalID(v interface{}) (*uint, error) {
	var n uint64
	switch t := v.(type) {
	case nil:
		return nil, nil
	case float64:
		if t <= 0 || t != float64(uint64(t)) {
			return nil, apperror.Validation("Invalid quote_id")
		}
		n = uint64(t)
	case string:
		if t == "" {
			return nil, nil
		}
		parsed, err := strconv.ParseUint(t, 10, 64)
		if err != nil || parsed == 0 {
			return nil, apperror.Validation("Invalid quote_id")
		}
		n = parsed
	default:
		return nil, apperror.Validation("Invalid quote_id")
	}
	id := uint(n)
	return &id, nil
}
