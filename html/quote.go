package html

import (
	"html/template"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"hotbray.GO/api"
	apiQuote "hotbray.GO/api/quote"
	"hotbray.GO/core/apperror"
	"hotbray.GO/html/parts"
	quoteEntity "hotbray.GO/model/entity/quote"
)

func init() {
	api.RegisterRoute(RegisterQuoteHTMLRoutes)
}

type quoteLine struct {
	PartNumber string
	Name       string
	Qty        int
	Price      float64
	Total      float64
	MappedTo   string
}

type quotePage struct {
	Quote *quoteEntity.Quote
	Lines []quoteLine
	Total float64
	CSS   template.CSS
}

func newQuotePage(q *quoteEntity.Quote, items []quoteEntity.QuoteItem) quotePage {
	page := quotePage{Quote: q, CSS: parts.CriticalCSS()}
	for _, it := range items {
		l := quoteLine{PartNumber: it.PartNumber, Qty: it.Qty}
		if it.Name != nil {
			l.Name = *it.Name
		}
		if it.Price != nil {
			l.Price = *it.Price
		}
		if it.MappedTo != nil {
			l.MappedTo = *it.MappedTo
		}
		l.Total = l.Price * float64(l.Qty)
		page.Total += l.Total
		page.Lines = append(page.Lines, l)
	}
	return page
}

// RegisterQuoteHTMLRoutes serves the shareable quote page at /quotes/:token.
func RegisterQuoteHTMLRoutes(e *echo.Echo, deps *api.Deps) {
	if e.Renderer == nil {
		e.Renderer = NewTemplate()
	}
	builder := apiQuote.NewBuilder(deps)

	e.GET("/quotes/:token", func(c echo.Context) error {
		q, items, err := builder.View(c.Request().Context(), c.Param("token"))
		if apperror.Is(err, apperror.KindNotFound) {
			return c.String(http.StatusNotFound, "Quote not found")
		}
		if err != nil {
			log.Println("Quote page error:", err)
			return c.String(http.StatusInternalServerError, "Error loading quote")
		}
		return c.Render(http.StatusOK, "quote.html", newQuotePage(q, items))
	})
}
