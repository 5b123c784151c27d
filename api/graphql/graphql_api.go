package graphql

import (
	"net/http"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/labstack/echo/v4"

	"hotbray.GO/api"
	apiQuote "hotbray.GO/api/quote"
	_ "hotbray.GO/custom"
	graphqlpkg "hotbray.GO/graphql"
	"hotbray.GO/graphql/resolvers"
	"hotbray.GO/graphqlserver"
	productRepo "hotbray.GO/model/repository/product"
	"hotbray.GO/service/fastorder"
)

func init() {
	api.RegisterRoute(RegisterGraphQLRoutes)
}

// NewResolver wires the GraphQL resolvers to the shared dependencies.
func NewResolver(deps *api.Deps) *resolvers.Resolver {
	return &resolvers.Resolver{
		Parts:         fastorder.NewResolver(productRepo.NewProductRepository(deps.DB)),
		Quotes:        apiQuote.NewBuilder(deps),
		Search:        deps.Search,
		ZeroAsDefault: deps.Config.TreatZeroQtyAsDefault,
	}
}

func RegisterGraphQLRoutes(e *echo.Echo, deps *api.Deps) {
	res := NewResolver(deps)
	schema, err := graphqlserver.NewSchema(res)
	if err != nil {
		panic("graphql schema: " + err.Error())
	}
	bulk := fastorder.NewBulkResolver(res.Parts, fastorder.BulkOptions{
		Cap:           deps.Config.BulkCap,
		ZeroAsDefault: deps.Config.TreatZeroQtyAsDefault,
	})
	registerRoutes(e, schema, bulk)
}

func registerRoutes(e *echo.Echo, schema *gql.Schema, bulk *fastorder.BulkResolver) {
	h := bulkContextMiddleware(graphqlserver.Handler(schema), bulk)
	e.POST("/graphql", echo.WrapHandler(h))
	e.GET("/graphql", echo.WrapHandler(h))
	e.GET("/playground", echo.WrapHandler(playgroundHandler()))
}

func bulkContextMiddleware(next http.Handler, bulk *fastorder.BulkResolver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := graphqlpkg.WithBulkResolver(r.Context(), bulk)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func playgroundHandler() http.Handler {
	html := `<!DOCTYPE html>
<html>
<head>
	<title>Parts API Playground</title>
	<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/graphql-playground-react/build/static/css/index.css"/>
</head>
<body>
	<div id="root"/>
	<script src="https://cdn.jsdelivr.net/npm/graphql-playground-react/build/static/js/middleware.js"></script>
	<script>window.addEventListener('load', function() {
		GraphQLPlayground.init({ endpoint: '/graphql' });
	})</script>
</body>
</html>`
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(html))
	})
}
