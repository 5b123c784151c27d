// Standalone GraphQL server. Run with: go run ./cmd/graphql
package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/common-nighthawk/go-figure"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"hotbray.GO/api"
	_ "hotbray.GO/api/graphql"
	"hotbray.GO/config"
	"hotbray.GO/server"
)

func main() {
	config.LoadEnv()

	deps, err := server.NewDeps()
	if err != nil {
		log.Fatal("deps:", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	api.ApplyRoutes(e, deps)

	// random font each run
	gqlFonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "doom", "larry3d", "puffy"}
	figure.NewFigure("Hotbray GQL ->", gqlFonts[rand.Intn(len(gqlFonts))], true).Print()
	fmt.Println("Standalone GraphQL server")

	port := config.GetEnv("GRAPHQL_PORT", "8080")
	log.Printf("GraphQL at http://localhost:%s/graphql  Playground at http://localhost:%s/playground", port, port)
	e.Logger.Fatal(e.Start(":" + port))
}
