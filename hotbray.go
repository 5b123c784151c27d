//go:build !cli

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"

	_ "hotbray.GO/api/contact"
	_ "hotbray.GO/api/fastorder"
	_ "hotbray.GO/api/graphql"
	_ "hotbray.GO/api/health"
	_ "hotbray.GO/api/product"
	_ "hotbray.GO/api/quote"
	_ "hotbray.GO/api/rating"
	_ "hotbray.GO/api/search"
	"hotbray.GO/config"
	_ "hotbray.GO/html"
	"hotbray.GO/server"
)

func main() {
	config.LoadEnv()
	cfg := config.LoadAppConfig()

	deps, err := server.NewDeps()
	if err != nil {
		log.Fatal(err)
	}
	e := server.New(deps)

	figure.NewFigure("Hotbray", "slant", true).Print()
	fmt.Println()

	go func() {
		log.Printf("Server running on :%s", cfg.Port)
		if err := e.Start("0.0.0.0:" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
