// Package jobs holds the scheduled jobs. Each registers itself with the cron registry on import.
package jobs

import (
	"context"
	"log"
	"time"

	"hotbray.GO/config"
	"hotbray.GO/cron"
	productRepo "hotbray.GO/model/repository/product"
	"hotbray.GO/server"
	"hotbray.GO/service/search"
)

func init() {
	cron.Register("searchreindex", config.CronSchedules["searchreindex"], func(...string) {
		if err := SearchReindex(context.Background()); err != nil {
			log.Printf("cron searchreindex: %v", err)
		}
	})
}

// SearchReindex refreshes the product index from the database without recreating it.
func SearchReindex(ctx context.Context) error {
	deps, err := server.NewDeps()
	if err != nil {
		return err
	}
	if deps.Search == nil {
		log.Println("cron searchreindex: search not configured, skipping")
		return nil
	}
	start := time.Now()
	if err := deps.Search.Provision(ctx, false); err != nil {
		return err
	}
	n, err := deps.Search.Reindex(ctx, productRepo.NewProductRepository(deps.DB), search.ReindexOptions{})
	if err != nil {
		return err
	}
	log.Printf("cron searchreindex: %d products in %s", n, time.Since(start).Round(time.Millisecond))
	return nil
}
