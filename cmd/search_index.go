package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	productRepo "hotbray.GO/model/repository/product"
	"hotbray.GO/server"
	"hotbray.GO/service/search"
)

var (
	indexRecreate bool
	indexBatch    int
	indexWorkers  int
)

var searchIndexCmd = &cobra.Command{
	Use:   "search:index",
	Short: "Create the product search index and load every product into it",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := server.NewDeps()
		if err != nil {
			return err
		}
		if deps.Search == nil {
			return errors.New("search is not configured (check SEARCH_HOST)")
		}
		ctx := context.Background()
		start := time.Now()
		if err := deps.Search.Provision(ctx, indexRecreate); err != nil {
			return err
		}
		n, err := deps.Search.Reindex(ctx, productRepo.NewProductRepository(deps.DB), search.ReindexOptions{
			BatchSize: indexBatch,
			Workers:   indexWorkers,
		})
		if err != nil {
			return fmt.Errorf("reindex stopped after %d products: %w", n, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d products into %s in %s\n", n, deps.Search.Index(), time.Since(start).Round(time.Millisecond))
		return nil
	},
}

func init() {
	searchIndexCmd.Flags().BoolVar(&indexRecreate, "recreate", false, "Drop and recreate the index before loading")
	searchIndexCmd.Flags().IntVar(&indexBatch, "batch", 500, "Products per bulk request")
	searchIndexCmd.Flags().IntVar(&indexWorkers, "workers", 4, "Concurrent bulk requests")
	rootCmd.AddCommand(searchIndexCmd)
}
