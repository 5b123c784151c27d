package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"hotbray.GO/config"
	productService "hotbray.GO/service/product"
)

var (
	importFile  string
	importBatch int
)

var importCmd = &cobra.Command{
	Use:   "products:import",
	Short: "Import the parts catalog from CSV into products and obsolete_map",
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(importFile)
		if err != nil {
			fmt.Printf("Failed to open CSV: %v\n", err)
			return
		}
		defer f.Close()

		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			return
		}

		res, err := productService.ImportProducts(cmd.Context(), db, f, productService.ImportOptions{BatchSize: importBatch})
		if err != nil {
			fmt.Printf("Import failed: %v\n", err)
			return
		}

		for _, w := range res.Warnings {
			fmt.Printf("  [warn] %s\n", w)
		}
		fmt.Printf(`
=== Import Report ===
CSV rows:       %d
Created:        %d
Updated:        %d
Skipped:        %d
Obsolete maps:  %d
Total time:     %s
  - Processing: %s
  - DB write:   %s
=====================
`, res.TotalRows, res.Created, res.Updated, res.Skipped, res.Obsolete,
			res.TotalTime.Round(time.Millisecond),
			res.ProcessTime.Round(time.Millisecond),
			res.DBTime.Round(time.Millisecond))
		fmt.Println("Run search:index to refresh the search index.")
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "CSV file path (required)")
	importCmd.MarkFlagRequired("file")
	importCmd.Flags().IntVar(&importBatch, "batch-size", 500, "Batch size for DB operations")
	rootCmd.AddCommand(importCmd)
}
