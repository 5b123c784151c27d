// Package custom registers optional extensions: a GraphQL bulk-validate
// extension and a CLI part checker.
package custom

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"hotbray.GO/cmd"
	"hotbray.GO/config"
	"hotbray.GO/core/apperror"
	"hotbray.GO/graphql"
	gqlregistry "hotbray.GO/graphql/registry"
	productRepo "hotbray.GO/model/repository/product"
	"hotbray.GO/service/fastorder"
)

func init() {
	// _extension(name:"bulkValidate", args:"{\"items\":[{\"part_number\":\"A1\",\"qty\":2}]}")
	gqlregistry.Register("bulkValidate", BulkValidate)
	graphql.RegisterSchemaExtension(`extend type Query {
  "Names accepted by _extension."
  extensions: [String!]!
}`)

	cmd.Register(&cobra.Command{
		Use:   "fastorder:check PART...",
		Short: "Resolve part numbers against the catalog and print the outcome",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			db, err := config.NewDB()
			if err != nil {
				return fmt.Errorf("database connection failed: %w", err)
			}
			resolver := fastorder.NewResolver(productRepo.NewProductRepository(db))
			return printResolutions(c.Context(), resolver, args)
		},
	})
}

// BulkValidate runs the bulk resolver attached to the request context.
func BulkValidate(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	bulk, ok := graphql.BulkResolverFromContext(ctx)
	if !ok {
		return nil, apperror.Dependency("bulkValidate", errors.New("bulk resolver not in context"))
	}
	var in struct {
		Items []interface{} `mapstructure:"items"`
	}
	if err := gqlregistry.Decode(args, &in); err != nil || in.Items == nil {
		return nil, apperror.Validation("items must be an array")
	}
	return bulk.ResolveBulk(ctx, in.Items)
}

func printResolutions(ctx context.Context, resolver *fastorder.Resolver, parts []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PART\tOUTCOME\tPRODUCT\tMAPPED TO")
	for _, p := range parts {
		res, err := resolver.Resolve(ctx, p)
		if err != nil {
			return err
		}
		product, mapped := "-", "-"
		if res.Product != nil {
			product = res.Product.PartNumber + " " + res.Product.Name
		}
		if res.Alternative != nil {
			mapped = *res.Alternative
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", res.PartNumber, res.Outcome, product, mapped)
	}
	return w.Flush()
}
