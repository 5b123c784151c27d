package graphqlserver

import (
	"context"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"hotbray.GO/graphql"
	gqlmodels "hotbray.GO/graphql/models"
	"hotbray.GO/graphql/registry"
	"hotbray.GO/graphql/resolvers"
)

// RootResolver is the root for graphql-go.
type RootResolver struct {
	Resolver *resolvers.Resolver
}

// PartArgs matches the part query arguments (qty defaults to 1 in schema).
type PartArgs struct {
	PartNumber string
	Qty        int32
}

func (r *RootResolver) Part(ctx context.Context, args PartArgs) (*gqlmodels.PartResolution, error) {
	return r.Resolver.Part(ctx, args.PartNumber, int(args.Qty))
}

type QuoteArgs struct {
	Token string
}

func (r *RootResolver) Quote(ctx context.Context, args QuoteArgs) (*gqlmodels.Quote, error) {
	return r.Resolver.Quote(ctx, args.Token)
}

// SuggestArgs matches the suggest query arguments (limit defaults to 8 in schema).
type SuggestArgs struct {
	Query string
	Limit int32
}

func (r *RootResolver) Suggest(ctx context.Context, args SuggestArgs) ([]*gqlmodels.Suggestion, error) {
	return r.Resolver.Suggest(ctx, args.Query, int(args.Limit))
}

// ExtensionArgs for _extension(name, args).
type ExtensionArgs struct {
	Name string
	Args *string
}

func (r *RootResolver) Extension(ctx context.Context, args ExtensionArgs) (*string, error) {
	return r.Resolver.Extension(ctx, args.Name, args.Args)
}

// Extensions backs the extensions field added by packages that register extensions.
func (r *RootResolver) Extensions() []string {
	return registry.Names()
}

// NewSchema parses the schema and returns a graphql-go Schema.
func NewSchema(res *resolvers.Resolver) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), &RootResolver{Resolver: res}, gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
