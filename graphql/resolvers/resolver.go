package resolvers

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"hotbray.GO/core/apperror"
	gqlmodels "hotbray.GO/graphql/models"
	"hotbray.GO/graphql/registry"
	"hotbray.GO/service/fastorder"
	quoteService "hotbray.GO/service/quote"
	"hotbray.GO/service/search"
)

// Resolver answers the Query fields. Search may be nil.
type Resolver struct {
	Parts         *fastorder.Resolver
	Quotes        *quoteService.Builder
	Search        *search.Gateway
	ZeroAsDefault bool
}

func (r *Resolver) Part(ctx context.Context, partNumber string, qty int) (*gqlmodels.PartResolution, error) {
	res, err := r.Parts.Resolve(ctx, partNumber)
	if err != nil {
		return nil, publicError(err)
	}
	return mapItem(res.Item(fastorder.ParseQty(qty, r.ZeroAsDefault))), nil
}

// Quote returns nil for an unknown token.
func (r *Resolver) Quote(ctx context.Context, token string) (*gqlmodels.Quote, error) {
	q, items, err := r.Quotes.View(ctx, token)
	if apperror.Is(err, apperror.KindNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, publicError(err)
	}
	return mapQuote(q, items), nil
}

func (r *Resolver) Suggest(ctx context.Context, query string, limit int) ([]*gqlmodels.Suggestion, error) {
	if r.Search == nil {
		return []*gqlmodels.Suggestion{}, nil
	}
	rows, err := r.Search.Suggest(ctx, query, limit)
	if err != nil {
		return nil, publicError(err)
	}
	out := make([]*gqlmodels.Suggestion, 0, len(rows))
	for _, s := range rows {
		out = append(out, mapSuggestion(s))
	}
	return out, nil
}

// Extension runs a registered extension. rawArgs must be a JSON object when
// present; the result is returned JSON-encoded.
func (r *Resolver) Extension(ctx context.Context, name string, rawArgs *string) (*string, error) {
	args := map[string]interface{}{}
	if rawArgs != nil && *rawArgs != "" {
		if err := json.Unmarshal([]byte(*rawArgs), &args); err != nil {
			return nil, apperror.Validation("args must be a JSON object")
		}
	}
	out, err := registry.Resolve(ctx, name, args)
	if err != nil {
		return nil, publicError(err)
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, publicError(apperror.Dependency("encode extension result", err))
	}
	s := string(b)
	return &s, nil
}

// publicError keeps internals out of GraphQL error messages.
func publicError(err error) error {
	if apperror.HTTPStatus(err) >= 500 {
		log.Printf("graphql error: %v", err)
		return errors.New(apperror.PublicMessage(err))
	}
	return err
}
