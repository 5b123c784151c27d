package resolvers

import (
	"strconv"
	"time"

	gql "github.com/graph-gophers/graphql-go"

	gqlmodels "hotbray.GO/graphql/models"
	productEntity "hotbray.GO/model/entity/product"
	quoteEntity "hotbray.GO/model/entity/quote"
	"hotbray.GO/service/fastorder"
	"hotbray.GO/service/search"
)

func toID(id uint) gql.ID {
	return gql.ID(strconv.FormatUint(uint64(id), 10))
}

func mapProduct(p *productEntity.Product) *gqlmodels.Product {
	if p == nil {
		return nil
	}
	return &gqlmodels.Product{
		ID:          toID(p.ID),
		PartNumber:  p.PartNumber,
		Name:        p.Name,
		Price:       p.Price,
		Image:       p.Image,
		Description: p.Description,
		Category:    p.Category,
		Brand:       p.Brand,
	}
}

func mapItem(it fastorder.Item) *gqlmodels.PartResolution {
	return &gqlmodels.PartResolution{
		PartNumber: it.PartNumber,
		Qty:        int32(it.Qty),
		Product:    mapProduct(it.Product),
		IsObsolete: it.IsObsolete,
		MappedTo:   it.MappedTo,
		MappedFrom: it.MappedFrom,
		Message:    it.Message,
	}
}

func mapQuote(q *quoteEntity.Quote, items []quoteEntity.QuoteItem) *gqlmodels.Quote {
	out := &gqlmodels.Quote{
		ID:          toID(q.ID),
		QuoteNumber: q.QuoteNumber,
		Token:       q.Token,
		Name:        q.Name,
		UserEmail:   q.UserEmail,
		Note:        q.Note,
		CreatedAt:   q.CreatedAt.UTC().Format(time.RFC3339),
		Items:       make([]*gqlmodels.QuoteItem, 0, len(items)),
	}
	for _, it := range items {
		row := &gqlmodels.QuoteItem{
			PartNumber: it.PartNumber,
			Name:       it.Name,
			Price:      it.Price,
			Qty:        int32(it.Qty),
			MappedTo:   it.MappedTo,
		}
		if it.ProductID != nil {
			id := toID(*it.ProductID)
			row.ProductID = &id
		}
		out.Items = append(out.Items, row)
	}
	return out
}

func mapSuggestion(s search.Suggestion) *gqlmodels.Suggestion {
	return &gqlmodels.Suggestion{
		ID:         toID(s.ID),
		Name:       s.Name,
		PartNumber: s.PartNumber,
		Image:      s.Image,
		Price:      s.Price,
	}
}
