// Package models holds the GraphQL object types. Field names follow the
// schema so graph-gophers can resolve them without methods.
package models

import gql "github.com/graph-gophers/graphql-go"

type Product struct {
	ID          gql.ID
	PartNumber  string
	Name        string
	Price       *float64
	Image       *string
	Description *string
	Category    *string
	Brand       *string
}

type PartResolution struct {
	PartNumber string
	Qty        int32
	Product    *Product
	IsObsolete bool
	MappedTo   *string
	MappedFrom *string
	Message    *string
}

type Quote struct {
	ID          gql.ID
	QuoteNumber string
	Token       string
	Name        *string
	UserEmail   *string
	Note        *string
	CreatedAt   string
	Items       []*QuoteItem
}

type QuoteItem struct {
	ProductID  *gql.ID
	PartNumber string
	Name       *string
	Price      *float64
	Qty        int32
	MappedTo   *string
}

type Suggestion struct {
	ID         gql.ID
	Name       string
	PartNumber string
	Image      *string
	Price      *float64
}
