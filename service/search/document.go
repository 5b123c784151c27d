package search

import productEntity "hotbray.GO/model/entity/product"

// Document is the indexed shape of a product.
type Document struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	PartNumber  string   `json:"part_number"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	Description string   `json:"description"`
	Category    *string  `json:"category"`
	Brand       *string  `json:"brand"`
}

func NewDocument(p productEntity.Product) Document {
	d := Document{
		ID:         p.ID,
		Name:       p.Name,
		PartNumber: p.PartNumber,
		Price:      p.Price,
		Image:      p.Image,
		Category:   p.Category,
		Brand:      p.Brand,
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	return d
}

// Suggestion is the autocomplete projection.
type Suggestion struct {
	ID         uint     `json:"id"`
	Name       string   `json:"name"`
	PartNumber string   `json:"part_number"`
	Image      *string  `json:"image"`
	Price      *float64 `json:"price"`
}

// suggestFields is the _source projection used by Suggest.
var suggestFields = []string{"id", "name", "part_number", "image", "price"}
