package entity

import (
	contactEntity "hotbray.GO/model/entity/contact"
	productEntity "hotbray.GO/model/entity/product"
	quoteEntity "hotbray.GO/model/entity/quote"
	ratingEntity "hotbray.GO/model/entity/rating"
)

// Models lists every table in dependency order, for AutoMigrate.
func Models() []interface{} {
	return []interface{}{
		&productEntity.Product{},
		&productEntity.ObsoleteMap{},
		&quoteEntity.Quote{},
		&quoteEntity.QuoteItem{},
		&ratingEntity.Rating{},
		&contactEntity.Message{},
	}
}
