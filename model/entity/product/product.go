package product

// Product represents the products table. part_number is compared
// case-insensitively; at most one row matches a given upper-cased value.
type Product struct {
	ID                    uint     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PartNumber            string   `gorm:"column:part_number;type:varchar(64);not null;uniqueIndex" json:"part_number"`
	Name                  string   `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Price                 *float64 `gorm:"column:price;type:numeric(12,2)" json:"price"`
	Image                 *string  `gorm:"column:image;type:text" json:"image"`
	Description           *string  `gorm:"column:description;type:text" json:"description"`
	Category              *string  `gorm:"column:category;type:varchar(128);index" json:"category"`
	Brand                 *string  `gorm:"column:brand;type:varchar(128)" json:"brand,omitempty"`
	IsObsolete            bool     `gorm:"column:is_obsolete;not null;default:false" json:"is_obsolete"`
	AlternativePartNumber *string  `gorm:"column:alternative_part_number;type:varchar(64)" json:"alternative_part_number"`
}

func (Product) TableName() string {
	return "products"
}
