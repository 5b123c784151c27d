package product

// ObsoleteMap points a discontinued part number at its replacement.
// Both columns reference products.part_number.
type ObsoleteMap struct {
	ID              uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OriginalPart    string `gorm:"column:original_part;type:varchar(64);not null;uniqueIndex" json:"original_part"`
	AlternativePart string `gorm:"column:alternative_part;type:varchar(64);not null;index" json:"alternative_part"`
}

func (ObsoleteMap) TableName() string {
	return "obsolete_map"
}
