package quote

import "time"

// Quote is immutable once created. Token is the only credential for the public view.
type Quote struct {
	ID          uint        `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	QuoteNumber string      `gorm:"column:quote_number;type:varchar(32);not null;uniqueIndex" json:"quote_number"`
	Token       string      `gorm:"column:token;type:varchar(64);not null;uniqueIndex" json:"token"`
	UserID      *string     `gorm:"column:user_id;type:varchar(128);index" json:"user_id"`
	UserEmail   *string     `gorm:"column:user_email;type:varchar(255)" json:"user_email"`
	Name        *string     `gorm:"column:name;type:varchar(255)" json:"name"`
	Note        *string     `gorm:"column:note;type:text" json:"note"`
	CreatedAt   time.Time   `gorm:"column:created_at;not null;index" json:"created_at"`
	Items       []QuoteItem `gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Quote) TableName() string {
	return "quotes"
}

// QuoteItem is a snapshot taken when the quote was created; it is never re-resolved.
type QuoteItem struct {
	ID         uint     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	QuoteID    uint     `gorm:"column:quote_id;not null;index" json:"quote_id"`
	ProductID  *uint    `gorm:"column:product_id" json:"product_id"`
	PartNumber string   `gorm:"column:part_number;type:varchar(64);not null" json:"part_number"`
	Name       *string  `gorm:"column:name;type:varchar(255)" json:"name"`
	Price      *float64 `gorm:"column:price;type:numeric(12,2)" json:"price"`
	Qty        int      `gorm:"column:qty;not null;default:1" json:"qty"`
	MappedTo   *string  `gorm:"column:mapped_to;type:varchar(64)" json:"mapped_to"`
}

func (QuoteItem) TableName() string {
	return "quote_items"
}

// Summary is a row of the per-user quote listing.
type Summary struct {
	ID          uint      `gorm:"column:id" json:"id"`
	QuoteNumber string    `gorm:"column:quote_number" json:"quote_number"`
	Token       string    `gorm:"column:token" json:"token"`
	Name        *string   `gorm:"column:name" json:"name"`
	UserEmail   *string   `gorm:"column:user_email" json:"user_email"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	ItemCount   int64     `gorm:"column:item_count" json:"item_count"`
}
