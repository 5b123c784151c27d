package rating

import "time"

type Rating struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"column:user_id;type:varchar(128);not null" json:"user_id"`
	ProductID uint      `gorm:"column:product_id;not null;index" json:"product_id"`
	Rating    int       `gorm:"column:rating;not null" json:"rating"`
	Review    string    `gorm:"column:review;type:text;not null" json:"review"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Rating) TableName() string {
	return "ratings"
}
