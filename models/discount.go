package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DiscountPage is one of the two editable promotional pages. PageName is the
// discount tier ("30%" or "50%") and doubles as the key.
type DiscountPage struct {
	PageName string `gorm:"primary_key;type:varchar(10)" json:"page_name"`
	Content  string `gorm:"type:text" json:"content"`
}

// DiscountPageNames lists the recognized pages in display order.
var DiscountPageNames = []string{"30%", "50%"}

// KnownDiscountPage reports whether name is one of the recognized pages.
func KnownDiscountPage(name string) bool {
	for _, p := range DiscountPageNames {
		if p == name {
			return true
		}
	}
	return false
}

// DiscountProduct is a product listed on a discount page, priced separately
// from the main catalog.
type DiscountProduct struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	PageName        string    `gorm:"type:varchar(10);index;not null" json:"page_name"`
	ProductName     string    `gorm:"not null" json:"product_name"`
	OriginalPrice   float64   `gorm:"type:decimal(10,2);not null" json:"original_price"`
	DiscountedPrice float64   `gorm:"type:decimal(10,2);not null" json:"discounted_price"`
	CreatedAt       time.Time `json:"created_at"`
}

func (d *DiscountProduct) BeforeCreate(tx *gorm.DB) (err error) {
	d.ID = uuid.New()
	return
}
