package config

import (
	"log"

	"scoopshop-backend/models"
)

// Seed inserts the default catalog and the two discount pages when the
// corresponding tables are empty. Safe to call on every startup.
func Seed() {
	var productCount int64
	if err := DB.Model(&models.Product{}).Count(&productCount).Error; err != nil {
		log.Printf("Seed: failed to count products: %v", err)
		return
	}
	if productCount == 0 {
		products := make([]models.Product, len(models.DefaultProducts))
		copy(products, models.DefaultProducts)
		if err := DB.Create(&products).Error; err != nil {
			log.Printf("Seed: failed to insert default products: %v", err)
		} else {
			log.Printf("Seed: inserted %d default products", len(models.DefaultProducts))
		}
	}

	for _, page := range models.DiscountPageNames {
		var count int64
		if err := DB.Model(&models.DiscountPage{}).
			Where("page_name = ?", page).
			Count(&count).Error; err != nil {
			log.Printf("Seed: failed to check discount page %s: %v", page, err)
			continue
		}
		if count == 0 {
			if err := DB.Create(&models.DiscountPage{PageName: page}).Error; err != nil {
				log.Printf("Seed: failed to create discount page %s: %v", page, err)
			}
		}
	}
}
