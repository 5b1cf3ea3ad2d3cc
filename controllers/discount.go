package controllers

import (
	"errors"
	"net/http"

	"scoopshop-backend/config"
	"scoopshop-backend/models"
	"scoopshop-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateDiscountContentInput defines the JSON structure for editing page content
type UpdateDiscountContentInput struct {
	Content string `json:"content"`
}

// AddDiscountProductInput defines the JSON structure for listing a product
// on a discount page
type AddDiscountProductInput struct {
	ProductName     string  `json:"product_name" binding:"required"`
	OriginalPrice   float64 `json:"original_price" binding:"required,gt=0"`
	DiscountedPrice float64 `json:"discounted_price" binding:"required,gt=0"`
}

// pageParam resolves the :page route parameter to a known discount page.
func pageParam(c *gin.Context) (string, bool) {
	page := c.Param("page")
	if !models.KnownDiscountPage(page) {
		utils.RespondWithError(c, http.StatusNotFound, "Discount page not found")
		return "", false
	}
	return page, true
}

// GetDiscountPage returns the page content plus its product list in
// insertion order, each product annotated with its computed category.
func GetDiscountPage(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		return
	}

	var dp models.DiscountPage
	if err := config.DB.First(&dp, "page_name = ?", page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Discount page not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var products []models.DiscountProduct
	if err := config.DB.Where("page_name = ?", page).
		Order("created_at ASC").Find(&products).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve products")
		return
	}

	type discountProductWithCategory struct {
		models.DiscountProduct
		Category models.Category `json:"category"`
	}
	out := make([]discountProductWithCategory, 0, len(products))
	for _, p := range products {
		out = append(out, discountProductWithCategory{
			DiscountProduct: p,
			Category:        models.Categorize(p.ProductName),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"page_name": dp.PageName,
		"content":   dp.Content,
		"products":  out,
	})
}

// UpdateDiscountContent replaces the editable page content. Owner only.
func UpdateDiscountContent(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		return
	}

	var input UpdateDiscountContentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	result := config.DB.Model(&models.DiscountPage{}).
		Where("page_name = ?", page).
		Update("content", input.Content)

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save content")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Discount page not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Content updated successfully"})
}

// AddDiscountProduct lists a product on a discount page. Owner only.
func AddDiscountProduct(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		return
	}

	var input AddDiscountProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	product := models.DiscountProduct{
		PageName:        page,
		ProductName:     input.ProductName,
		OriginalPrice:   input.OriginalPrice,
		DiscountedPrice: input.DiscountedPrice,
	}

	if err := config.DB.Create(&product).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add product")
		return
	}

	c.JSON(http.StatusCreated, product)
}

// DeleteDiscountProduct removes a product from a discount page. Owner only.
func DeleteDiscountProduct(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	result := config.DB.Where("page_name = ? AND id = ?", page, productID).
		Delete(&models.DiscountProduct{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete product")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
