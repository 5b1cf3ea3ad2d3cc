package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"scoopshop-backend/config"
	"scoopshop-backend/models"
	"scoopshop-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateProductInput defines the expected JSON structure for creating a product
type CreateProductInput struct {
	Name    string  `json:"name" binding:"required,max=100"`
	Price   float64 `json:"price" binding:"required,gt=0,max=100000"`
	IconURL *string `json:"icon_url"`
}

// UpdateProductInput defines the expected JSON structure for updating a product
type UpdateProductInput struct {
	Name     *string  `json:"name" binding:"omitempty,max=100"`
	Price    *float64 `json:"price" binding:"omitempty,gt=0,max=100000"`
	IconURL  *string  `json:"icon_url"`
	IsActive *bool    `json:"is_active"`
}

func validIconURL(url string) bool {
	return url == "" || strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

// CreateProduct adds a product to the catalog. Owner only.
func CreateProduct(c *gin.Context) {
	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Product name is required")
		return
	}
	if input.IconURL != nil && !validIconURL(*input.IconURL) {
		utils.RespondWithError(c, http.StatusBadRequest, "Icon URL must start with http:// or https://")
		return
	}

	product := models.Product{
		Name:     name,
		Price:    input.Price,
		IconURL:  input.IconURL,
		IsActive: true,
	}

	if err := config.DB.Create(&product).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create product")
		return
	}

	c.JSON(http.StatusCreated, product)
}

// GetProducts retrieves the catalog ordered by id, each product annotated
// with its computed category.
func GetProducts(c *gin.Context) {
	var products []models.Product
	if err := config.DB.Order("id ASC").Find(&products).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve products")
		return
	}

	type productWithCategory struct {
		models.Product
		Category models.Category `json:"category"`
	}
	out := make([]productWithCategory, 0, len(products))
	for _, p := range products {
		out = append(out, productWithCategory{Product: p, Category: models.Categorize(p.Name)})
	}

	c.JSON(http.StatusOK, out)
}

// GetProduct retrieves a specific product by ID
func GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var product models.Product
	if err := config.DB.First(&product, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, product)
}

// UpdateProduct updates an existing product. Owner only.
func UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var input UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var product models.Product
	if err := config.DB.First(&product, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			utils.RespondWithError(c, http.StatusBadRequest, "Product name is required")
			return
		}
		product.Name = name
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.IconURL != nil {
		if !validIconURL(*input.IconURL) {
			utils.RespondWithError(c, http.StatusBadRequest, "Icon URL must start with http:// or https://")
			return
		}
		product.IconURL = input.IconURL
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&product).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update product")
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a product from the catalog. Owner only.
func DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	result := config.DB.Delete(&models.Product{}, uint(id))

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
