package controllers

import (
	"net/http"

	"scoopshop-backend/config"
	"scoopshop-backend/models"
	"scoopshop-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardOverview struct {
	TotalProducts    int64                     `json:"totalProducts"`
	ActiveProducts   int64                     `json:"activeProducts"`
	DiscountProducts map[string]int64          `json:"discountProducts"`
	CategoryCounts   map[models.Category]int64 `json:"categoryCounts"`
}

// GetDashboardOverview summarizes the catalog and discount pages.
func GetDashboardOverview(c *gin.Context) {
	var overview DashboardOverview

	if err := config.DB.Model(&models.Product{}).Count(&overview.TotalProducts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}
	if err := config.DB.Model(&models.Product{}).
		Where("is_active = ?", true).
		Count(&overview.ActiveProducts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	overview.DiscountProducts = make(map[string]int64, len(models.DiscountPageNames))
	for _, page := range models.DiscountPageNames {
		var count int64
		if err := config.DB.Model(&models.DiscountProduct{}).
			Where("page_name = ?", page).
			Count(&count).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
			return
		}
		overview.DiscountProducts[page] = count
	}

	var active []models.Product
	if err := config.DB.Where("is_active = ?", true).Find(&active).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}
	overview.CategoryCounts = make(map[models.Category]int64)
	for _, p := range active {
		overview.CategoryCounts[models.Categorize(p.Name)]++
	}

	c.JSON(http.StatusOK, overview)
}
